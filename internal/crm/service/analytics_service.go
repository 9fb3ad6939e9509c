package service

import (
	"context"
	"time"

	"github.com/skirdsawad/papertech-crm-poc/internal/crm/analytics"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	kindCustomer  = "customer"
	kindDashboard = "dashboard"
)

// AnalyticsOptions 分析服务参数
type AnalyticsOptions struct {
	Cache       MetricsCache
	TTL         time.Duration
	PaymentSeed int64
	Now         func() time.Time
	Logger      *zap.Logger
	Metrics     *Metrics
}

// AnalyticsService serves customer-360 and dashboard figures for the active
// dataset. Results are cached per dataset version and day; concurrent misses
// on the same key share one computation.
type AnalyticsService struct {
	store       *repository.Store
	cache       MetricsCache
	ttl         time.Duration
	paymentSeed int64
	now         func() time.Time
	logger      *zap.Logger
	metrics     *Metrics
	sf          singleflight.Group
}

func NewAnalyticsService(store *repository.Store, opts AnalyticsOptions) *AnalyticsService {
	if opts.Cache == nil {
		opts.Cache = NopCache{}
	}
	if opts.TTL <= 0 {
		opts.TTL = 10 * time.Minute
	}
	if opts.PaymentSeed == 0 {
		opts.PaymentSeed = analytics.DefaultPaymentSeed
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Metrics == nil {
		opts.Metrics = NewMetrics(nil)
	}
	return &AnalyticsService{
		store:       store,
		cache:       opts.Cache,
		ttl:         opts.TTL,
		paymentSeed: opts.PaymentSeed,
		now:         opts.Now,
		logger:      opts.Logger,
		metrics:     opts.Metrics,
	}
}

func (s *AnalyticsService) engine(ds analytics.Dataset, now time.Time) *analytics.Engine {
	return analytics.NewEngine(ds,
		analytics.WithClock(func() time.Time { return now }),
		analytics.WithPaymentSeed(s.paymentSeed),
	)
}

// CustomerMetrics returns repository.ErrNotFound for an unknown customer.
func (s *AnalyticsService) CustomerMetrics(ctx context.Context, customerNo string) (*analytics.CustomerMetrics, error) {
	ds := s.store.Current()
	if _, ok := ds.FindCustomer(customerNo); !ok {
		return nil, repository.ErrNotFound
	}
	now := s.now()
	key := cacheKey(kindCustomer, ds.Version(), now, customerNo)
	return cached(ctx, s, kindCustomer, key, func() *analytics.CustomerMetrics {
		return s.engine(ds, now).CustomerMetrics(customerNo)
	}), nil
}

func (s *AnalyticsService) Dashboard(ctx context.Context) *analytics.DashboardMetrics {
	ds := s.store.Current()
	now := s.now()
	key := cacheKey(kindDashboard, ds.Version(), now)
	return cached(ctx, s, kindDashboard, key, func() *analytics.DashboardMetrics {
		return s.engine(ds, now).Dashboard()
	})
}

// cached reads key from the cache or computes and stores it. Cache errors
// are logged and never returned: the computed value is always correct.
func cached[T any](ctx context.Context, s *AnalyticsService, kind, key string, compute func() *T) *T {
	var hit T
	ok, err := s.cache.Get(ctx, key, &hit)
	if err != nil {
		s.logger.Warn("analytics cache read failed", zap.String("key", key), zap.Error(err))
	}
	if ok {
		s.metrics.recordLookup(kind, "hit")
		return &hit
	}
	s.metrics.recordLookup(kind, "miss")

	v, _, _ := s.sf.Do(key, func() (interface{}, error) {
		done := s.metrics.trackCompute(kind)
		result := compute()
		done()
		if err := s.cache.Set(ctx, key, result, s.ttl); err != nil {
			s.logger.Warn("analytics cache write failed", zap.String("key", key), zap.Error(err))
		}
		return result, nil
	})
	return v.(*T)
}
