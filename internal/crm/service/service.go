package service

import (
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"github.com/skirdsawad/papertech-crm-poc/internal/config"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/repository"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/sse"
	"go.uber.org/zap"
)

// Services 服务集合
type Services struct {
	Customer   *CustomerService
	Analytics  *AnalyticsService
	Stats      *StatsService
	Membership *MembershipService
	Export     *ExportService
	Reload     *ReloadService
}

// Deps 外部依赖，Redis/MinIO 为空时对应功能降级
type Deps struct {
	Redis   *redis.Client
	MinIO   *minio.Client
	Hub     *sse.Hub
	Metrics *Metrics
	Logger  *zap.Logger
	Now     func() time.Time
}

// NewServices 创建服务集合
func NewServices(repos *repository.Repositories, cfg *config.Config, deps Deps) *Services {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Metrics == nil {
		deps.Metrics = NewMetrics(nil)
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	var cache MetricsCache = NopCache{}
	if deps.Redis != nil {
		cache = NewRedisCache(deps.Redis)
	}

	analyticsSvc := NewAnalyticsService(repos.Store, AnalyticsOptions{
		Cache:       cache,
		TTL:         cfg.Analytics.CacheTTL,
		PaymentSeed: cfg.Analytics.PaymentSeed,
		Now:         deps.Now,
		Logger:      deps.Logger.Named("analytics"),
		Metrics:     deps.Metrics,
	})

	// 未配置 MinIO 时保持接口为 nil
	var storage ObjectStorage
	if deps.MinIO != nil {
		storage = deps.MinIO
	}

	return &Services{
		Customer:   NewCustomerService(repos),
		Analytics:  analyticsSvc,
		Stats:      NewStatsService(repos),
		Membership: NewMembershipService(repos.Membership, repos.Campaign),
		Export:     NewExportService(analyticsSvc, storage, cfg.MinIO.Bucket, deps.Now, deps.Logger.Named("export")),
		Reload:     NewReloadService(repos.Store, deps.Hub, deps.Metrics, deps.Logger.Named("reload")),
	}
}
