package service

import (
	"context"
	"time"

	"github.com/skirdsawad/papertech-crm-poc/internal/crm/repository"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/sse"
	"go.uber.org/zap"
)

// DatasetInfo 当前数据集信息
type DatasetInfo struct {
	Version  string         `json:"version"`
	Source   string         `json:"source"`
	LoadedAt time.Time      `json:"loaded_at"`
	Counts   map[string]int `json:"counts"`
}

// ReloadService swaps in a fresh dataset and notifies SSE subscribers.
type ReloadService struct {
	store   *repository.Store
	hub     *sse.Hub
	metrics *Metrics
	logger  *zap.Logger
}

func NewReloadService(store *repository.Store, hub *sse.Hub, metrics *Metrics, logger *zap.Logger) *ReloadService {
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReloadService{store: store, hub: hub, metrics: metrics, logger: logger}
}

// Reload keeps the previous dataset active when loading fails.
func (s *ReloadService) Reload(ctx context.Context) (*DatasetInfo, error) {
	ds, err := s.store.Reload(ctx)
	s.metrics.recordReload(err)
	if err != nil {
		s.logger.Error("dataset reload failed", zap.Error(err))
		return nil, err
	}

	info := describe(ds)
	for collection, n := range info.Counts {
		s.metrics.setRows(collection, n)
	}
	if s.hub != nil {
		s.hub.PublishDatasetReload(sse.DatasetReload{
			Version:  info.Version,
			Source:   info.Source,
			LoadedAt: info.LoadedAt.Format(time.RFC3339),
		})
	}
	return info, nil
}

func (s *ReloadService) Current() *DatasetInfo {
	return describe(s.store.Current())
}

func describe(ds *repository.Dataset) *DatasetInfo {
	return &DatasetInfo{
		Version:  ds.Version(),
		Source:   ds.Source(),
		LoadedAt: ds.LoadedAt(),
		Counts: map[string]int{
			"customers":               len(ds.Customers()),
			"orders":                  len(ds.Orders()),
			"invoices":                len(ds.Invoices()),
			"deliveries":              len(ds.Deliveries()),
			"memberships":             len(ds.Memberships()),
			"membership_transactions": len(ds.Transactions()),
			"campaigns":               len(ds.Campaigns()),
		},
	}
}
