package service

import (
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/analytics"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/repository"
)

// StatsService computes the summary cards of the order, invoice and delivery
// list pages. An empty customerNo means the whole dataset.
type StatsService struct {
	repos *repository.Repositories
}

func NewStatsService(repos *repository.Repositories) *StatsService {
	return &StatsService{repos: repos}
}

func (s *StatsService) Orders(customerNo string) analytics.OrderStats {
	if customerNo != "" {
		return analytics.ComputeOrderStats(s.repos.Order.ByCustomer(customerNo))
	}
	return analytics.ComputeOrderStats(s.repos.Order.All())
}

func (s *StatsService) Invoices(customerNo string) analytics.InvoiceStats {
	if customerNo != "" {
		return analytics.ComputeInvoiceStats(s.repos.Invoice.ByCustomer(customerNo))
	}
	return analytics.ComputeInvoiceStats(s.repos.Invoice.All())
}

func (s *StatsService) Deliveries(customerNo string) analytics.DeliveryStats {
	if customerNo != "" {
		return analytics.ComputeDeliveryStats(s.repos.Delivery.ByCustomer(customerNo))
	}
	return analytics.ComputeDeliveryStats(s.repos.Delivery.All())
}
