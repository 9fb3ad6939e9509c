package analytics

import (
	"time"

	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
)

const TopCustomersLimit = 5

// DashboardMetrics 首页仪表盘指标
type DashboardMetrics struct {
	AsOf            time.Time         `json:"as_of"`
	CustomerCount   int               `json:"customer_count"`
	Orders          OrderStats        `json:"orders"`
	Invoices        InvoiceStats      `json:"invoices"`
	Deliveries      DeliveryStats     `json:"deliveries"`
	Segments        []GroupRevenue    `json:"segments"`
	Territories     []GroupRevenue    `json:"territories"`
	TopCustomers    []CustomerRanking `json:"top_customers"`
	Membership      TierStatistics    `json:"membership"`
	ActiveCampaigns int               `json:"active_campaigns"`
}

// DashboardInput bundles the fleet-wide collections the dashboard reads.
type DashboardInput struct {
	Customers   []entity.Customer
	Orders      []entity.Order
	Invoices    []entity.Invoice
	Deliveries  []entity.Delivery
	Memberships []entity.Membership
	Campaigns   []entity.Campaign
}

func ComputeDashboard(in DashboardInput, now time.Time) *DashboardMetrics {
	active := 0
	for _, c := range in.Campaigns {
		if c.Status == entity.CampaignStatusActive {
			active++
		}
	}

	return &DashboardMetrics{
		AsOf:            now,
		CustomerCount:   len(in.Customers),
		Orders:          ComputeOrderStats(in.Orders),
		Invoices:        ComputeInvoiceStats(in.Invoices),
		Deliveries:      ComputeDeliveryStats(in.Deliveries),
		Segments:        SegmentBreakdown(in.Customers, in.Orders),
		Territories:     TerritoryBreakdown(in.Customers, in.Orders),
		TopCustomers:    TopCustomers(in.Customers, in.Orders, TopCustomersLimit),
		Membership:      ComputeTierStatistics(in.Memberships),
		ActiveCampaigns: active,
	}
}
