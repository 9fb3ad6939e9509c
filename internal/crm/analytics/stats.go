package analytics

import (
	"math"

	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
)

// OrderStats 订单列表统计
type OrderStats struct {
	Total         int     `json:"total"`
	TotalValue    float64 `json:"total_value"`
	Open          int     `json:"open"`
	InProgress    int     `json:"in_progress"`
	Delivered     int     `json:"delivered"`
	AvgOrderValue float64 `json:"avg_order_value"`
}

func ComputeOrderStats(orders []entity.Order) OrderStats {
	r := RollupOrders(orders)
	stats := OrderStats{
		Total:         r.TotalOrders,
		TotalValue:    r.TotalRevenue,
		AvgOrderValue: r.AvgOrderValue,
	}
	for _, o := range orders {
		switch o.Status {
		case entity.OrderStatusOpen:
			stats.Open++
		case entity.OrderStatusInProgress:
			stats.InProgress++
		case entity.OrderStatusDelivered:
			stats.Delivered++
		}
	}
	return stats
}

// AgingBucket names one AR aging column.
type AgingBucket string

const (
	Aging0To30  AgingBucket = "0-30"
	Aging31To60 AgingBucket = "31-60"
	Aging61To90 AgingBucket = "61-90"
	Aging90Plus AgingBucket = "90+"
)

func (b AgingBucket) Valid() bool {
	switch b {
	case Aging0To30, Aging31To60, Aging61To90, Aging90Plus:
		return true
	}
	return false
}

// BucketFor places days overdue into an aging bucket. Invoices that are not
// yet due have 0 days overdue and land in 0-30.
func BucketFor(daysOverdue int) AgingBucket {
	switch {
	case daysOverdue <= 30:
		return Aging0To30
	case daysOverdue <= 60:
		return Aging31To60
	case daysOverdue <= 90:
		return Aging61To90
	default:
		return Aging90Plus
	}
}

// Receivable reports whether the invoice still contributes to AR.
func Receivable(inv entity.Invoice) bool {
	return inv.Balance > 0 && inv.Status != entity.InvoiceStatusCancelled
}

// InvoiceStats 发票列表统计
type InvoiceStats struct {
	Total           int                 `json:"total"`
	TotalAmount     float64             `json:"total_amount"`
	TotalReceivable float64             `json:"total_receivable"`
	OverdueCount    int                 `json:"overdue_count"`
	OverdueAmount   float64             `json:"overdue_amount"`
	Aging           entity.AgingBuckets `json:"aging"`
}

func ComputeInvoiceStats(invoices []entity.Invoice) InvoiceStats {
	r := RollupInvoices(invoices)
	stats := InvoiceStats{
		Total:           r.TotalInvoices,
		TotalAmount:     r.TotalAmount,
		TotalReceivable: r.TotalOutstanding,
		OverdueAmount:   r.OverdueAmount,
	}

	var buckets [4][]entity.Invoice
	for _, inv := range invoices {
		if inv.Status == entity.InvoiceStatusOverdue {
			stats.OverdueCount++
		}
		if !Receivable(inv) {
			continue
		}
		switch BucketFor(inv.DaysOverdue) {
		case Aging0To30:
			buckets[0] = append(buckets[0], inv)
		case Aging31To60:
			buckets[1] = append(buckets[1], inv)
		case Aging61To90:
			buckets[2] = append(buckets[2], inv)
		case Aging90Plus:
			buckets[3] = append(buckets[3], inv)
		}
	}

	balance := func(i entity.Invoice) float64 { return i.Balance }
	stats.Aging = entity.AgingBuckets{
		Bucket0To30:  sumOf(buckets[0], balance),
		Bucket31To60: sumOf(buckets[1], balance),
		Bucket61To90: sumOf(buckets[2], balance),
		Bucket90Plus: sumOf(buckets[3], balance),
	}
	return stats
}

// DeliveryStats 交货列表统计
type DeliveryStats struct {
	Total     int `json:"total"`
	Delivered int `json:"delivered"`
	InTransit int `json:"in_transit"`
	Planned   int `json:"planned"`
	Failed    int `json:"failed"`
	WithPOD   int `json:"with_pod"`
	PODRate   int `json:"pod_rate"`
}

func ComputeDeliveryStats(deliveries []entity.Delivery) DeliveryStats {
	stats := DeliveryStats{Total: len(deliveries)}
	for _, d := range deliveries {
		switch d.Status {
		case entity.DeliveryStatusDelivered:
			stats.Delivered++
		case entity.DeliveryStatusInTransit:
			stats.InTransit++
		case entity.DeliveryStatusPlanned:
			stats.Planned++
		case entity.DeliveryStatusFailed:
			stats.Failed++
		}
		if d.PODAvailable {
			stats.WithPOD++
		}
	}
	stats.PODRate = int(math.Round(percent(float64(stats.WithPOD), float64(stats.Total))))
	return stats
}
