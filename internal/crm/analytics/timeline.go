package analytics

import (
	"sort"
	"time"

	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
)

const (
	TimelinePerSource = 10
	TimelineLimit     = 15
)

// ActivityType 时间线事件类型
type ActivityType string

const (
	ActivityOrder    ActivityType = "order"
	ActivityInvoice  ActivityType = "invoice"
	ActivityDelivery ActivityType = "delivery"
)

// ActivityEntry 时间线条目
type ActivityEntry struct {
	Date        time.Time    `json:"date"`
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	Amount      *float64     `json:"amount,omitempty"`
}

// BuildTimeline merges the most recent orders, invoices and completed
// deliveries into one feed, newest first. Each source is cut to
// TimelinePerSource before merging, so a busy source can crowd out the others
// in the final TimelineLimit entries.
func BuildTimeline(orders []entity.Order, invoices []entity.Invoice, deliveries []entity.Delivery) []ActivityEntry {
	entries := make([]ActivityEntry, 0, 3*TimelinePerSource)

	for _, o := range mostRecent(orders, func(o entity.Order) time.Time { return o.OrderDate }) {
		amount := o.NetValue
		entries = append(entries, ActivityEntry{
			Date:        o.OrderDate,
			Type:        ActivityOrder,
			Description: "Order " + o.OrderNo,
			Amount:      &amount,
		})
	}

	for _, inv := range mostRecent(invoices, func(i entity.Invoice) time.Time { return i.InvoiceDate }) {
		amount := inv.Amount
		entries = append(entries, ActivityEntry{
			Date:        inv.InvoiceDate,
			Type:        ActivityInvoice,
			Description: "Invoice " + inv.InvoiceNo,
			Amount:      &amount,
		})
	}

	// 未实际交货的不计入
	completed := make([]entity.Delivery, 0, len(deliveries))
	for _, d := range deliveries {
		if d.ActualDate != nil {
			completed = append(completed, d)
		}
	}
	for _, d := range mostRecent(completed, func(d entity.Delivery) time.Time { return *d.ActualDate }) {
		entries = append(entries, ActivityEntry{
			Date:        *d.ActualDate,
			Type:        ActivityDelivery,
			Description: "Delivery " + d.DeliveryNo,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return truncate(entries, TimelineLimit)
}

// mostRecent returns up to TimelinePerSource items, newest first, without
// reordering the caller's slice.
func mostRecent[T any](items []T, date func(T) time.Time) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return date(sorted[i]).After(date(sorted[j]))
	})
	return truncate(sorted, TimelinePerSource)
}
