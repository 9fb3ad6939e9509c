package analytics

import (
	"testing"
	"time"

	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
	"github.com/stretchr/testify/assert"
)

func TestComputeOrderStats(t *testing.T) {
	d := day(2024, time.January, 1)
	orders := []entity.Order{
		{OrderNo: "SO1", OrderDate: d, NetValue: 100, Status: entity.OrderStatusOpen},
		{OrderNo: "SO2", OrderDate: d, NetValue: 200, Status: entity.OrderStatusDelivered},
		{OrderNo: "SO3", OrderDate: d, NetValue: 300, Status: entity.OrderStatusInProgress},
		{OrderNo: "SO4", OrderDate: d, NetValue: 400, Status: entity.OrderStatusDelivered},
	}

	stats := ComputeOrderStats(orders)
	assert.Equal(t, OrderStats{
		Total:         4,
		TotalValue:    1000,
		Open:          1,
		InProgress:    1,
		Delivered:     2,
		AvgOrderValue: 250,
	}, stats)

	assert.Equal(t, OrderStats{}, ComputeOrderStats(nil))
}

func TestBucketFor(t *testing.T) {
	assert.Equal(t, Aging0To30, BucketFor(0))
	assert.Equal(t, Aging0To30, BucketFor(30))
	assert.Equal(t, Aging31To60, BucketFor(31))
	assert.Equal(t, Aging61To90, BucketFor(90))
	assert.Equal(t, Aging90Plus, BucketFor(91))
}

func TestComputeInvoiceStats(t *testing.T) {
	d := day(2024, time.January, 1)
	withDays := func(inv entity.Invoice, days int) entity.Invoice {
		inv.DaysOverdue = days
		return inv
	}
	invoices := []entity.Invoice{
		withDays(invoice("INV1", "C1", d, 30, 100, 0, entity.InvoiceStatusOpen), 0),
		withDays(invoice("INV2", "C1", d, 30, 200, 0, entity.InvoiceStatusOverdue), 45),
		withDays(invoice("INV3", "C1", d, 30, 500, 200, entity.InvoiceStatusOverdue), 75),
		withDays(invoice("INV4", "C1", d, 30, 400, 0, entity.InvoiceStatusOverdue), 120),
		withDays(invoice("INV5", "C1", d, 30, 500, 0, entity.InvoiceStatusCancelled), 120),
		withDays(invoice("INV6", "C1", d, 30, 900, 900, entity.InvoiceStatusPaid), 0),
	}

	stats := ComputeInvoiceStats(invoices)
	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 2600.0, stats.TotalAmount)
	assert.Equal(t, 1500.0, stats.TotalReceivable)
	assert.Equal(t, 3, stats.OverdueCount)
	assert.Equal(t, 900.0, stats.OverdueAmount)
	assert.Equal(t, entity.AgingBuckets{
		Bucket0To30:  100,
		Bucket31To60: 200,
		Bucket61To90: 300,
		Bucket90Plus: 400,
	}, stats.Aging)
	assert.Equal(t, 1000.0, stats.Aging.Total())
}

func TestComputeDeliveryStats(t *testing.T) {
	deliveries := []entity.Delivery{
		{DeliveryNo: "DL1", Status: entity.DeliveryStatusDelivered, PODAvailable: true},
		{DeliveryNo: "DL2", Status: entity.DeliveryStatusDelivered, PODAvailable: true},
		{DeliveryNo: "DL3", Status: entity.DeliveryStatusInTransit},
	}

	stats := ComputeDeliveryStats(deliveries)
	assert.Equal(t, DeliveryStats{Total: 3, Delivered: 2, InTransit: 1, WithPOD: 2, PODRate: 67}, stats)

	assert.Zero(t, ComputeDeliveryStats(nil).PODRate)
}
