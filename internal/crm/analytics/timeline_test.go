package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTimeline_SortedAndCapped(t *testing.T) {
	base := day(2024, time.January, 1)
	sizes := [][3]int{{0, 0, 0}, {1, 0, 0}, {3, 4, 5}, {12, 12, 12}, {20, 1, 0}, {0, 0, 30}}

	for _, size := range sizes {
		var (
			orders     []entity.Order
			invoices   []entity.Invoice
			deliveries []entity.Delivery
		)
		for i := 0; i < size[0]; i++ {
			orders = append(orders, order(fmt.Sprintf("SO%d", i), "C1", base.AddDate(0, 0, i*3), 100))
		}
		for i := 0; i < size[1]; i++ {
			invoices = append(invoices, invoice(fmt.Sprintf("INV%d", i), "C1", base.AddDate(0, 0, i*3+1), 30, 100, 0, entity.InvoiceStatusOpen))
		}
		for i := 0; i < size[2]; i++ {
			deliveries = append(deliveries, delivery(fmt.Sprintf("DL%d", i), "C1", ptrTime(base.AddDate(0, 0, i*3+2)), entity.DeliveryStatusDelivered))
		}

		entries := BuildTimeline(orders, invoices, deliveries)
		assert.LessOrEqual(t, len(entries), TimelineLimit, "sizes %v", size)
		for i := 1; i < len(entries); i++ {
			assert.False(t, entries[i].Date.After(entries[i-1].Date), "sizes %v: entry %d out of order", size, i)
		}
	}
}

func TestBuildTimeline_PerSourceLimitAppliedBeforeMerge(t *testing.T) {
	var orders []entity.Order
	for i := 0; i < 20; i++ {
		orders = append(orders, order(fmt.Sprintf("SO%02d", i), "C1", day(2024, time.June, 1).AddDate(0, 0, i), 100))
	}
	invoices := []entity.Invoice{
		invoice("INV1", "C1", day(2023, time.January, 1), 30, 500, 0, entity.InvoiceStatusOpen),
	}

	entries := BuildTimeline(orders, invoices, nil)
	require.Len(t, entries, TimelinePerSource+1)
	assert.Equal(t, "Order SO19", entries[0].Description)
	assert.Equal(t, "Order SO10", entries[9].Description)
	assert.Equal(t, ActivityInvoice, entries[10].Type)
}

func TestBuildTimeline_Entries(t *testing.T) {
	orders := []entity.Order{order("SO1", "C1", day(2024, time.March, 1), 1500)}
	invoices := []entity.Invoice{invoice("INV1", "C1", day(2024, time.March, 5), 30, 1600, 0, entity.InvoiceStatusOpen)}
	deliveries := []entity.Delivery{
		delivery("DL1", "C1", ptrTime(day(2024, time.March, 3)), entity.DeliveryStatusDelivered),
		delivery("DL2", "C1", nil, entity.DeliveryStatusInTransit),
	}

	entries := BuildTimeline(orders, invoices, deliveries)
	require.Len(t, entries, 3)

	assert.Equal(t, ActivityInvoice, entries[0].Type)
	assert.Equal(t, "Invoice INV1", entries[0].Description)
	require.NotNil(t, entries[0].Amount)
	assert.Equal(t, 1600.0, *entries[0].Amount)

	assert.Equal(t, ActivityDelivery, entries[1].Type)
	assert.Equal(t, "Delivery DL1", entries[1].Description)
	assert.Nil(t, entries[1].Amount)

	assert.Equal(t, ActivityOrder, entries[2].Type)
	assert.Equal(t, "Order SO1", entries[2].Description)
}

func TestBuildTimeline_DoesNotReorderInput(t *testing.T) {
	orders := []entity.Order{
		order("SO1", "C1", day(2024, time.January, 1), 1),
		order("SO2", "C1", day(2024, time.February, 1), 1),
	}
	BuildTimeline(orders, nil, nil)
	assert.Equal(t, "SO1", orders[0].OrderNo)
}
