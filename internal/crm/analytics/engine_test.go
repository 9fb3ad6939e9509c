package analytics

import (
	"testing"
	"time"

	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDataset() *fakeDataset {
	return &fakeDataset{
		customers: []entity.Customer{
			{CustomerNo: "C1", LegalName: "Siam Print", Segment: entity.SegmentPrinting, CreditLimit: 1000, CreditExposure: 100},
			{CustomerNo: "C2", LegalName: "Bangkok Pack", Segment: entity.SegmentPackaging},
		},
		orders: []entity.Order{
			order("SO1", "C1", day(2024, time.May, 1), 100),
			order("SO2", "C2", day(2024, time.May, 1), 200),
		},
		invoices: []entity.Invoice{
			invoice("INV1", "C1", day(2024, time.January, 1), 60, 100, 100, entity.InvoiceStatusPaid),
			invoice("INV2", "C1", day(2024, time.February, 1), 30, 100, 100, entity.InvoiceStatusPaid),
			invoice("INV3", "C1", day(2024, time.March, 1), 45, 100, 100, entity.InvoiceStatusPaid),
		},
		memberships: []entity.Membership{{CustomerNo: "C1", CurrentTier: entity.TierGold}},
		campaigns: []entity.Campaign{
			{CampaignID: "CAMP1", Status: entity.CampaignStatusActive},
			{CampaignID: "CAMP2", Status: entity.CampaignStatusCompleted},
		},
	}
}

func TestEngine_CustomerMetrics(t *testing.T) {
	now := day(2024, time.June, 15)
	engine := NewEngine(newTestDataset(), WithClock(func() time.Time { return now }), WithPaymentSeed(99))

	assert.Nil(t, engine.CustomerMetrics("NOPE"))

	first := engine.CustomerMetrics("C1")
	require.NotNil(t, first)
	assert.Equal(t, 1, first.TotalOrders)
	assert.Equal(t, 10.0, first.CreditUtilization)

	second := engine.CustomerMetrics("C1")
	assert.Equal(t, first, second)
}

func TestEngine_FreshEnginesAgree(t *testing.T) {
	now := day(2024, time.June, 15)
	clock := WithClock(func() time.Time { return now })
	a := NewEngine(newTestDataset(), clock, WithPaymentSeed(1)).CustomerMetrics("C1")
	b := NewEngine(newTestDataset(), clock, WithPaymentSeed(1)).CustomerMetrics("C1")
	assert.Equal(t, a.AvgPaymentDays, b.AvgPaymentDays)
}

func TestEngine_Dashboard(t *testing.T) {
	now := day(2024, time.June, 15)
	engine := NewEngine(newTestDataset(), WithClock(func() time.Time { return now }))

	d := engine.Dashboard()
	require.NotNil(t, d)
	assert.Equal(t, now, d.AsOf)
	assert.Equal(t, 2, d.CustomerCount)
	assert.Equal(t, 2, d.Orders.Total)
	assert.Equal(t, 300.0, d.Orders.TotalValue)
	assert.Equal(t, 3, d.Invoices.Total)
	assert.Equal(t, 1, d.ActiveCampaigns)
	assert.Equal(t, 1, d.Membership.TotalMembers)
	require.Len(t, d.TopCustomers, 2)
	assert.Equal(t, "C2", d.TopCustomers[0].CustomerNo)
	require.Len(t, d.Segments, 2)
	assert.Equal(t, "Packaging", d.Segments[0].Key)
}
