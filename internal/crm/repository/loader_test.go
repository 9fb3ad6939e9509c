package repository_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/skirdsawad/papertech-crm-poc/internal/crm/analytics"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/repository"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generate(seed int64) *repository.Snapshot {
	return repository.Generate(repository.GeneratorOptions{
		Seed: seed,
		Now:  func() time.Time { return testutil.Now },
	})
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := generate(7)
	b := generate(7)
	assert.Equal(t, a, b)

	c := generate(8)
	assert.NotEqual(t, a.Orders, c.Orders)
}

func TestGenerateShape(t *testing.T) {
	snap := generate(repository.DefaultGeneratorSeed)

	assert.Len(t, snap.Customers, repository.DefaultGeneratedCustomers)
	assert.Len(t, snap.Orders, repository.DefaultGeneratedOrders)
	assert.Len(t, snap.Campaigns, 6)
	assert.Equal(t, "1000001", snap.Customers[0].CustomerNo)
	assert.Equal(t, "Bangkok Publishing House Co., Ltd.", snap.Customers[0].LegalName)

	for i := 1; i < len(snap.Orders); i++ {
		assert.False(t, snap.Orders[i].OrderDate.Before(snap.Orders[i-1].OrderDate), "orders sorted by date")
	}
	for _, o := range snap.Orders {
		assert.False(t, o.OrderDate.After(testutil.Now))
		assert.False(t, o.OrderDate.Before(testutil.Now.AddDate(0, -12, 0)))
		assert.GreaterOrEqual(t, o.NetValue, 100000.0)
		assert.LessOrEqual(t, o.NetValue, 3000000.0)
		assert.Equal(t, o.Status == entity.OrderStatusOpen, o.DeliveryDate == nil)
	}
}

func TestGenerateDeliveries(t *testing.T) {
	snap := generate(repository.DefaultGeneratorSeed)
	ds := repository.NewDataset(snap, "generated")

	open := 0
	for _, o := range snap.Orders {
		if o.Status == entity.OrderStatusOpen {
			open++
			assert.Empty(t, ds.DeliveriesByOrder(o.OrderNo))
		}
	}
	assert.Len(t, snap.Deliveries, len(snap.Orders)-open)

	for _, d := range snap.Deliveries {
		assert.Equal(t, d.PODAvailable, d.POD != nil, d.DeliveryNo)
		if d.Status == entity.DeliveryStatusDelivered {
			assert.NotNil(t, d.ActualDate, d.DeliveryNo)
		} else {
			assert.Nil(t, d.ActualDate, d.DeliveryNo)
			assert.True(t, d.Status.Pending(), d.DeliveryNo)
		}
	}
}

func TestGenerateInvoicesAndCredit(t *testing.T) {
	snap := generate(repository.DefaultGeneratorSeed)
	require.NotEmpty(t, snap.Invoices)

	for _, inv := range snap.Invoices {
		assert.InDelta(t, inv.Amount-inv.PaidAmount, inv.Balance, 0.001, inv.InvoiceNo)
		assert.True(t, inv.DueDate.After(inv.InvoiceDate), inv.InvoiceNo)
		switch inv.Status {
		case entity.InvoiceStatusPaid:
			assert.Zero(t, inv.Balance, inv.InvoiceNo)
		case entity.InvoiceStatusOverdue:
			assert.GreaterOrEqual(t, inv.DaysOverdue, 0, inv.InvoiceNo)
			assert.Positive(t, inv.Balance, inv.InvoiceNo)
		}
	}

	exposure := map[string]float64{}
	for _, inv := range snap.Invoices {
		if analytics.Receivable(inv) {
			exposure[inv.CustomerNo] += inv.Balance
		}
	}
	for _, c := range snap.Customers {
		assert.InDelta(t, exposure[c.CustomerNo], c.CreditExposure, 0.01, c.CustomerNo)
		assert.InDelta(t, c.CreditLimit-c.CreditExposure, c.CreditAvailable, 0.01, c.CustomerNo)
		assert.InDelta(t, c.CreditExposure, c.Aging.Total(), 0.01, c.CustomerNo)
	}
}

func TestGenerateMemberships(t *testing.T) {
	snap := generate(repository.DefaultGeneratorSeed)
	require.GreaterOrEqual(t, len(snap.Memberships), 5)

	assert.Equal(t, entity.TierPlatinum, snap.Memberships[0].CurrentTier)
	assert.Equal(t, int64(185000), snap.Memberships[0].PointsBalance)
	assert.Empty(t, snap.Memberships[0].NextTier)

	customers := map[string]bool{}
	for _, c := range snap.Customers {
		customers[c.CustomerNo] = true
	}
	for _, m := range snap.Memberships {
		assert.True(t, customers[m.CustomerNo], m.CustomerNo)
		assert.Equal(t, analytics.NextTier(m.CurrentTier), m.NextTier, m.CustomerNo)
		assert.GreaterOrEqual(t, m.PointsLifetime, m.PointsBalance, m.CustomerNo)
	}

	ids := map[string]bool{}
	for i, txn := range snap.Transactions {
		assert.False(t, ids[txn.TransactionID], "duplicate %s", txn.TransactionID)
		ids[txn.TransactionID] = true
		if i > 0 {
			assert.False(t, txn.TransactionDate.Before(snap.Transactions[i-1].TransactionDate))
		}
	}
}

func TestGeneratedLoader(t *testing.T) {
	loader := repository.NewGeneratedLoader(repository.GeneratorOptions{
		Seed:      1,
		Customers: 3,
		Orders:    10,
		Now:       func() time.Time { return testutil.Now },
	})
	assert.Equal(t, repository.SourceGenerated, loader.Source())

	snap, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Customers, 3)
	assert.Len(t, snap.Orders, 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = loader.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func writeJSON(t *testing.T, dir, name string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}

func TestFileLoader(t *testing.T) {
	fixture := testutil.Snapshot()
	dir := t.TempDir()
	writeJSON(t, dir, "customers.json", fixture.Customers)
	writeJSON(t, dir, "orders.json", fixture.Orders)
	writeJSON(t, dir, "memberships.json", fixture.Memberships)

	snap, err := repository.NewFileLoader(dir).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Customers, 2)
	assert.Len(t, snap.Orders, 4)
	assert.Empty(t, snap.Invoices, "missing optional file")
	require.Len(t, snap.Memberships, 2)
	assert.Equal(t, entity.TierPlatinum, snap.Memberships[0].CurrentTier)
}

func TestFileLoaderErrors(t *testing.T) {
	t.Run("customers required", func(t *testing.T) {
		_, err := repository.NewFileLoader(t.TempDir()).Load(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("bad json", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "customers.json"), []byte("{"), 0o644))
		_, err := repository.NewFileLoader(dir).Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode")
	})
}

func TestNewLoader(t *testing.T) {
	l, err := repository.NewLoader(repository.LoaderOptions{})
	require.NoError(t, err)
	assert.Equal(t, repository.SourceGenerated, l.Source())

	l, err = repository.NewLoader(repository.LoaderOptions{Source: "file", FilePath: "/tmp"})
	require.NoError(t, err)
	assert.Equal(t, repository.SourceFile, l.Source())

	_, err = repository.NewLoader(repository.LoaderOptions{Source: "file"})
	assert.Error(t, err)

	_, err = repository.NewLoader(repository.LoaderOptions{Source: "postgres"})
	assert.Error(t, err)

	_, err = repository.NewLoader(repository.LoaderOptions{Source: "kafka"})
	assert.ErrorIs(t, err, repository.ErrUnknownSource)
}

func TestPostgresSeedAndLoad(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	snap := repository.Generate(repository.GeneratorOptions{
		Seed:      3,
		Customers: 8,
		Orders:    40,
		Now:       func() time.Time { return testutil.Now },
	})
	require.NoError(t, repository.Seed(ctx, db, snap))
	// seeding twice upserts instead of duplicating
	require.NoError(t, repository.Seed(ctx, db, snap))

	loaded, err := repository.NewPostgresLoader(db).Load(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded.Customers, len(snap.Customers))
	assert.Len(t, loaded.Orders, len(snap.Orders))
	assert.Len(t, loaded.Invoices, len(snap.Invoices))
	assert.Len(t, loaded.Deliveries, len(snap.Deliveries))
	assert.Len(t, loaded.Memberships, len(snap.Memberships))
	assert.Len(t, loaded.Transactions, len(snap.Transactions))
	assert.Len(t, loaded.Campaigns, len(snap.Campaigns))

	ds := repository.NewDataset(loaded, repository.SourcePostgres)
	c, ok := ds.FindCustomer("1000001")
	require.True(t, ok)
	assert.InDelta(t, snap.Customers[0].CreditLimit, c.CreditLimit, 0.01)
	camp, ok := ds.FindCampaign("CAMP-2024-001")
	require.True(t, ok)
	assert.Len(t, camp.Benefits, 2)
}
