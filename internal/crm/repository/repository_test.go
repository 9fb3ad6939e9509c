package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/repository"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupRepos(t *testing.T) *repository.Repositories {
	t.Helper()
	return repository.NewRepositories(testutil.NewStore(t, testutil.Snapshot()))
}

func TestDatasetIndexes(t *testing.T) {
	ds := repository.NewDataset(testutil.Snapshot(), "test")

	c, ok := ds.FindCustomer("1000002")
	require.True(t, ok)
	assert.Equal(t, "Thai Packaging Solutions Ltd.", c.LegalName)

	_, ok = ds.FindCustomer("0000000")
	assert.False(t, ok)

	assert.Len(t, ds.OrdersByCustomer("1000001"), 2)
	assert.Len(t, ds.OrdersByCustomer("9999999"), 1)
	assert.Empty(t, ds.InvoicesByCustomer("1000002"))
	assert.Len(t, ds.DeliveriesByOrder("SO0000001"), 1)

	_, ok = ds.FindCampaign("CAMP-2024-004")
	assert.True(t, ok)
	assert.NotEmpty(t, ds.Version())
	assert.Equal(t, "test", ds.Source())
}

func TestDatasetTransactionsNewestFirst(t *testing.T) {
	ds := repository.NewDataset(testutil.Snapshot(), "test")

	txns := ds.TransactionsByCustomer("1000001")
	require.Len(t, txns, 2)
	assert.Equal(t, "TXN-2024-001", txns[0].TransactionID)
	assert.Equal(t, "TXN-2024-002", txns[1].TransactionID)
}

func TestNilSnapshotIsEmpty(t *testing.T) {
	ds := repository.NewDataset(nil, "empty")
	assert.Empty(t, ds.Customers())
	assert.Empty(t, ds.OrdersByCustomer("1000001"))
}

func TestCustomerRepository(t *testing.T) {
	repos := setupRepos(t)

	t.Run("get", func(t *testing.T) {
		c, err := repos.Customer.Get("1000001")
		require.NoError(t, err)
		assert.Equal(t, entity.SegmentPublishing, c.Segment)

		_, err = repos.Customer.Get("nope")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("search is case insensitive", func(t *testing.T) {
		found := repos.Customer.Search("BANGKOK publishing")
		require.Len(t, found, 1)
		assert.Equal(t, "1000001", found[0].CustomerNo)
	})

	t.Run("search by tax id", func(t *testing.T) {
		found := repos.Customer.Search("0105598765432")
		require.Len(t, found, 1)
		assert.Equal(t, "1000002", found[0].CustomerNo)
	})

	t.Run("empty query matches all", func(t *testing.T) {
		assert.Len(t, repos.Customer.Search("  "), 2)
	})

	t.Run("list filters", func(t *testing.T) {
		list, total := repos.Customer.List(repository.CustomerListParams{Territory: "Central"})
		assert.Equal(t, int64(1), total)
		require.Len(t, list, 1)
		assert.Equal(t, "1000002", list[0].CustomerNo)
	})

	t.Run("pagination", func(t *testing.T) {
		list, total := repos.Customer.List(repository.CustomerListParams{Page: 2, Size: 1})
		assert.Equal(t, int64(2), total)
		require.Len(t, list, 1)
		assert.Equal(t, "1000002", list[0].CustomerNo)

		list, total = repos.Customer.List(repository.CustomerListParams{Page: 5, Size: 1})
		assert.Equal(t, int64(2), total)
		assert.Empty(t, list)
	})
}

func TestOrderRepositoryList(t *testing.T) {
	repos := setupRepos(t)

	orders, total := repos.Order.List(repository.OrderListParams{})
	assert.Equal(t, int64(4), total)
	require.Len(t, orders, 4)
	assert.Equal(t, "SO0000004", orders[0].OrderNo, "newest first")

	orders, total = repos.Order.List(repository.OrderListParams{Status: "Open"})
	assert.Equal(t, int64(2), total)
	for _, o := range orders {
		assert.Equal(t, entity.OrderStatusOpen, o.Status)
	}

	orders, _ = repos.Order.List(repository.OrderListParams{CustomerNo: "1000001", Keyword: "so0000001"})
	require.Len(t, orders, 1)
	assert.Equal(t, "SO0000001", orders[0].OrderNo)
}

func TestInvoiceRepositoryAgingFilter(t *testing.T) {
	repos := setupRepos(t)

	invoices, total := repos.Invoice.List(repository.InvoiceListParams{AgingBucket: "61-90"})
	assert.Equal(t, int64(1), total)
	require.Len(t, invoices, 1)
	assert.Equal(t, "INV20240000002", invoices[0].InvoiceNo)

	// paid invoices never land in a bucket
	_, total = repos.Invoice.List(repository.InvoiceListParams{AgingBucket: "0-30"})
	assert.Equal(t, int64(0), total)

	found := repos.Invoice.Search("SO0000001")
	require.Len(t, found, 1)
	assert.Equal(t, "INV20240000001", found[0].InvoiceNo)
}

func TestDeliveryRepository(t *testing.T) {
	repos := setupRepos(t)

	assert.Len(t, repos.Delivery.ByOrder("SO0000002"), 1)
	assert.Empty(t, repos.Delivery.ByOrder("SO0000003"))

	found := repos.Delivery.Search("cnx987")
	require.Len(t, found, 1)
	assert.Equal(t, "DL0000002", found[0].DeliveryNo)

	list, total := repos.Delivery.List(repository.DeliveryListParams{Status: "In Transit"})
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
}

func TestDeliveryRepositoryLastDays(t *testing.T) {
	store := testutil.NewStore(t, testutil.Snapshot())
	repo := repository.NewDeliveryRepository(store, func() time.Time { return testutil.Now })

	list, total := repo.List(repository.DeliveryListParams{LastDays: 30})
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, "DL0000002", list[0].DeliveryNo)
}

func TestMembershipRepository(t *testing.T) {
	repos := setupRepos(t)

	all := repos.Membership.All()
	require.Len(t, all, 2)
	assert.Equal(t, "1000001", all[0].CustomerNo, "highest balance first")

	gold := repos.Membership.ByTier(entity.TierGold)
	require.Len(t, gold, 1)
	assert.Equal(t, "1000002", gold[0].CustomerNo)

	list, total := repos.Membership.List(repository.MembershipListParams{Keyword: "packaging"})
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)

	txns := repos.Membership.Transactions("1000001")
	require.Len(t, txns, 2)
	assert.True(t, txns[0].TransactionDate.After(txns[1].TransactionDate))
	assert.Empty(t, repos.Membership.Transactions("1000002"))

	_, err := repos.Membership.Get("9999999")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCampaignRepository(t *testing.T) {
	repos := setupRepos(t)

	active := repos.Campaign.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "CAMP-2024-004", active[0].CampaignID)

	c, err := repos.Campaign.Get("CAMP-2024-001")
	require.NoError(t, err)
	assert.Equal(t, entity.CampaignStatusCompleted, c.Status)
}

type failingLoader struct{}

func (failingLoader) Source() string { return "failing" }

func (failingLoader) Load(context.Context) (*repository.Snapshot, error) {
	return nil, errors.New("connection refused")
}

// switchLoader serves the fixture until fail is set.
type switchLoader struct {
	fail bool
}

func (l *switchLoader) Source() string { return "switch" }

func (l *switchLoader) Load(ctx context.Context) (*repository.Snapshot, error) {
	if l.fail {
		return failingLoader{}.Load(ctx)
	}
	return repository.StaticLoader{Snapshot: testutil.Snapshot()}.Load(ctx)
}

func TestStoreReload(t *testing.T) {
	loader := &switchLoader{}
	store := repository.NewStore(loader, zap.NewNop())
	assert.Empty(t, store.Current().Customers(), "empty before first load")

	first, err := store.Reload(context.Background())
	require.NoError(t, err)
	assert.Len(t, store.Current().Customers(), 2)

	second, err := store.Reload(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, first.Version(), second.Version())
	assert.Equal(t, second.Version(), store.Current().Version())

	loader.fail = true
	_, err = store.Reload(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load switch dataset")
	assert.Equal(t, second.Version(), store.Current().Version(), "previous dataset stays active")
}

func TestStoreReloadFailureBeforeFirstLoad(t *testing.T) {
	store := repository.NewStore(failingLoader{}, nil)
	_, err := store.Reload(context.Background())
	require.Error(t, err)
	assert.Empty(t, store.Current().Customers())
}
