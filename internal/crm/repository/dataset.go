package repository

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
)

// Snapshot 一次加载得到的原始集合
type Snapshot struct {
	Customers    []entity.Customer              `json:"customers"`
	Orders       []entity.Order                 `json:"orders"`
	Invoices     []entity.Invoice               `json:"invoices"`
	Deliveries   []entity.Delivery              `json:"deliveries"`
	Memberships  []entity.Membership            `json:"memberships"`
	Transactions []entity.MembershipTransaction `json:"membership_transactions"`
	Campaigns    []entity.Campaign              `json:"campaigns"`
}

// Dataset is an immutable, indexed view of one Snapshot. It is never mutated
// after NewDataset returns, so it can be shared between goroutines freely;
// callers must not modify the slices it hands out.
type Dataset struct {
	version  string
	source   string
	loadedAt time.Time

	customers    []entity.Customer
	orders       []entity.Order
	invoices     []entity.Invoice
	deliveries   []entity.Delivery
	memberships  []entity.Membership
	transactions []entity.MembershipTransaction
	campaigns    []entity.Campaign

	customerByNo   map[string]int
	orderByNo      map[string]int
	invoiceByNo    map[string]int
	deliveryByNo   map[string]int
	membershipByNo map[string]int
	campaignByID   map[string]int

	ordersByCustomer       map[string][]entity.Order
	invoicesByCustomer     map[string][]entity.Invoice
	deliveriesByCustomer   map[string][]entity.Delivery
	deliveriesByOrder      map[string][]entity.Delivery
	transactionsByCustomer map[string][]entity.MembershipTransaction
}

// NewDataset indexes snap. The snapshot's slices are taken over, not copied.
func NewDataset(snap *Snapshot, source string) *Dataset {
	if snap == nil {
		snap = &Snapshot{}
	}

	// 流水按时间倒序
	transactions := snap.Transactions
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].TransactionDate.After(transactions[j].TransactionDate)
	})

	customerNo := func(c entity.Customer) string { return c.CustomerNo }
	orderNo := func(o entity.Order) string { return o.OrderNo }
	orderCustomer := func(o entity.Order) string { return o.CustomerNo }
	invoiceNo := func(i entity.Invoice) string { return i.InvoiceNo }
	invoiceCustomer := func(i entity.Invoice) string { return i.CustomerNo }
	deliveryNo := func(d entity.Delivery) string { return d.DeliveryNo }
	deliveryCustomer := func(d entity.Delivery) string { return d.CustomerNo }
	deliveryOrder := func(d entity.Delivery) string { return d.OrderNo }

	return &Dataset{
		version:  uuid.NewString(),
		source:   source,
		loadedAt: time.Now(),

		customers:    snap.Customers,
		orders:       snap.Orders,
		invoices:     snap.Invoices,
		deliveries:   snap.Deliveries,
		memberships:  snap.Memberships,
		transactions: transactions,
		campaigns:    snap.Campaigns,

		customerByNo:   positions(snap.Customers, customerNo),
		orderByNo:      positions(snap.Orders, orderNo),
		invoiceByNo:    positions(snap.Invoices, invoiceNo),
		deliveryByNo:   positions(snap.Deliveries, deliveryNo),
		membershipByNo: positions(snap.Memberships, func(m entity.Membership) string { return m.CustomerNo }),
		campaignByID:   positions(snap.Campaigns, func(c entity.Campaign) string { return c.CampaignID }),

		ordersByCustomer:       groupBy(snap.Orders, orderCustomer),
		invoicesByCustomer:     groupBy(snap.Invoices, invoiceCustomer),
		deliveriesByCustomer:   groupBy(snap.Deliveries, deliveryCustomer),
		deliveriesByOrder:      groupBy(snap.Deliveries, deliveryOrder),
		transactionsByCustomer: groupBy(transactions, func(t entity.MembershipTransaction) string { return t.CustomerNo }),
	}
}

// positions maps each key to its first position in items.
func positions[T any](items []T, key func(T) string) map[string]int {
	idx := make(map[string]int, len(items))
	for i, item := range items {
		k := key(item)
		if _, dup := idx[k]; !dup {
			idx[k] = i
		}
	}
	return idx
}

func groupBy[T any](items []T, key func(T) string) map[string][]T {
	groups := make(map[string][]T)
	for _, item := range items {
		k := key(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

func lookup[T any](items []T, idx map[string]int, key string) (T, bool) {
	i, ok := idx[key]
	if !ok {
		var zero T
		return zero, false
	}
	return items[i], true
}

func (d *Dataset) Version() string     { return d.version }
func (d *Dataset) Source() string      { return d.source }
func (d *Dataset) LoadedAt() time.Time { return d.loadedAt }

func (d *Dataset) Customers() []entity.Customer                 { return d.customers }
func (d *Dataset) Orders() []entity.Order                       { return d.orders }
func (d *Dataset) Invoices() []entity.Invoice                   { return d.invoices }
func (d *Dataset) Deliveries() []entity.Delivery                { return d.deliveries }
func (d *Dataset) Memberships() []entity.Membership             { return d.memberships }
func (d *Dataset) Transactions() []entity.MembershipTransaction { return d.transactions }
func (d *Dataset) Campaigns() []entity.Campaign                 { return d.campaigns }

func (d *Dataset) FindCustomer(customerNo string) (entity.Customer, bool) {
	return lookup(d.customers, d.customerByNo, customerNo)
}

func (d *Dataset) FindOrder(orderNo string) (entity.Order, bool) {
	return lookup(d.orders, d.orderByNo, orderNo)
}

func (d *Dataset) FindInvoice(invoiceNo string) (entity.Invoice, bool) {
	return lookup(d.invoices, d.invoiceByNo, invoiceNo)
}

func (d *Dataset) FindDelivery(deliveryNo string) (entity.Delivery, bool) {
	return lookup(d.deliveries, d.deliveryByNo, deliveryNo)
}

func (d *Dataset) FindMembership(customerNo string) (entity.Membership, bool) {
	return lookup(d.memberships, d.membershipByNo, customerNo)
}

func (d *Dataset) FindCampaign(campaignID string) (entity.Campaign, bool) {
	return lookup(d.campaigns, d.campaignByID, campaignID)
}

func (d *Dataset) OrdersByCustomer(customerNo string) []entity.Order {
	return d.ordersByCustomer[customerNo]
}

func (d *Dataset) InvoicesByCustomer(customerNo string) []entity.Invoice {
	return d.invoicesByCustomer[customerNo]
}

func (d *Dataset) DeliveriesByCustomer(customerNo string) []entity.Delivery {
	return d.deliveriesByCustomer[customerNo]
}

func (d *Dataset) DeliveriesByOrder(orderNo string) []entity.Delivery {
	return d.deliveriesByOrder[orderNo]
}

// TransactionsByCustomer returns the member's ledger, newest first.
func (d *Dataset) TransactionsByCustomer(customerNo string) []entity.MembershipTransaction {
	return d.transactionsByCustomer[customerNo]
}
