package analytics

import (
	"time"

	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
)

// Dataset is the read-only view of one loaded snapshot the engine works on.
// Slices returned by implementations must not be modified by the caller.
type Dataset interface {
	FindCustomer(customerNo string) (entity.Customer, bool)
	Customers() []entity.Customer
	Orders() []entity.Order
	Invoices() []entity.Invoice
	Deliveries() []entity.Delivery
	OrdersByCustomer(customerNo string) []entity.Order
	InvoicesByCustomer(customerNo string) []entity.Invoice
	DeliveriesByCustomer(customerNo string) []entity.Delivery
	Memberships() []entity.Membership
	Campaigns() []entity.Campaign
}

// DefaultPaymentSeed seeds the payment-days estimate when none is configured.
const DefaultPaymentSeed int64 = 42

// Engine computes customer-360 and dashboard figures over a Dataset.
type Engine struct {
	data        Dataset
	now         func() time.Time
	paymentSeed int64
}

type Option func(*Engine)

// WithClock fixes the reference time used for growth windows.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func WithPaymentSeed(seed int64) Option {
	return func(e *Engine) {
		e.paymentSeed = seed
	}
}

func NewEngine(data Dataset, opts ...Option) *Engine {
	e := &Engine{
		data:        data,
		now:         time.Now,
		paymentSeed: DefaultPaymentSeed,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Now returns the engine's reference time.
func (e *Engine) Now() time.Time {
	return e.now()
}

// CustomerMetrics returns nil when the customer is not in the dataset. The
// payment-days estimate draws from a fresh generator on every call, so the
// same dataset and clock always give the same result.
func (e *Engine) CustomerMetrics(customerNo string) *CustomerMetrics {
	customer, ok := e.data.FindCustomer(customerNo)
	if !ok {
		return nil
	}
	return ComputeCustomerMetrics(
		customer,
		e.data.OrdersByCustomer(customerNo),
		e.data.InvoicesByCustomer(customerNo),
		e.data.DeliveriesByCustomer(customerNo),
		e.now(),
		NewSeededRandom(e.paymentSeed),
	)
}

func (e *Engine) Dashboard() *DashboardMetrics {
	return ComputeDashboard(DashboardInput{
		Customers:   e.data.Customers(),
		Orders:      e.data.Orders(),
		Invoices:    e.data.Invoices(),
		Deliveries:  e.data.Deliveries(),
		Memberships: e.data.Memberships(),
		Campaigns:   e.data.Campaigns(),
	}, e.now())
}
