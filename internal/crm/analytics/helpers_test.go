package analytics

import (
	"time"

	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
)

// fixedRandom always returns the same draw.
type fixedRandom float64

func (f fixedRandom) Float64() float64 { return float64(f) }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptrTime(t time.Time) *time.Time { return &t }

func order(no, customerNo string, date time.Time, value float64) entity.Order {
	return entity.Order{
		OrderNo:    no,
		OrderDate:  date,
		DocType:    entity.DocTypeStandardOrder,
		NetValue:   value,
		Status:     entity.OrderStatusDelivered,
		CustomerNo: customerNo,
		ItemsCount: 1,
	}
}

func invoice(no, customerNo string, date time.Time, termDays int, amount, paid float64, status entity.InvoiceStatus) entity.Invoice {
	return entity.Invoice{
		InvoiceNo:   no,
		CustomerNo:  customerNo,
		InvoiceDate: date,
		DueDate:     date.AddDate(0, 0, termDays),
		Amount:      amount,
		PaidAmount:  paid,
		Balance:     amount - paid,
		Status:      status,
	}
}

func delivery(no, customerNo string, actual *time.Time, status entity.DeliveryStatus) entity.Delivery {
	planned := day(2024, time.January, 1)
	if actual != nil {
		planned = *actual
	}
	return entity.Delivery{
		DeliveryNo:  no,
		CustomerNo:  customerNo,
		PlannedDate: planned,
		ActualDate:  actual,
		Status:      status,
	}
}

type fakeDataset struct {
	customers   []entity.Customer
	orders      []entity.Order
	invoices    []entity.Invoice
	deliveries  []entity.Delivery
	memberships []entity.Membership
	campaigns   []entity.Campaign
}

func (f *fakeDataset) FindCustomer(customerNo string) (entity.Customer, bool) {
	for _, c := range f.customers {
		if c.CustomerNo == customerNo {
			return c, true
		}
	}
	return entity.Customer{}, false
}

func (f *fakeDataset) Customers() []entity.Customer     { return f.customers }
func (f *fakeDataset) Orders() []entity.Order           { return f.orders }
func (f *fakeDataset) Invoices() []entity.Invoice       { return f.invoices }
func (f *fakeDataset) Deliveries() []entity.Delivery    { return f.deliveries }
func (f *fakeDataset) Memberships() []entity.Membership { return f.memberships }
func (f *fakeDataset) Campaigns() []entity.Campaign     { return f.campaigns }

func (f *fakeDataset) OrdersByCustomer(customerNo string) []entity.Order {
	return filterByCustomer(f.orders, customerNo, func(o entity.Order) string { return o.CustomerNo })
}

func (f *fakeDataset) InvoicesByCustomer(customerNo string) []entity.Invoice {
	return filterByCustomer(f.invoices, customerNo, func(i entity.Invoice) string { return i.CustomerNo })
}

func (f *fakeDataset) DeliveriesByCustomer(customerNo string) []entity.Delivery {
	return filterByCustomer(f.deliveries, customerNo, func(d entity.Delivery) string { return d.CustomerNo })
}
