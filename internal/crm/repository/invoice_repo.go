package repository

import (
	"sort"

	"github.com/skirdsawad/papertech-crm-poc/internal/crm/analytics"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
)

type InvoiceRepository struct {
	store *Store
}

func NewInvoiceRepository(store *Store) *InvoiceRepository {
	return &InvoiceRepository{store: store}
}

func (r *InvoiceRepository) Get(invoiceNo string) (*entity.Invoice, error) {
	inv, ok := r.store.Current().FindInvoice(invoiceNo)
	if !ok {
		return nil, ErrNotFound
	}
	return &inv, nil
}

func (r *InvoiceRepository) All() []entity.Invoice {
	return clone(r.store.Current().Invoices())
}

func (r *InvoiceRepository) ByCustomer(customerNo string) []entity.Invoice {
	return clone(r.store.Current().InvoicesByCustomer(customerNo))
}

// Search matches invoice number, customer, and referenced order.
func (r *InvoiceRepository) Search(query string) []entity.Invoice {
	m := newMatcher(query)
	return filter(r.store.Current().Invoices(), func(inv entity.Invoice) bool {
		return m.match(inv.InvoiceNo, inv.CustomerNo, inv.CustomerName, inv.ReferenceOrder)
	})
}

type InvoiceListParams struct {
	Status      string
	CustomerNo  string
	AgingBucket string // 0-30, 31-60, 61-90, 90+; only receivable invoices match
	Keyword     string
	Page        int
	Size        int
}

// List returns matching invoices, newest first.
func (r *InvoiceRepository) List(params InvoiceListParams) ([]entity.Invoice, int64) {
	m := newMatcher(params.Keyword)
	ds := r.store.Current()
	source := ds.Invoices()
	if params.CustomerNo != "" {
		source = ds.InvoicesByCustomer(params.CustomerNo)
	}
	invoices := filter(source, func(inv entity.Invoice) bool {
		if params.Status != "" && string(inv.Status) != params.Status {
			return false
		}
		if params.AgingBucket != "" {
			if !analytics.Receivable(inv) || string(analytics.BucketFor(inv.DaysOverdue)) != params.AgingBucket {
				return false
			}
		}
		return m.match(inv.InvoiceNo, inv.CustomerNo, inv.CustomerName, inv.ReferenceOrder)
	})
	sort.SliceStable(invoices, func(i, j int) bool {
		return invoices[i].InvoiceDate.After(invoices[j].InvoiceDate)
	})
	return paginate(invoices, params.Page, params.Size)
}
