package repository

import (
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
)

type CustomerRepository struct {
	store *Store
}

func NewCustomerRepository(store *Store) *CustomerRepository {
	return &CustomerRepository{store: store}
}

func (r *CustomerRepository) Get(customerNo string) (*entity.Customer, error) {
	c, ok := r.store.Current().FindCustomer(customerNo)
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (r *CustomerRepository) All() []entity.Customer {
	return clone(r.store.Current().Customers())
}

// Search matches customer number, legal name and tax id.
func (r *CustomerRepository) Search(query string) []entity.Customer {
	m := newMatcher(query)
	return filter(r.store.Current().Customers(), func(c entity.Customer) bool {
		return m.match(c.CustomerNo, c.LegalName, c.TaxID)
	})
}

type CustomerListParams struct {
	Segment   string
	Territory string
	Keyword   string
	Page      int
	Size      int
}

func (r *CustomerRepository) List(params CustomerListParams) ([]entity.Customer, int64) {
	m := newMatcher(params.Keyword)
	customers := filter(r.store.Current().Customers(), func(c entity.Customer) bool {
		if params.Segment != "" && string(c.Segment) != params.Segment {
			return false
		}
		if params.Territory != "" && string(c.Territory) != params.Territory {
			return false
		}
		return m.match(c.CustomerNo, c.LegalName, c.TaxID)
	})
	return paginate(customers, params.Page, params.Size)
}
