package repository

import (
	"sort"

	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
)

type OrderRepository struct {
	store *Store
}

func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{store: store}
}

func (r *OrderRepository) Get(orderNo string) (*entity.Order, error) {
	o, ok := r.store.Current().FindOrder(orderNo)
	if !ok {
		return nil, ErrNotFound
	}
	return &o, nil
}

func (r *OrderRepository) All() []entity.Order {
	return clone(r.store.Current().Orders())
}

func (r *OrderRepository) ByCustomer(customerNo string) []entity.Order {
	return clone(r.store.Current().OrdersByCustomer(customerNo))
}

// Search matches order number, customer number and customer name.
func (r *OrderRepository) Search(query string) []entity.Order {
	m := newMatcher(query)
	return filter(r.store.Current().Orders(), func(o entity.Order) bool {
		return m.match(o.OrderNo, o.CustomerNo, o.CustomerName)
	})
}

type OrderListParams struct {
	Status     string
	CustomerNo string
	Keyword    string
	Page       int
	Size       int
}

// List returns matching orders, newest first.
func (r *OrderRepository) List(params OrderListParams) ([]entity.Order, int64) {
	m := newMatcher(params.Keyword)
	ds := r.store.Current()
	source := ds.Orders()
	if params.CustomerNo != "" {
		source = ds.OrdersByCustomer(params.CustomerNo)
	}
	orders := filter(source, func(o entity.Order) bool {
		if params.Status != "" && string(o.Status) != params.Status {
			return false
		}
		return m.match(o.OrderNo, o.CustomerNo, o.CustomerName)
	})
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderDate.After(orders[j].OrderDate)
	})
	return paginate(orders, params.Page, params.Size)
}
