package repository

import (
	"sort"
	"time"

	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
)

type DeliveryRepository struct {
	store *Store
	now   func() time.Time
}

func NewDeliveryRepository(store *Store, now func() time.Time) *DeliveryRepository {
	return &DeliveryRepository{store: store, now: now}
}

func (r *DeliveryRepository) Get(deliveryNo string) (*entity.Delivery, error) {
	d, ok := r.store.Current().FindDelivery(deliveryNo)
	if !ok {
		return nil, ErrNotFound
	}
	return &d, nil
}

func (r *DeliveryRepository) All() []entity.Delivery {
	return clone(r.store.Current().Deliveries())
}

func (r *DeliveryRepository) ByCustomer(customerNo string) []entity.Delivery {
	return clone(r.store.Current().DeliveriesByCustomer(customerNo))
}

func (r *DeliveryRepository) ByOrder(orderNo string) []entity.Delivery {
	return clone(r.store.Current().DeliveriesByOrder(orderNo))
}

// Search matches delivery, order, customer and tracking numbers plus customer name.
func (r *DeliveryRepository) Search(query string) []entity.Delivery {
	m := newMatcher(query)
	return filter(r.store.Current().Deliveries(), func(d entity.Delivery) bool {
		return m.match(d.DeliveryNo, d.OrderNo, d.CustomerNo, d.CustomerName, d.TrackingNo)
	})
}

type DeliveryListParams struct {
	Status     string
	CustomerNo string
	LastDays   int // planned within the last N days; 0 disables
	Keyword    string
	Page       int
	Size       int
}

// List returns matching deliveries, most recently planned first.
func (r *DeliveryRepository) List(params DeliveryListParams) ([]entity.Delivery, int64) {
	m := newMatcher(params.Keyword)
	ds := r.store.Current()
	source := ds.Deliveries()
	if params.CustomerNo != "" {
		source = ds.DeliveriesByCustomer(params.CustomerNo)
	}

	var since time.Time
	if params.LastDays > 0 {
		since = r.now().AddDate(0, 0, -params.LastDays)
	}

	deliveries := filter(source, func(d entity.Delivery) bool {
		if params.Status != "" && string(d.Status) != params.Status {
			return false
		}
		if !since.IsZero() && d.PlannedDate.Before(since) {
			return false
		}
		return m.match(d.DeliveryNo, d.OrderNo, d.CustomerNo, d.CustomerName, d.TrackingNo)
	})
	sort.SliceStable(deliveries, func(i, j int) bool {
		return deliveries[i].PlannedDate.After(deliveries[j].PlannedDate)
	})
	return paginate(deliveries, params.Page, params.Size)
}
