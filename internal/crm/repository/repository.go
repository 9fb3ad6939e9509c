package repository

import "time"

// Repositories CRM 仓库集合
type Repositories struct {
	Store      *Store
	Customer   *CustomerRepository
	Order      *OrderRepository
	Invoice    *InvoiceRepository
	Delivery   *DeliveryRepository
	Membership *MembershipRepository
	Campaign   *CampaignRepository
}

func NewRepositories(store *Store) *Repositories {
	return &Repositories{
		Store:      store,
		Customer:   NewCustomerRepository(store),
		Order:      NewOrderRepository(store),
		Invoice:    NewInvoiceRepository(store),
		Delivery:   NewDeliveryRepository(store, time.Now),
		Membership: NewMembershipRepository(store),
		Campaign:   NewCampaignRepository(store),
	}
}
