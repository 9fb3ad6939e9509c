package service

import (
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/analytics"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/repository"
)

type CustomerService struct {
	repos *repository.Repositories
}

func NewCustomerService(repos *repository.Repositories) *CustomerService {
	return &CustomerService{repos: repos}
}

// CustomerDetail 客户详情（含会员等级）
type CustomerDetail struct {
	entity.Customer
	CreditUtilization float64            `json:"credit_utilization"`
	Membership        *entity.Membership `json:"membership,omitempty"`
}

func (s *CustomerService) List(params repository.CustomerListParams) ([]entity.Customer, int64) {
	return s.repos.Customer.List(params)
}

func (s *CustomerService) Get(customerNo string) (*CustomerDetail, error) {
	c, err := s.repos.Customer.Get(customerNo)
	if err != nil {
		return nil, err
	}
	detail := &CustomerDetail{
		Customer:          *c,
		CreditUtilization: analytics.CreditUtilization(*c),
	}
	if m, err := s.repos.Membership.Get(customerNo); err == nil {
		detail.Membership = m
	}
	return detail, nil
}

// Orders returns the customer's orders newest first. Unknown customers are
// ErrNotFound rather than an empty list.
func (s *CustomerService) Orders(customerNo string, page, size int) ([]entity.Order, int64, error) {
	if _, err := s.repos.Customer.Get(customerNo); err != nil {
		return nil, 0, err
	}
	orders, total := s.repos.Order.List(repository.OrderListParams{CustomerNo: customerNo, Page: page, Size: size})
	return orders, total, nil
}

func (s *CustomerService) Invoices(customerNo string, page, size int) ([]entity.Invoice, int64, error) {
	if _, err := s.repos.Customer.Get(customerNo); err != nil {
		return nil, 0, err
	}
	invoices, total := s.repos.Invoice.List(repository.InvoiceListParams{CustomerNo: customerNo, Page: page, Size: size})
	return invoices, total, nil
}

func (s *CustomerService) Deliveries(customerNo string, page, size int) ([]entity.Delivery, int64, error) {
	if _, err := s.repos.Customer.Get(customerNo); err != nil {
		return nil, 0, err
	}
	deliveries, total := s.repos.Delivery.List(repository.DeliveryListParams{CustomerNo: customerNo, Page: page, Size: size})
	return deliveries, total, nil
}
