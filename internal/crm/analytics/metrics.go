// Package analytics turns SAP snapshot collections into the derived figures
// shown on the customer-360 and dashboard views. Everything here is a pure
// function of its inputs: no I/O, no shared state, fresh result values per call.
package analytics

import (
	"time"

	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
)

// TopProductsLimit is the length of CustomerMetrics.TopProducts.
const TopProductsLimit = 5

// CustomerMetrics 客户360指标
type CustomerMetrics struct {
	CustomerNo          string                 `json:"customer_no"`
	TotalOrders         int                    `json:"total_orders"`
	TotalRevenue        float64                `json:"total_revenue"`
	AvgOrderValue       float64                `json:"avg_order_value"`
	TotalInvoices       int                    `json:"total_invoices"`
	TotalPaid           float64                `json:"total_paid"`
	TotalOutstanding    float64                `json:"total_outstanding"`
	OverdueAmount       float64                `json:"overdue_amount"`
	CompletedDeliveries int                    `json:"completed_deliveries"`
	PendingDeliveries   int                    `json:"pending_deliveries"`
	AvgPaymentDays      float64                `json:"avg_payment_days"`
	OverdueRatio        float64                `json:"overdue_ratio"`
	OrderGrowthRate     float64                `json:"order_growth_rate"`
	TopProducts         []ProductSummary       `json:"top_products"`
	RecentActivity      []ActivityEntry        `json:"recent_activity"`
	PaymentBehavior     entity.PaymentBehavior `json:"payment_behavior"`
	CreditUtilization   float64                `json:"credit_utilization"`
}

// OrderRollup 订单汇总
type OrderRollup struct {
	TotalOrders   int     `json:"total_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
	AvgOrderValue float64 `json:"avg_order_value"`
}

// InvoiceRollup 发票汇总
type InvoiceRollup struct {
	TotalInvoices    int     `json:"total_invoices"`
	TotalAmount      float64 `json:"total_amount"`
	TotalPaid        float64 `json:"total_paid"`
	TotalOutstanding float64 `json:"total_outstanding"`
	OverdueAmount    float64 `json:"overdue_amount"`
}

// DeliveryRollup 交货汇总
type DeliveryRollup struct {
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Failed    int `json:"failed"`
}

func RollupOrders(orders []entity.Order) OrderRollup {
	revenue := sumOf(orders, func(o entity.Order) float64 { return o.NetValue })
	return OrderRollup{
		TotalOrders:   len(orders),
		TotalRevenue:  revenue,
		AvgOrderValue: ratio(revenue, float64(len(orders))),
	}
}

func RollupInvoices(invoices []entity.Invoice) InvoiceRollup {
	overdue := make([]entity.Invoice, 0)
	for _, inv := range invoices {
		if inv.Status == entity.InvoiceStatusOverdue {
			overdue = append(overdue, inv)
		}
	}
	balance := func(i entity.Invoice) float64 { return i.Balance }
	return InvoiceRollup{
		TotalInvoices:    len(invoices),
		TotalAmount:      sumOf(invoices, func(i entity.Invoice) float64 { return i.Amount }),
		TotalPaid:        sumOf(invoices, func(i entity.Invoice) float64 { return i.PaidAmount }),
		TotalOutstanding: sumOf(invoices, balance),
		OverdueAmount:    sumOf(overdue, balance),
	}
}

func RollupDeliveries(deliveries []entity.Delivery) DeliveryRollup {
	var r DeliveryRollup
	for _, d := range deliveries {
		switch d.Status {
		case entity.DeliveryStatusDelivered:
			r.Completed++
		case entity.DeliveryStatusPlanned, entity.DeliveryStatusInTransit:
			r.Pending++
		case entity.DeliveryStatusFailed:
			r.Failed++
		case entity.DeliveryStatusCancelled:
		}
	}
	return r
}

// ComputeCustomerMetrics derives the customer-360 figures for customer from
// the full collections; records belonging to other customers are ignored.
// rnd feeds the payment-days estimate and should be freshly seeded per call
// when reproducible output is required.
func ComputeCustomerMetrics(
	customer entity.Customer,
	orders []entity.Order,
	invoices []entity.Invoice,
	deliveries []entity.Delivery,
	now time.Time,
	rnd Random,
) *CustomerMetrics {
	orders = filterByCustomer(orders, customer.CustomerNo, func(o entity.Order) string { return o.CustomerNo })
	invoices = filterByCustomer(invoices, customer.CustomerNo, func(i entity.Invoice) string { return i.CustomerNo })
	deliveries = filterByCustomer(deliveries, customer.CustomerNo, func(d entity.Delivery) string { return d.CustomerNo })

	orderRollup := RollupOrders(orders)
	invoiceRollup := RollupInvoices(invoices)
	deliveryRollup := RollupDeliveries(deliveries)

	avgPaymentDays := AvgPaymentDays(invoices, rnd)
	overdueRatio := ratio(invoiceRollup.OverdueAmount, invoiceRollup.TotalAmount)

	return &CustomerMetrics{
		CustomerNo:          customer.CustomerNo,
		TotalOrders:         orderRollup.TotalOrders,
		TotalRevenue:        orderRollup.TotalRevenue,
		AvgOrderValue:       orderRollup.AvgOrderValue,
		TotalInvoices:       invoiceRollup.TotalInvoices,
		TotalPaid:           invoiceRollup.TotalPaid,
		TotalOutstanding:    invoiceRollup.TotalOutstanding,
		OverdueAmount:       invoiceRollup.OverdueAmount,
		CompletedDeliveries: deliveryRollup.Completed,
		PendingDeliveries:   deliveryRollup.Pending,
		AvgPaymentDays:      avgPaymentDays,
		OverdueRatio:        overdueRatio,
		OrderGrowthRate:     GrowthRate(orders, now),
		TopProducts:         TopProducts(orders, TopProductsLimit),
		RecentActivity:      BuildTimeline(orders, invoices, deliveries),
		PaymentBehavior:     ClassifyPaymentBehavior(overdueRatio, avgPaymentDays),
		CreditUtilization:   CreditUtilization(customer),
	}
}

func filterByCustomer[T any](items []T, customerNo string, key func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if key(item) == customerNo {
			out = append(out, item)
		}
	}
	return out
}
