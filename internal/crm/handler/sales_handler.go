package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/analytics"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/repository"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/service"
)

// ============================================================
// Orders
// ============================================================

type OrderHandler struct {
	orders     *repository.OrderRepository
	deliveries *repository.DeliveryRepository
	stats      *service.StatsService
}

func NewOrderHandler(orders *repository.OrderRepository, deliveries *repository.DeliveryRepository, stats *service.StatsService) *OrderHandler {
	return &OrderHandler{orders: orders, deliveries: deliveries, stats: stats}
}

// List GET /orders?status=&customer_no=&keyword=
func (h *OrderHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	status := c.Query("status")
	if status != "" && !entity.OrderStatus(status).Valid() {
		BadRequest(c, "invalid order status: "+status)
		return
	}

	orders, total := h.orders.List(repository.OrderListParams{
		Status:     status,
		CustomerNo: c.Query("customer_no"),
		Keyword:    c.Query("keyword"),
		Page:       page,
		Size:       pageSize,
	})
	SuccessList(c, orders, page, pageSize, total)
}

// Stats GET /orders/stats?customer_no=
func (h *OrderHandler) Stats(c *gin.Context) {
	Success(c, h.stats.Orders(c.Query("customer_no")))
}

// Get GET /orders/:order_no 订单详情（含交货单）
func (h *OrderHandler) Get(c *gin.Context) {
	orderNo := c.Param("order_no")
	order, err := h.orders.Get(orderNo)
	if err != nil {
		lookupError(c, err, "order")
		return
	}
	Success(c, gin.H{
		"order":      order,
		"deliveries": h.deliveries.ByOrder(orderNo),
	})
}

// ============================================================
// Invoices
// ============================================================

type InvoiceHandler struct {
	invoices *repository.InvoiceRepository
	stats    *service.StatsService
}

func NewInvoiceHandler(invoices *repository.InvoiceRepository, stats *service.StatsService) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices, stats: stats}
}

// List GET /invoices?status=&customer_no=&aging_bucket=&keyword=
func (h *InvoiceHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	status := c.Query("status")
	if status != "" && !entity.InvoiceStatus(status).Valid() {
		BadRequest(c, "invalid invoice status: "+status)
		return
	}
	bucket := c.Query("aging_bucket")
	if bucket != "" && !analytics.AgingBucket(bucket).Valid() {
		BadRequest(c, "invalid aging bucket: "+bucket)
		return
	}

	invoices, total := h.invoices.List(repository.InvoiceListParams{
		Status:      status,
		CustomerNo:  c.Query("customer_no"),
		AgingBucket: bucket,
		Keyword:     c.Query("keyword"),
		Page:        page,
		Size:        pageSize,
	})
	SuccessList(c, invoices, page, pageSize, total)
}

// Stats GET /invoices/stats?customer_no=
func (h *InvoiceHandler) Stats(c *gin.Context) {
	Success(c, h.stats.Invoices(c.Query("customer_no")))
}

// Get GET /invoices/:invoice_no
func (h *InvoiceHandler) Get(c *gin.Context) {
	inv, err := h.invoices.Get(c.Param("invoice_no"))
	if err != nil {
		lookupError(c, err, "invoice")
		return
	}
	Success(c, inv)
}

// ============================================================
// Deliveries
// ============================================================

type DeliveryHandler struct {
	deliveries *repository.DeliveryRepository
	stats      *service.StatsService
}

func NewDeliveryHandler(deliveries *repository.DeliveryRepository, stats *service.StatsService) *DeliveryHandler {
	return &DeliveryHandler{deliveries: deliveries, stats: stats}
}

// List GET /deliveries?status=&customer_no=&last_days=&keyword=
func (h *DeliveryHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	status := c.Query("status")
	if status != "" && !entity.DeliveryStatus(status).Valid() {
		BadRequest(c, "invalid delivery status: "+status)
		return
	}
	lastDays := 0
	if v := c.Query("last_days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			BadRequest(c, "last_days must be a non-negative integer")
			return
		}
		lastDays = n
	}

	deliveries, total := h.deliveries.List(repository.DeliveryListParams{
		Status:     status,
		CustomerNo: c.Query("customer_no"),
		LastDays:   lastDays,
		Keyword:    c.Query("keyword"),
		Page:       page,
		Size:       pageSize,
	})
	SuccessList(c, deliveries, page, pageSize, total)
}

// Stats GET /deliveries/stats?customer_no=
func (h *DeliveryHandler) Stats(c *gin.Context) {
	Success(c, h.stats.Deliveries(c.Query("customer_no")))
}

// Get GET /deliveries/:delivery_no
func (h *DeliveryHandler) Get(c *gin.Context) {
	d, err := h.deliveries.Get(c.Param("delivery_no"))
	if err != nil {
		lookupError(c, err, "delivery")
		return
	}
	Success(c, d)
}
