package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/repository"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/service"
)

type CustomerHandler struct {
	svc       *service.CustomerService
	analytics *service.AnalyticsService
}

func NewCustomerHandler(svc *service.CustomerService, analyticsSvc *service.AnalyticsService) *CustomerHandler {
	return &CustomerHandler{svc: svc, analytics: analyticsSvc}
}

// List GET /customers?segment=&territory=&keyword=&page=&page_size=
func (h *CustomerHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	segment := c.Query("segment")
	if segment != "" && !entity.CustomerSegment(segment).Valid() {
		BadRequest(c, "invalid segment: "+segment)
		return
	}
	territory := c.Query("territory")
	if territory != "" && !entity.Territory(territory).Valid() {
		BadRequest(c, "invalid territory: "+territory)
		return
	}

	customers, total := h.svc.List(repository.CustomerListParams{
		Segment:   segment,
		Territory: territory,
		Keyword:   c.Query("keyword"),
		Page:      page,
		Size:      pageSize,
	})
	SuccessList(c, customers, page, pageSize, total)
}

// Get GET /customers/:customer_no
func (h *CustomerHandler) Get(c *gin.Context) {
	detail, err := h.svc.Get(c.Param("customer_no"))
	if err != nil {
		lookupError(c, err, "customer")
		return
	}
	Success(c, detail)
}

// Orders GET /customers/:customer_no/orders
func (h *CustomerHandler) Orders(c *gin.Context) {
	page, pageSize := GetPagination(c)
	orders, total, err := h.svc.Orders(c.Param("customer_no"), page, pageSize)
	if err != nil {
		lookupError(c, err, "customer")
		return
	}
	SuccessList(c, orders, page, pageSize, total)
}

// Invoices GET /customers/:customer_no/invoices
func (h *CustomerHandler) Invoices(c *gin.Context) {
	page, pageSize := GetPagination(c)
	invoices, total, err := h.svc.Invoices(c.Param("customer_no"), page, pageSize)
	if err != nil {
		lookupError(c, err, "customer")
		return
	}
	SuccessList(c, invoices, page, pageSize, total)
}

// Deliveries GET /customers/:customer_no/deliveries
func (h *CustomerHandler) Deliveries(c *gin.Context) {
	page, pageSize := GetPagination(c)
	deliveries, total, err := h.svc.Deliveries(c.Param("customer_no"), page, pageSize)
	if err != nil {
		lookupError(c, err, "customer")
		return
	}
	SuccessList(c, deliveries, page, pageSize, total)
}

// Metrics GET /customers/:customer_no/metrics
func (h *CustomerHandler) Metrics(c *gin.Context) {
	metrics, err := h.analytics.CustomerMetrics(c.Request.Context(), c.Param("customer_no"))
	if err != nil {
		lookupError(c, err, "customer")
		return
	}
	Success(c, metrics)
}
