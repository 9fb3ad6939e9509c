package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/repository"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/service"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/sse"
)

// Handlers 处理器集合
type Handlers struct {
	Customer   *CustomerHandler
	Order      *OrderHandler
	Invoice    *InvoiceHandler
	Delivery   *DeliveryHandler
	Dashboard  *DashboardHandler
	Membership *MembershipHandler
	Dataset    *DatasetHandler
	Export     *ExportHandler
}

// NewHandlers 创建处理器集合
func NewHandlers(svc *service.Services, repos *repository.Repositories, hub *sse.Hub) *Handlers {
	return &Handlers{
		Customer:   NewCustomerHandler(svc.Customer, svc.Analytics),
		Order:      NewOrderHandler(repos.Order, repos.Delivery, svc.Stats),
		Invoice:    NewInvoiceHandler(repos.Invoice, svc.Stats),
		Delivery:   NewDeliveryHandler(repos.Delivery, svc.Stats),
		Dashboard:  NewDashboardHandler(svc.Analytics),
		Membership: NewMembershipHandler(svc.Membership),
		Dataset:    NewDatasetHandler(svc.Reload, hub),
		Export:     NewExportHandler(svc.Export),
	}
}

// RegisterRoutes mounts every CRM endpoint on api (normally /api/v1/crm).
func (h *Handlers) RegisterRoutes(api *gin.RouterGroup) {
	customers := api.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.GET("/:customer_no", h.Customer.Get)
		customers.GET("/:customer_no/orders", h.Customer.Orders)
		customers.GET("/:customer_no/invoices", h.Customer.Invoices)
		customers.GET("/:customer_no/deliveries", h.Customer.Deliveries)
		customers.GET("/:customer_no/metrics", h.Customer.Metrics)
	}

	orders := api.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.GET("/stats", h.Order.Stats)
		orders.GET("/:order_no", h.Order.Get)
	}

	invoices := api.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		invoices.GET("/stats", h.Invoice.Stats)
		invoices.GET("/:invoice_no", h.Invoice.Get)
	}

	deliveries := api.Group("/deliveries")
	{
		deliveries.GET("", h.Delivery.List)
		deliveries.GET("/stats", h.Delivery.Stats)
		deliveries.GET("/:delivery_no", h.Delivery.Get)
	}

	api.GET("/dashboard", h.Dashboard.Get)

	memberships := api.Group("/memberships")
	{
		memberships.GET("", h.Membership.List)
		memberships.GET("/stats", h.Membership.Stats)
		memberships.GET("/:customer_no", h.Membership.Get)
	}
	api.GET("/tiers", h.Membership.Tiers)
	api.GET("/campaigns", h.Membership.Campaigns)
	api.GET("/campaigns/:campaign_id", h.Membership.Campaign)

	api.GET("/dataset", h.Dataset.Info)
	api.POST("/dataset/reload", h.Dataset.Reload)
	api.GET("/events", h.Dataset.Events)

	api.GET("/exports/dashboard.xlsx", h.Export.DownloadDashboard)
	api.POST("/exports/dashboard", h.Export.UploadDashboard)
}

// Response 通用响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ListResponse 列表响应结构
type ListResponse struct {
	Items      interface{} `json:"items"`
	Pagination *Pagination `json:"pagination"`
}

// Pagination 分页信息
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// SuccessList 分页列表响应
func SuccessList(c *gin.Context, items interface{}, page, pageSize int, total int64) {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	Success(c, ListResponse{
		Items: items,
		Pagination: &Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest 参数错误响应
func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

// NotFound 资源不存在响应
func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

// InternalError 服务器错误响应
func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

// ServiceUnavailable 依赖未就绪
func ServiceUnavailable(c *gin.Context, message string) {
	Error(c, 50300, message)
}

// lookupError maps repository lookups to 404 and anything else to 500.
func lookupError(c *gin.Context, err error, what string) {
	if errors.Is(err, repository.ErrNotFound) {
		NotFound(c, what+" not found")
		return
	}
	c.Error(err)
	InternalError(c, err.Error())
}

// GetPagination 从请求获取分页参数
func GetPagination(c *gin.Context) (page, pageSize int) {
	page = 1
	pageSize = 20

	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}

	if ps := c.Query("page_size"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
			pageSize = v
		}
	}

	return page, pageSize
}
