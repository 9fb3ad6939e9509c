package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/service"
)

// DashboardHandler 仪表盘
type DashboardHandler struct {
	svc *service.AnalyticsService
}

func NewDashboardHandler(svc *service.AnalyticsService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Get GET /dashboard
func (h *DashboardHandler) Get(c *gin.Context) {
	Success(c, h.svc.Dashboard(c.Request.Context()))
}
