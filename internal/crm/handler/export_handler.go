package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/service"
)

// ExportHandler Excel导出
type ExportHandler struct {
	svc *service.ExportService
}

func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// DownloadDashboard GET /exports/dashboard.xlsx
func (h *ExportHandler) DownloadDashboard(c *gin.Context) {
	f, filename, err := h.svc.DashboardWorkbook(c.Request.Context())
	if err != nil {
		c.Error(err)
		InternalError(c, err.Error())
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		c.Error(err)
	}
}

// UploadDashboard POST /exports/dashboard
func (h *ExportHandler) UploadDashboard(c *gin.Context) {
	result, err := h.svc.UploadDashboard(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrStorageDisabled) {
			ServiceUnavailable(c, err.Error())
			return
		}
		c.Error(err)
		InternalError(c, err.Error())
		return
	}
	Success(c, result)
}
