package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/analytics"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ErrStorageDisabled MinIO未配置
var ErrStorageDisabled = errors.New("export storage is not configured")

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ObjectStorage is the part of *minio.Client the exporter needs.
type ObjectStorage interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type ExportService struct {
	analytics *AnalyticsService
	storage   ObjectStorage
	bucket    string
	now       func() time.Time
	logger    *zap.Logger
}

// NewExportService builds the exporter. storage may be nil, in which case
// uploads fail with ErrStorageDisabled and downloads still work.
func NewExportService(analyticsSvc *AnalyticsService, storage ObjectStorage, bucket string, now func() time.Time, logger *zap.Logger) *ExportService {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		analytics: analyticsSvc,
		storage:   storage,
		bucket:    bucket,
		now:       now,
		logger:    logger,
	}
}

// ExportResult 导出上传结果
type ExportResult struct {
	Bucket    string `json:"bucket"`
	ObjectKey string `json:"object_key"`
	Size      int64  `json:"size"`
}

var (
	summaryHeaders   = []string{"Metric", "Value"}
	breakdownHeaders = []string{"Group", "Customers", "Orders", "Revenue (THB)"}
	rankingHeaders   = []string{"Rank", "Customer No", "Customer", "Orders", "Revenue (THB)"}
	tierHeaders      = []string{"Tier", "Members"}
)

// DashboardWorkbook renders the dashboard as an XLSX workbook with one sheet
// per section. The caller closes the file.
func (s *ExportService) DashboardWorkbook(ctx context.Context) (*excelize.File, string, error) {
	d := s.analytics.Dashboard(ctx)

	f := excelize.NewFile()
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		f.Close()
		return nil, "", fmt.Errorf("create header style: %w", err)
	}
	w := &sheetWriter{f: f, headerStyle: headerStyle}

	w.sheet("Summary", summaryHeaders, [][]interface{}{
		{"As of", d.AsOf.Format("2006-01-02 15:04")},
		{"Customers", d.CustomerCount},
		{"Orders", d.Orders.Total},
		{"Order value (THB)", d.Orders.TotalValue},
		{"Open orders", d.Orders.Open},
		{"In-progress orders", d.Orders.InProgress},
		{"Average order value (THB)", d.Orders.AvgOrderValue},
		{"Invoices", d.Invoices.Total},
		{"Receivable (THB)", d.Invoices.TotalReceivable},
		{"Overdue invoices", d.Invoices.OverdueCount},
		{"Overdue amount (THB)", d.Invoices.OverdueAmount},
		{"Aging 0-30 (THB)", d.Invoices.Aging.Bucket0To30},
		{"Aging 31-60 (THB)", d.Invoices.Aging.Bucket31To60},
		{"Aging 61-90 (THB)", d.Invoices.Aging.Bucket61To90},
		{"Aging 90+ (THB)", d.Invoices.Aging.Bucket90Plus},
		{"Deliveries", d.Deliveries.Total},
		{"Delivered", d.Deliveries.Delivered},
		{"In transit", d.Deliveries.InTransit},
		{"POD rate (%)", d.Deliveries.PODRate},
		{"Active campaigns", d.ActiveCampaigns},
	})
	w.sheet("Segments", breakdownHeaders, breakdownRows(d.Segments))
	w.sheet("Territories", breakdownHeaders, breakdownRows(d.Territories))

	ranking := make([][]interface{}, len(d.TopCustomers))
	for i, c := range d.TopCustomers {
		ranking[i] = []interface{}{i + 1, c.CustomerNo, c.CustomerName, c.Orders, c.Revenue}
	}
	w.sheet("Top Customers", rankingHeaders, ranking)

	tiers := make([][]interface{}, 0, len(d.Membership.ByTier)+1)
	for _, t := range d.Membership.ByTier {
		tiers = append(tiers, []interface{}{string(t.Tier), t.Count})
	}
	tiers = append(tiers, []interface{}{"Total", d.Membership.TotalMembers})
	w.sheet("Membership", tierHeaders, tiers)

	if w.err != nil {
		f.Close()
		return nil, "", w.err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(0)

	filename := fmt.Sprintf("crm-dashboard-%s.xlsx", d.AsOf.Format("20060102"))
	return f, filename, nil
}

// UploadDashboard renders the workbook and stores it in the export bucket.
func (s *ExportService) UploadDashboard(ctx context.Context) (*ExportResult, error) {
	if s.storage == nil {
		return nil, ErrStorageDisabled
	}

	f, filename, err := s.DashboardWorkbook(ctx)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	objectKey := fmt.Sprintf("exports/dashboard/%s/%s-%s", s.now().Format("2006/01/02"), uuid.New().String()[:8], filename)
	size := int64(buf.Len())
	if _, err := s.storage.PutObject(ctx, s.bucket, objectKey, bytes.NewReader(buf.Bytes()), size, minio.PutObjectOptions{
		ContentType: xlsxContentType,
	}); err != nil {
		return nil, fmt.Errorf("upload export: %w", err)
	}

	s.logger.Info("dashboard export uploaded",
		zap.String("bucket", s.bucket),
		zap.String("object", objectKey),
		zap.Int64("size", size),
	)
	return &ExportResult{Bucket: s.bucket, ObjectKey: objectKey, Size: size}, nil
}

func breakdownRows(groups []analytics.GroupRevenue) [][]interface{} {
	rows := make([][]interface{}, len(groups))
	for i, g := range groups {
		rows[i] = []interface{}{g.Key, g.Customers, g.Orders, g.Revenue}
	}
	return rows
}

// sheetWriter keeps the first error so sheets can be written back to back.
type sheetWriter struct {
	f           *excelize.File
	headerStyle int
	err         error
}

func (w *sheetWriter) sheet(name string, headers []string, rows [][]interface{}) {
	if w.err != nil {
		return
	}
	if _, err := w.f.NewSheet(name); err != nil {
		w.err = fmt.Errorf("create sheet %s: %w", name, err)
		return
	}

	// 表头
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		w.f.SetCellValue(name, cell, h)
		w.f.SetCellStyle(name, cell, cell, w.headerStyle)
	}
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := w.f.SetCellValue(name, cell, v); err != nil {
				w.err = fmt.Errorf("write %s!%s: %w", name, cell, err)
				return
			}
		}
	}
	last, _ := excelize.ColumnNumberToName(len(headers))
	w.f.SetColWidth(name, "A", last, 18)
}
