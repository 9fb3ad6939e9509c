package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/repository"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const TestSchema = "test_crm"

// Now is the fixed clock used by fixtures.
var Now = time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

// projectRoot returns the project root directory by looking for go.mod
func projectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// loadEnv loads .env from the project root
func loadEnv() {
	root := projectRoot()
	if root != "" {
		godotenv.Load(filepath.Join(root, ".env"))
	}
}

// SetupTestDB opens a connection in a throwaway schema and migrates the
// snapshot tables. The test is skipped when no database is reachable.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	loadEnv()

	host := getEnv("DB_HOST", "127.0.0.1")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "crm")
	password := getEnv("DB_PASSWORD", "crm123")
	dbname := getEnv("DB_NAME", "papertech_crm")

	baseDSN := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable connect_timeout=2",
		host, port, user, password, dbname)

	schemaName := fmt.Sprintf("%s_%d", TestSchema, time.Now().UnixNano()%1000000)

	setupDB, err := gorm.Open(postgres.Open(baseDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Skipf("database not available: %v", err)
	}
	if err := setupDB.Exec(fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schemaName)).Error; err != nil {
		t.Skipf("database not available: %v", err)
	}
	sqlSetup, _ := setupDB.DB()
	sqlSetup.Close()

	testDSN := fmt.Sprintf("%s search_path=%s", baseDSN, schemaName)
	db, err := gorm.Open(postgres.Open(testDSN), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := entity.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test tables: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		cleanDB, cleanErr := gorm.Open(postgres.Open(baseDSN), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if cleanErr == nil {
			cleanDB.Exec(fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schemaName))
			sqlClean, _ := cleanDB.DB()
			if sqlClean != nil {
				sqlClean.Close()
			}
		}
	})

	return db
}

// SetupRouter creates a gin test router
func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	return r
}

// DoRequest executes an HTTP request against the test router
func DoRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ParseResponse parses the JSON envelope into a map
func ParseResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var result map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}

// NewStore returns a store already loaded with snap.
func NewStore(t *testing.T, snap *repository.Snapshot) *repository.Store {
	t.Helper()
	store := repository.NewStore(repository.StaticLoader{Snapshot: snap}, zap.NewNop())
	if _, err := store.Reload(context.Background()); err != nil {
		t.Fatalf("Failed to load fixture dataset: %v", err)
	}
	return store
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

// Snapshot is a small hand-written dataset: two customers with orders,
// invoices, deliveries and memberships, one order for an unknown customer,
// and two campaigns.
func Snapshot() *repository.Snapshot {
	return &repository.Snapshot{
		Customers: []entity.Customer{
			{
				CustomerNo:      "1000001",
				SalesOrg:        "1000",
				LegalName:       "Bangkok Publishing House Co., Ltd.",
				TaxID:           "0105512345678",
				PaymentTerms:    entity.PaymentTermsNet30,
				CreditLimit:     10000000,
				CreditExposure:  2500000,
				CreditAvailable: 7500000,
				Segment:         entity.SegmentPublishing,
				Territory:       entity.TerritoryBangkok,
			},
			{
				CustomerNo:      "1000002",
				SalesOrg:        "1000",
				LegalName:       "Thai Packaging Solutions Ltd.",
				TaxID:           "0105598765432",
				PaymentTerms:    entity.PaymentTermsNet45,
				CreditLimit:     0,
				CreditExposure:  0,
				CreditAvailable: 0,
				Segment:         entity.SegmentPackaging,
				Territory:       entity.TerritoryCentral,
			},
		},
		Orders: []entity.Order{
			{OrderNo: "SO0000001", OrderDate: day(2024, time.January, 10), DocType: entity.DocTypeStandardOrder, NetValue: 1000000, Status: entity.OrderStatusDelivered, CustomerNo: "1000001", CustomerName: "Bangkok Publishing House Co., Ltd.", DeliveryDate: ptr(day(2024, time.January, 20)), ItemsCount: 3},
			{OrderNo: "SO0000002", OrderDate: day(2024, time.May, 2), DocType: entity.DocTypeRushOrder, NetValue: 1500000, Status: entity.OrderStatusInProgress, CustomerNo: "1000001", CustomerName: "Bangkok Publishing House Co., Ltd.", DeliveryDate: ptr(day(2024, time.June, 20)), ItemsCount: 5},
			{OrderNo: "SO0000003", OrderDate: day(2024, time.June, 1), DocType: entity.DocTypeStandardOrder, NetValue: 500000, Status: entity.OrderStatusOpen, CustomerNo: "1000002", CustomerName: "Thai Packaging Solutions Ltd.", ItemsCount: 2},
			{OrderNo: "SO0000004", OrderDate: day(2024, time.June, 3), DocType: entity.DocTypeStandardOrder, NetValue: 750000, Status: entity.OrderStatusOpen, CustomerNo: "9999999", CustomerName: "Unknown Trading", ItemsCount: 1},
		},
		Invoices: []entity.Invoice{
			{InvoiceNo: "INV20240000001", CustomerNo: "1000001", CustomerName: "Bangkok Publishing House Co., Ltd.", InvoiceDate: day(2024, time.January, 22), DueDate: day(2024, time.February, 21), Amount: 1000000, PaidAmount: 1000000, Balance: 0, Status: entity.InvoiceStatusPaid, PaymentTerms: entity.PaymentTermsNet30, ReferenceOrder: "SO0000001"},
			{InvoiceNo: "INV20240000002", CustomerNo: "1000001", CustomerName: "Bangkok Publishing House Co., Ltd.", InvoiceDate: day(2024, time.March, 1), DueDate: day(2024, time.March, 31), Amount: 2500000, PaidAmount: 0, Balance: 2500000, Status: entity.InvoiceStatusOverdue, PaymentTerms: entity.PaymentTermsNet30, DaysOverdue: 76},
		},
		Deliveries: []entity.Delivery{
			{DeliveryNo: "DL0000001", OrderNo: "SO0000001", CustomerNo: "1000001", CustomerName: "Bangkok Publishing House Co., Ltd.", PlannedDate: day(2024, time.January, 20), ActualDate: ptr(day(2024, time.January, 21)), Status: entity.DeliveryStatusDelivered, Carrier: "Kerry Express", Route: "Bangkok - Central", TrackingNo: "BKK123456789", PODAvailable: true, POD: &entity.ProofOfDelivery{ReceivedBy: "นายสมชาย วัฒนา"}},
			{DeliveryNo: "DL0000002", OrderNo: "SO0000002", CustomerNo: "1000001", CustomerName: "Bangkok Publishing House Co., Ltd.", PlannedDate: day(2024, time.June, 20), Status: entity.DeliveryStatusInTransit, Carrier: "Flash Express", Route: "Bangkok - North", TrackingNo: "CNX987654321"},
		},
		Memberships: []entity.Membership{
			{CustomerNo: "1000001", CustomerName: "Bangkok Publishing House Co., Ltd.", CurrentTier: entity.TierPlatinum, PointsBalance: 185000, PointsLifetime: 320000, MemberSince: day(2020, time.March, 15), TierSince: day(2023, time.June, 10), ActiveCampaigns: []string{"CAMP-2024-004"}},
			{CustomerNo: "1000002", CustomerName: "Thai Packaging Solutions Ltd.", CurrentTier: entity.TierGold, PointsBalance: 72000, PointsLifetime: 145000, MemberSince: day(2021, time.January, 20), TierSince: day(2023, time.August, 15), NextTier: entity.TierPlatinum, PointsToNextTier: 78000, ActiveCampaigns: []string{}},
		},
		Transactions: []entity.MembershipTransaction{
			{TransactionID: "TXN-2024-002", CustomerNo: "1000001", TransactionDate: day(2024, time.May, 10), Type: entity.TxnBenefitRedeemed, Description: "Priority service benefit applied"},
			{TransactionID: "TXN-2024-001", CustomerNo: "1000001", TransactionDate: day(2024, time.May, 15), Type: entity.TxnPointsEarned, Description: "Points earned from Order SO0000002", PointsChange: ptr(int64(12500)), PointsBalance: ptr(int64(185000)), OrderNo: "SO0000002"},
		},
		Campaigns: []entity.Campaign{
			{CampaignID: "CAMP-2024-001", Name: "Chinese New Year 2024 Promotion", Type: entity.CampaignSeasonal, Status: entity.CampaignStatusCompleted, StartDate: day(2024, time.January, 15), EndDate: day(2024, time.February, 28)},
			{CampaignID: "CAMP-2024-004", Name: "Early Payment Rewards", Type: entity.CampaignEarlyPayment, Status: entity.CampaignStatusActive, StartDate: day(2024, time.March, 1), EndDate: day(2024, time.December, 31)},
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
