package entity

import (
	"time"
)

// PaymentTerms 付款条件
const (
	PaymentTermsNet30 = "NET 30"
	PaymentTermsNet45 = "NET 45"
	PaymentTermsNet60 = "NET 60"
	PaymentTermsNet90 = "NET 90"
	PaymentTermsCOD   = "Cash on Delivery"
	PaymentTermsLC    = "Letter of Credit"
)

// AgingBuckets 应收账龄（按逾期天数分桶的金额）
type AgingBuckets struct {
	Bucket0To30  float64 `json:"bucket_0_30" gorm:"type:decimal(14,2);default:0"`
	Bucket31To60 float64 `json:"bucket_31_60" gorm:"type:decimal(14,2);default:0"`
	Bucket61To90 float64 `json:"bucket_61_90" gorm:"type:decimal(14,2);default:0"`
	Bucket90Plus float64 `json:"bucket_90_plus" gorm:"type:decimal(14,2);default:0"`
}

// Total sums all buckets.
func (a AgingBuckets) Total() float64 {
	return a.Bucket0To30 + a.Bucket31To60 + a.Bucket61To90 + a.Bucket90Plus
}

// Customer SAP客户快照
type Customer struct {
	CustomerNo              string          `json:"customer_no" gorm:"primaryKey;size:20"`
	SalesOrg                string          `json:"sales_org" gorm:"size:10"`
	LegalName               string          `json:"legal_name" gorm:"size:200;not null"`
	TaxID                   string          `json:"tax_id" gorm:"size:20;index"`
	PaymentTerms            string          `json:"payment_terms" gorm:"size:50"`
	CreditLimit             float64         `json:"credit_limit" gorm:"type:decimal(14,2);default:0"`
	CreditExposure          float64         `json:"credit_exposure" gorm:"type:decimal(14,2);default:0"`
	CreditAvailable         float64         `json:"credit_available" gorm:"type:decimal(14,2);default:0"`
	Aging                   AgingBuckets    `json:"overdue_aging" gorm:"embedded;embeddedPrefix:aging_"`
	NegotiatedPricingActive bool            `json:"negotiated_pricing_active" gorm:"default:false"`
	Segment                 CustomerSegment `json:"segment" gorm:"size:20;index"`
	Territory               Territory       `json:"territory" gorm:"size:20;index"`
	LastUpdated             *time.Time      `json:"last_updated,omitempty"`
}

func (Customer) TableName() string {
	return "sap_customers"
}
