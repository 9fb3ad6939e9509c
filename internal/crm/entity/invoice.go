package entity

import (
	"time"
)

// Invoice SAP发票
type Invoice struct {
	InvoiceNo      string        `json:"invoice_no" gorm:"primaryKey;size:20"`
	CustomerNo     string        `json:"customer_no" gorm:"size:20;index"`
	CustomerName   string        `json:"customer_name" gorm:"size:200"`
	InvoiceDate    time.Time     `json:"invoice_date" gorm:"not null;index"`
	DueDate        time.Time     `json:"due_date" gorm:"not null"`
	Amount         float64       `json:"amount" gorm:"type:decimal(14,2);default:0"`
	PaidAmount     float64       `json:"paid_amount" gorm:"type:decimal(14,2);default:0"`
	Balance        float64       `json:"balance" gorm:"type:decimal(14,2);default:0"`
	Status         InvoiceStatus `json:"status" gorm:"size:20;index"`
	PaymentTerms   string        `json:"payment_terms" gorm:"size:50"`
	ReferenceOrder string        `json:"reference_order,omitempty" gorm:"size:20"`
	DaysOverdue    int           `json:"days_overdue" gorm:"default:0"`
}

func (Invoice) TableName() string {
	return "sap_invoices"
}

// TermDays 付款期限天数（到期日 - 开票日，向下取整）
func (i Invoice) TermDays() int {
	return int(i.DueDate.Sub(i.InvoiceDate) / (24 * time.Hour))
}
