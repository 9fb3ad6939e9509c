package entity

import (
	"time"
)

// Order SAP销售订单抬头
type Order struct {
	OrderNo      string       `json:"order_no" gorm:"primaryKey;size:20"`
	OrderDate    time.Time    `json:"order_date" gorm:"not null;index"`
	DocType      DocumentType `json:"doc_type" gorm:"size:30"`
	NetValue     float64      `json:"net_value" gorm:"type:decimal(14,2);default:0"`
	Status       OrderStatus  `json:"status" gorm:"size:30;index"`
	CustomerNo   string       `json:"customer_no" gorm:"size:20;index"`
	CustomerName string       `json:"customer_name" gorm:"size:200"`
	DeliveryDate *time.Time   `json:"delivery_date,omitempty"`
	ItemsCount   int          `json:"items_count" gorm:"default:0"`
}

func (Order) TableName() string {
	return "sap_orders"
}
