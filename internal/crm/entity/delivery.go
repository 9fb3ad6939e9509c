package entity

import (
	"time"
)

// ProofOfDelivery 签收凭证
type ProofOfDelivery struct {
	SignatureURL string     `json:"signature_url,omitempty"`
	PhotoURL     string     `json:"photo_url,omitempty"`
	ReceivedBy   string     `json:"received_by,omitempty"`
	ReceivedDate *time.Time `json:"received_date,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}

// Delivery SAP交货单
type Delivery struct {
	DeliveryNo   string           `json:"delivery_no" gorm:"primaryKey;size:20"`
	OrderNo      string           `json:"order_no" gorm:"size:20;index"`
	CustomerNo   string           `json:"customer_no" gorm:"size:20;index"`
	CustomerName string           `json:"customer_name" gorm:"size:200"`
	PlannedDate  time.Time        `json:"planned_date" gorm:"not null"`
	ActualDate   *time.Time       `json:"actual_date,omitempty"`
	Status       DeliveryStatus   `json:"status" gorm:"size:20;index"`
	Carrier      string           `json:"carrier,omitempty" gorm:"size:50"`
	Route        string           `json:"route,omitempty" gorm:"size:50"`
	TrackingNo   string           `json:"tracking_no,omitempty" gorm:"size:30"`
	PODAvailable bool             `json:"pod_available" gorm:"default:false"`
	POD          *ProofOfDelivery `json:"pod,omitempty" gorm:"type:jsonb;serializer:json"`
}

func (Delivery) TableName() string {
	return "sap_deliveries"
}
