package entity

// CustomerSegment 客户行业细分
type CustomerSegment string

const (
	SegmentPublishing   CustomerSegment = "Publishing"
	SegmentPackaging    CustomerSegment = "Packaging"
	SegmentConverting   CustomerSegment = "Converting"
	SegmentPrinting     CustomerSegment = "Printing"
	SegmentDistribution CustomerSegment = "Distribution"
)

// Segments lists every segment in display order.
var Segments = []CustomerSegment{
	SegmentPublishing, SegmentPackaging, SegmentConverting, SegmentPrinting, SegmentDistribution,
}

func (s CustomerSegment) Valid() bool {
	switch s {
	case SegmentPublishing, SegmentPackaging, SegmentConverting, SegmentPrinting, SegmentDistribution:
		return true
	}
	return false
}

// Territory 销售区域
type Territory string

const (
	TerritoryBangkok   Territory = "Bangkok"
	TerritoryCentral   Territory = "Central"
	TerritoryNorth     Territory = "North"
	TerritoryNortheast Territory = "Northeast"
	TerritoryEast      Territory = "East"
	TerritorySouth     Territory = "South"
)

var Territories = []Territory{
	TerritoryBangkok, TerritoryCentral, TerritoryNorth, TerritoryNortheast, TerritoryEast, TerritorySouth,
}

func (t Territory) Valid() bool {
	switch t {
	case TerritoryBangkok, TerritoryCentral, TerritoryNorth, TerritoryNortheast, TerritoryEast, TerritorySouth:
		return true
	}
	return false
}

// OrderStatus 订单状态
type OrderStatus string

const (
	OrderStatusOpen               OrderStatus = "Open"
	OrderStatusInProgress         OrderStatus = "In Progress"
	OrderStatusDelivered          OrderStatus = "Delivered"
	OrderStatusCancelled          OrderStatus = "Cancelled"
	OrderStatusPartiallyDelivered OrderStatus = "Partially Delivered"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusOpen, OrderStatusInProgress, OrderStatusDelivered, OrderStatusCancelled, OrderStatusPartiallyDelivered:
		return true
	}
	return false
}

// DocumentType SAP单据类型
type DocumentType string

const (
	DocTypeStandardOrder    DocumentType = "Standard Order"
	DocTypeRushOrder        DocumentType = "Rush Order"
	DocTypeConsignmentOrder DocumentType = "Consignment Order"
	DocTypeCreditMemo       DocumentType = "Credit Memo"
	DocTypeDebitMemo        DocumentType = "Debit Memo"
)

func (d DocumentType) Valid() bool {
	switch d {
	case DocTypeStandardOrder, DocTypeRushOrder, DocTypeConsignmentOrder, DocTypeCreditMemo, DocTypeDebitMemo:
		return true
	}
	return false
}

// InvoiceStatus 发票状态
type InvoiceStatus string

const (
	InvoiceStatusOpen          InvoiceStatus = "Open"
	InvoiceStatusPaid          InvoiceStatus = "Paid"
	InvoiceStatusOverdue       InvoiceStatus = "Overdue"
	InvoiceStatusPartiallyPaid InvoiceStatus = "Partially Paid"
	InvoiceStatusCancelled     InvoiceStatus = "Cancelled"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusOpen, InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusPartiallyPaid, InvoiceStatusCancelled:
		return true
	}
	return false
}

// DeliveryStatus 交货状态
type DeliveryStatus string

const (
	DeliveryStatusPlanned   DeliveryStatus = "Planned"
	DeliveryStatusInTransit DeliveryStatus = "In Transit"
	DeliveryStatusDelivered DeliveryStatus = "Delivered"
	DeliveryStatusFailed    DeliveryStatus = "Failed"
	DeliveryStatusCancelled DeliveryStatus = "Cancelled"
)

func (s DeliveryStatus) Valid() bool {
	switch s {
	case DeliveryStatusPlanned, DeliveryStatusInTransit, DeliveryStatusDelivered, DeliveryStatusFailed, DeliveryStatusCancelled:
		return true
	}
	return false
}

// Pending reports whether the delivery has not happened yet.
func (s DeliveryStatus) Pending() bool {
	return s == DeliveryStatusPlanned || s == DeliveryStatusInTransit
}

// PaymentBehavior 付款行为评级
type PaymentBehavior string

const (
	PaymentExcellent PaymentBehavior = "Excellent"
	PaymentGood      PaymentBehavior = "Good"
	PaymentFair      PaymentBehavior = "Fair"
	PaymentPoor      PaymentBehavior = "Poor"
)

func (p PaymentBehavior) Valid() bool {
	switch p {
	case PaymentExcellent, PaymentGood, PaymentFair, PaymentPoor:
		return true
	}
	return false
}

// Rank orders ratings from worst (0) to best (3).
func (p PaymentBehavior) Rank() int {
	switch p {
	case PaymentExcellent:
		return 3
	case PaymentGood:
		return 2
	case PaymentFair:
		return 1
	case PaymentPoor:
		return 0
	}
	return -1
}
