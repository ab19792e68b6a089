package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. The shipping address is copied into
// the row so later address edits never change an order.
type OrderModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Number        string    `gorm:"type:varchar(32);unique;not null"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Status        string    `gorm:"type:varchar(20);not null;index"`
	PaymentStatus string    `gorm:"type:varchar(20);not null"`
	RefundStatus  string    `gorm:"type:varchar(20);not null"`

	ShipFullName   string  `gorm:"type:varchar(100);not null"`
	ShipPhone      string  `gorm:"type:varchar(20);not null"`
	ShipProvince   string  `gorm:"type:varchar(100);not null"`
	ShipCity       string  `gorm:"type:varchar(100);not null"`
	ShipStreet     string  `gorm:"type:text;not null"`
	ShipPostalCode string  `gorm:"type:varchar(20)"`
	ShipLatitude   float64 `gorm:"type:decimal(10,8);not null"`
	ShipLongitude  float64 `gorm:"type:decimal(11,8);not null"`

	Subtotal      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DiscountTotal decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ShippingFee   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	FinalTotal    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	RefundedTotal decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	PaidAt        *time.Time
	CancelledAt   *time.Time
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Product and variant ids carry no foreign key.
type OrderItemModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID         uuid.UUID       `gorm:"type:uuid;not null"`
	VariantID         uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName       string          `gorm:"type:varchar(200);not null"`
	SKU               string          `gorm:"column:sku;type:varchar(64);not null"`
	PackageQuantity   int             `gorm:"not null"`
	Quantity          int             `gorm:"not null"`
	UnitPrice         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	UnitDiscount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	RestockedQuantity int             `gorm:"not null;default:0"`
	CreatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// RefundModel mirrors the 'refunds' table.
type RefundModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type      string          `gorm:"type:varchar(20);not null"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Restock   bool            `gorm:"not null;default:false"`
	Reason    string          `gorm:"type:text"`
	CreatedBy uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt time.Time

	Items []RefundItemModel `gorm:"foreignKey:RefundID"`
}

// TableName explicitly sets the table name for GORM.
func (RefundModel) TableName() string {
	return "refunds"
}

// RefundItemModel mirrors the 'refund_items' table.
type RefundItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	RefundID    uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderItemID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity    int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (RefundItemModel) TableName() string {
	return "refund_items"
}

// OrderStatusCountRow is the scan target of the per-status aggregate.
type OrderStatusCountRow struct {
	Status string
	Count  int64
}

// OrderRevenueRow is the scan target of the revenue aggregate.
type OrderRevenueRow struct {
	GrossRevenue  decimal.Decimal
	RefundedTotal decimal.Decimal
}
