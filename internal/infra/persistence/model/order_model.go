package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. Pricing, payment, shipping, notes and
// audit are flattened into columns; the authorization snapshot is stored as
// text[] role lists.
type OrderModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	OrderNumber string    `gorm:"type:varchar(32);unique;not null"`
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Status      string    `gorm:"type:varchar(20);not null"`

	Subtotal decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Tax      decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Shipping decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Discount decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Total    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Currency string          `gorm:"type:char(3);not null"`

	PaymentMethod        string          `gorm:"type:varchar(20);not null"`
	PaymentStatus        string          `gorm:"type:varchar(20);not null"`
	PaymentTransactionID string          `gorm:"type:varchar(128)"`
	PaidAt               *time.Time      `gorm:"type:timestamptz"`
	RefundedAt           *time.Time      `gorm:"type:timestamptz"`
	RefundAmount         decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`

	ShippingMethod string     `gorm:"type:varchar(20);not null"`
	TrackingNumber string     `gorm:"type:varchar(128)"`
	ShippedAt      *time.Time `gorm:"type:timestamptz"`
	DeliveredAt    *time.Time `gorm:"type:timestamptz"`

	ViewPermissions         pq.StringArray `gorm:"type:text[];not null"`
	EditPermissions         pq.StringArray `gorm:"type:text[];not null"`
	CancelPermissions       pq.StringArray `gorm:"type:text[];not null"`
	RefundPermissions       pq.StringArray `gorm:"type:text[];not null"`
	StatusChangePermissions pq.StringArray `gorm:"type:text[];not null"`

	CustomerNotes string `gorm:"type:text"`
	InternalNotes string `gorm:"type:text"`
	ShippingNotes string `gorm:"type:text"`

	CreatedBy   uuid.UUID  `gorm:"type:uuid;not null"`
	ModifiedBy  *uuid.UUID `gorm:"type:uuid"`
	CancelledBy *uuid.UUID `gorm:"type:uuid"`
	RefundedBy  *uuid.UUID `gorm:"type:uuid"`
	IPAddress   string     `gorm:"type:varchar(64)"`
	UserAgent   string     `gorm:"type:text"`

	Version   int `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Items   []OrderItemModel   `gorm:"foreignKey:OrderID"`
	Changes []OrderChangeModel `gorm:"foreignKey:OrderID"`
	Coupons []OrderCouponModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Position keeps the line order stable.
type OrderItemModel struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position  int             `gorm:"primaryKey"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Name      string          `gorm:"type:varchar(255)"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Quantity  int             `gorm:"not null"`
	Subtotal  decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Discount  decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Tax       decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// OrderChangeModel mirrors the append-only 'order_changes' table.
type OrderChangeModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null;index"`
	ChangedBy     uuid.UUID `gorm:"type:uuid;not null"`
	ChangedAt     time.Time `gorm:"not null"`
	ChangeType    string    `gorm:"type:varchar(20);not null"`
	PreviousValue string    `gorm:"type:text"`
	NewValue      string    `gorm:"type:text"`
	Reason        string    `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (OrderChangeModel) TableName() string {
	return "order_changes"
}

// OrderCouponModel mirrors the 'order_coupons' table.
type OrderCouponModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Code      string          `gorm:"type:varchar(64);not null"`
	Discount  decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Type      string          `gorm:"type:varchar(16);not null"`
	AppliedAt time.Time       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderCouponModel) TableName() string {
	return "order_coupons"
}
