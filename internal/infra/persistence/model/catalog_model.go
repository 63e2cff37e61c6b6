package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. A check constraint keeps stock non-negative.
type ProductModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name           string          `gorm:"type:varchar(255);not null"`
	Price          decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	WholesalePrice decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Stock          int             `gorm:"not null;default:0;check:stock >= 0"`
	IsActive       bool            `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// CouponModel mirrors the 'user_coupons' table. A code is unique per owner.
type CouponModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_user_coupons_owner_code"`
	Code            string          `gorm:"type:varchar(64);not null;uniqueIndex:idx_user_coupons_owner_code"`
	Discount        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Type            string          `gorm:"type:varchar(16);not null"`
	ValidFrom       time.Time       `gorm:"not null"`
	ValidUntil      time.Time       `gorm:"not null"`
	MinimumPurchase decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Used            bool            `gorm:"not null;default:false"`
	UsedAt          *time.Time
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (CouponModel) TableName() string {
	return "user_coupons"
}
