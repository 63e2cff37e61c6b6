package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserModel mirrors the 'users' table. The purchase history is flattened into columns.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name              string          `gorm:"type:varchar(100)"`
	Email             string          `gorm:"type:varchar(255);unique;not null"`
	PasswordHash      string          `gorm:"type:varchar(255);not null"`
	Role              string          `gorm:"type:varchar(20);not null;default:customer"`
	Status            string          `gorm:"type:varchar(32);not null;default:pending_verification"`
	EmailVerified     bool            `gorm:"not null;default:false"`
	LockoutUntil      *time.Time      `gorm:"type:timestamptz"`
	LoginAttempts     int             `gorm:"not null;default:0"`
	TotalPurchases    int             `gorm:"not null;default:0"`
	TotalSpent        decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	LastPurchase      *time.Time      `gorm:"type:timestamptz"`
	AverageOrderValue decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	RefreshTokens []RefreshTokenModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// RefreshTokenModel mirrors the 'refresh_tokens' table. Only the token hash is stored.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(255);unique;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
