package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditEventModel mirrors the append-only 'audit_events' table.
type AuditEventModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	ActorID    uuid.UUID `gorm:"type:uuid;index"`
	Role       string    `gorm:"type:varchar(20)"`
	Action     string    `gorm:"type:varchar(16);not null"`
	Resource   string    `gorm:"type:varchar(64);not null"`
	ResourceID string    `gorm:"type:varchar(64)"`
	Outcome    string    `gorm:"type:varchar(16);not null"`
	Gate       string    `gorm:"type:varchar(16)"`
	Reason     string    `gorm:"type:text"`
	RequestID  string    `gorm:"type:varchar(64)"`
	IPAddress  string    `gorm:"type:varchar(64)"`
	UserAgent  string    `gorm:"type:text"`
	OccurredAt time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (AuditEventModel) TableName() string {
	return "audit_events"
}
