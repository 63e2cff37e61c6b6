package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditOutcome is the result recorded for an authorization decision or mutation.
type AuditOutcome string

const (
	AuditOutcomeGranted AuditOutcome = "granted"
	AuditOutcomeDenied  AuditOutcome = "denied"
	AuditOutcomeFailed  AuditOutcome = "failed"
)

// AuditEvent records who attempted what, against which resource, and how it ended.
type AuditEvent struct {
	ID         uuid.UUID    `json:"id"`
	ActorID    uuid.UUID    `json:"actorId"`
	Role       Role         `json:"role"`
	Action     Action       `json:"action"`
	Resource   Resource     `json:"resource"`
	ResourceID string       `json:"resourceId,omitempty"`
	Outcome    AuditOutcome `json:"outcome"`
	Gate       string       `json:"gate,omitempty"`
	Reason     string       `json:"reason,omitempty"`
	RequestID  string       `json:"requestId,omitempty"`
	IPAddress  string       `json:"ipAddress,omitempty"`
	UserAgent  string       `json:"userAgent,omitempty"`
	OccurredAt time.Time    `json:"occurredAt"`
}
