package repository

import (
	"context"
	"time"

	"orderguard/internal/domain/entity"
)

// AuditRepository is the append-only store of authorization and mutation events.
type AuditRepository interface {
	// Append stores a batch of events.
	Append(ctx context.Context, events []*entity.AuditEvent) error

	// PurgeBefore deletes events that occurred before cutoff and returns how many were deleted.
	PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
