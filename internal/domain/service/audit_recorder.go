package service

import (
	"context"

	"orderguard/internal/domain/entity"
)

// AuditRecorder accepts audit events without blocking the caller. Recording is
// best-effort: an event may be dropped, but Record never fails the operation
// that produced it.
type AuditRecorder interface {
	Record(ctx context.Context, event *entity.AuditEvent)
}
