package service

import (
	"context"

	"orderguard/internal/domain/entity"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAuditEvent fans an audit event out to downstream consumers.
	PublishAuditEvent(ctx context.Context, event *entity.AuditEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
