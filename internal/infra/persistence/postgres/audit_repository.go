package postgres

import (
	"context"
	"time"

	"orderguard/internal/domain/entity"
	domainerrors "orderguard/internal/domain/errors"
	"orderguard/internal/domain/repository"
	"orderguard/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const auditInsertBatchSize = 100

type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository is the constructor for auditRepository.
func NewAuditRepository(db *gorm.DB) repository.AuditRepository {
	return &auditRepository{db: db}
}

// Append stores a batch of events. Replayed events with a known id are ignored.
func (repo *auditRepository) Append(ctx context.Context, events []*entity.AuditEvent) error {
	if len(events) == 0 {
		return nil
	}

	eventModels := make([]*model.AuditEventModel, 0, len(events))
	for _, event := range events {
		eventModels = append(eventModels, &model.AuditEventModel{
			ID:         event.ID,
			ActorID:    event.ActorID,
			Role:       event.Role.String(),
			Action:     string(event.Action),
			Resource:   event.Resource.String(),
			ResourceID: event.ResourceID,
			Outcome:    string(event.Outcome),
			Gate:       event.Gate,
			Reason:     event.Reason,
			RequestID:  event.RequestID,
			IPAddress:  event.IPAddress,
			UserAgent:  event.UserAgent,
			OccurredAt: event.OccurredAt,
		})
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(eventModels, auditInsertBatchSize).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append audit events")
	}

	return nil
}

// PurgeBefore deletes events that occurred before cutoff.
func (repo *auditRepository) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("occurred_at < ?", cutoff).
		Delete(&model.AuditEventModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to purge audit events")
	}

	return result.RowsAffected, nil
}
