package audit

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"orderguard/config"
	deliverycontext "orderguard/internal/delivery/context"
	"orderguard/internal/domain/entity"
	mockRepo "orderguard/internal/mocks/repository"
	mockSvc "orderguard/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestRecorder(t *testing.T, cfg *config.AuditConfig) (*Recorder, *mockRepo.MockAuditRepository, *mockSvc.MockEventPublisher) {
	repo := mockRepo.NewMockAuditRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	recorder := newRecorder(cfg, repo, publisher, slog.New(slog.DiscardHandler))
	recorder.now = func() time.Time { return testNow }

	return recorder, repo, publisher
}

func newEvent(outcome entity.AuditOutcome) *entity.AuditEvent {
	return &entity.AuditEvent{
		ActorID:  uuid.New(),
		Role:     entity.RoleCustomer,
		Action:   entity.ActionCreate,
		Resource: entity.ResourceOrders,
		Outcome:  outcome,
	}
}

func TestRecorder_Record_Enriches(t *testing.T) {
	recorder, _, _ := newTestRecorder(t, nil)

	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	ctx = deliverycontext.WithClientInfo(ctx, deliverycontext.ClientInfo{IPAddress: "203.0.113.9", UserAgent: "curl/8.5"})
	event := newEvent(entity.AuditOutcomeGranted)

	recorder.Record(ctx, event)

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, testNow, event.OccurredAt)
	assert.Equal(t, "req-42", event.RequestID)
	assert.Equal(t, "203.0.113.9", event.IPAddress)
	assert.Equal(t, "curl/8.5", event.UserAgent)
	assert.Len(t, recorder.events, 1)
}

func TestRecorder_Record_DropsWhenFull(t *testing.T) {
	recorder, _, _ := newTestRecorder(t, &config.AuditConfig{BufferSize: 2})

	for range 5 {
		recorder.Record(context.Background(), newEvent(entity.AuditOutcomeDenied))
	}

	assert.Equal(t, int64(3), recorder.Dropped())
	assert.Len(t, recorder.events, 2)
}

func TestRecorder_Record_NilEvent(t *testing.T) {
	recorder, _, _ := newTestRecorder(t, nil)

	recorder.Record(context.Background(), nil)

	assert.Empty(t, recorder.events)
	assert.Zero(t, recorder.Dropped())
}

func TestRecorder_Stop_FlushesBufferedEvents(t *testing.T) {
	recorder, repo, publisher := newTestRecorder(t, &config.AuditConfig{BatchSize: 10, FlushInterval: time.Hour})

	repo.EXPECT().
		Append(mock.Anything, mock.MatchedBy(func(events []*entity.AuditEvent) bool { return len(events) == 3 })).
		Return(nil).
		Once()
	publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.AnythingOfType("*entity.AuditEvent")).Return(nil).Times(3)

	recorder.Start()
	for range 3 {
		recorder.Record(context.Background(), newEvent(entity.AuditOutcomeGranted))
	}

	require.NoError(t, recorder.Stop(context.Background()))
}

func TestRecorder_Flush_PublishesWhenStoreFails(t *testing.T) {
	recorder, repo, publisher := newTestRecorder(t, &config.AuditConfig{BatchSize: 1, FlushInterval: time.Hour})

	repo.EXPECT().Append(mock.Anything, mock.Anything).Return(assert.AnError).Once()
	publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.Anything).Return(nil).Once()

	recorder.Start()
	recorder.Record(context.Background(), newEvent(entity.AuditOutcomeFailed))

	require.NoError(t, recorder.Stop(context.Background()))
}

func TestRecorder_Record_AfterStop(t *testing.T) {
	recorder, _, _ := newTestRecorder(t, nil)

	recorder.Start()
	require.NoError(t, recorder.Stop(context.Background()))

	recorder.Record(context.Background(), newEvent(entity.AuditOutcomeGranted))

	assert.Equal(t, int64(1), recorder.Dropped())
}
