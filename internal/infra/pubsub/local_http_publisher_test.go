package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"orderguard/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuditEvent() *entity.AuditEvent {
	return &entity.AuditEvent{
		ID:         uuid.New(),
		ActorID:    uuid.New(),
		Role:       entity.RoleCustomer,
		Action:     entity.ActionUpdate,
		Resource:   entity.ResourceAllOrders,
		Outcome:    entity.AuditOutcomeDenied,
		Gate:       "permission",
		RequestID:  "req-7",
		OccurredAt: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishAuditEvent(t *testing.T) {
	event := newTestAuditEvent()

	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, "orderguard-audit", slog.New(slog.DiscardHandler))
	require.NoError(t, publisher.PublishAuditEvent(t.Context(), event))

	assert.Equal(t, "req-7", requestID)
	assert.Equal(t, "projects/local/subscriptions/orderguard-audit-push", received.Subscription)
	assert.Equal(t, event.ID.String(), received.Message.MessageID)
	assert.Equal(t, "denied", received.Message.Attributes["outcome"])
	assert.Equal(t, "permission", received.Message.Attributes["gate"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded entity.AuditEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, entity.ResourceAllOrders, decoded.Resource)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, "", slog.New(slog.DiscardHandler))
	err := publisher.PublishAuditEvent(t.Context(), newTestAuditEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestEventAttributes_OmitEmpty(t *testing.T) {
	event := newTestAuditEvent()
	event.Gate = ""
	event.RequestID = ""

	attributes := eventAttributes(event)
	assert.NotContains(t, attributes, "gate")
	assert.NotContains(t, attributes, "request_id")
	assert.Equal(t, "customer", attributes["role"])
}
