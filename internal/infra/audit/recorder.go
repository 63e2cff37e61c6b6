// Package audit records authorization decisions and privileged mutations off
// the request path and purges them once they fall out of retention.
package audit

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"orderguard/config"
	deliverycontext "orderguard/internal/delivery/context"
	"orderguard/internal/domain/entity"
	"orderguard/internal/domain/lifecycle"
	"orderguard/internal/domain/repository"
	"orderguard/internal/domain/service"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultBufferSize    = 1024
	defaultBatchSize     = 100
	defaultFlushInterval = time.Second
)

// Recorder buffers audit events in a bounded channel and writes them in
// batches from a single goroutine. When the buffer is full new events are
// dropped, so Record never blocks.
type Recorder struct {
	repo      repository.AuditRepository
	publisher service.EventPublisher
	logger    *slog.Logger

	events        chan *entity.AuditEvent
	batchSize     int
	flushInterval time.Duration
	now           func() time.Time

	mu      sync.RWMutex
	closed  bool
	dropped atomic.Int64
	done    chan struct{}
}

// RecorderParams holds dependencies for Recorder, injected by Fx
type RecorderParams struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
	Repo      repository.AuditRepository
	Publisher service.EventPublisher
}

// NewRecorder creates the recorder and ties its writer goroutine to the app lifecycle.
func NewRecorder(params RecorderParams) service.AuditRecorder {
	recorder := newRecorder(params.Config.Audit, params.Repo, params.Publisher, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			recorder.Start()

			return nil
		},
		OnStop: recorder.Stop,
	})

	return recorder
}

func newRecorder(
	cfg *config.AuditConfig, repo repository.AuditRepository, publisher service.EventPublisher, logger *slog.Logger,
) *Recorder {
	bufferSize, batchSize, flushInterval := defaultBufferSize, defaultBatchSize, defaultFlushInterval
	if cfg != nil {
		if cfg.BufferSize > 0 {
			bufferSize = cfg.BufferSize
		}
		if cfg.BatchSize > 0 {
			batchSize = cfg.BatchSize
		}
		if cfg.FlushInterval > 0 {
			flushInterval = cfg.FlushInterval
		}
	}

	return &Recorder{
		repo:          repo,
		publisher:     publisher,
		logger:        logger,
		events:        make(chan *entity.AuditEvent, bufferSize),
		batchSize:     batchSize,
		flushInterval: flushInterval,
		now:           time.Now,
		done:          make(chan struct{}),
	}
}

// Record enqueues event. Missing id, timestamp and request metadata are
// filled in from ctx.
func (r *Recorder) Record(ctx context.Context, event *entity.AuditEvent) {
	if event == nil {
		return
	}
	r.enrich(ctx, event)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		r.drop(ctx, event, "recorder stopped")

		return
	}

	select {
	case r.events <- event:
	default:
		r.drop(ctx, event, "buffer full")
	}
}

// Dropped returns how many events were discarded since start.
func (r *Recorder) Dropped() int64 {
	return r.dropped.Load()
}

// Start launches the writer goroutine.
func (r *Recorder) Start() {
	go r.run()
}

// Stop refuses new events, flushes what is buffered and waits for the writer
// until ctx is done.
func (r *Recorder) Stop(ctx context.Context) error {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.events)
	}
	r.mu.Unlock()

	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		r.logger.Warn("Audit recorder stopped before the buffer was drained",
			slog.Int("pending", len(r.events)),
		)

		return ctx.Err()
	}
}

func (r *Recorder) enrich(ctx context.Context, event *entity.AuditEvent) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = r.now().UTC()
	}
	if event.RequestID == "" {
		event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	client := deliverycontext.GetClientInfo(ctx)
	if event.IPAddress == "" {
		event.IPAddress = client.IPAddress
	}
	if event.UserAgent == "" {
		event.UserAgent = client.UserAgent
	}
}

func (r *Recorder) drop(ctx context.Context, event *entity.AuditEvent, reason string) {
	total := r.dropped.Add(1)
	r.logger.WarnContext(ctx, "Audit event dropped",
		slog.String("reason", reason),
		slog.String("event_id", event.ID.String()),
		slog.String("action", string(event.Action)),
		slog.String("outcome", string(event.Outcome)),
		slog.Int64("dropped_total", total),
	)
}

func (r *Recorder) run() {
	defer close(r.done)

	ticker := time.NewTicker(r.flushInterval)
	defer ticker.Stop()

	batch := make([]*entity.AuditEvent, 0, r.batchSize)
	for {
		select {
		case event, ok := <-r.events:
			if !ok {
				r.flush(batch)

				return
			}
			batch = append(batch, event)
			if len(batch) >= r.batchSize {
				r.flush(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				r.flush(batch)
				batch = batch[:0]
			}
		}
	}
}

// flush stores the batch and then publishes each event. Both steps are best
// effort and only log failures.
func (r *Recorder) flush(batch []*entity.AuditEvent) {
	if len(batch) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := r.repo.Append(ctx, batch); err != nil {
		r.logger.Error("Failed to store audit events",
			slog.Int("count", len(batch)),
			slog.Any("error", err),
		)
	}

	if r.publisher == nil {
		return
	}
	for _, event := range batch {
		if err := r.publisher.PublishAuditEvent(ctx, event); err != nil {
			r.logger.Warn("Failed to publish audit event",
				slog.String("event_id", event.ID.String()),
				slog.Any("error", err),
			)
		}
	}
}
