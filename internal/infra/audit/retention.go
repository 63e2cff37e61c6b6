package audit

import (
	"context"
	"log/slog"
	"time"

	"orderguard/config"
	"orderguard/internal/domain/lifecycle"
	"orderguard/internal/domain/repository"
	"orderguard/internal/errors"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

const (
	defaultRetention     = 90 * 24 * time.Hour
	defaultPurgeSchedule = "0 3 * * *"
)

// RetentionSweeper periodically deletes audit events older than the retention
// window together with expired refresh tokens.
type RetentionSweeper struct {
	auditRepo repository.AuditRepository
	tokenRepo repository.RefreshTokenRepository
	logger    *slog.Logger
	retention time.Duration
	scheduler *cron.Cron
	now       func() time.Time
}

// RetentionParams holds dependencies for RetentionSweeper, injected by Fx
type RetentionParams struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
	AuditRepo repository.AuditRepository
	TokenRepo repository.RefreshTokenRepository
}

// NewRetentionSweeper schedules the sweep and runs the scheduler for the lifetime of the app.
func NewRetentionSweeper(params RetentionParams) (*RetentionSweeper, error) {
	sweeper, err := newRetentionSweeper(params.Config.Audit, params.AuditRepo, params.TokenRepo, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sweeper.scheduler.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			select {
			case <-sweeper.scheduler.Stop().Done():
				return nil
			case <-ctx.Done():
				return errors.Wrap(ctx.Err(), "audit retention sweep still running at shutdown")
			}
		},
	})

	return sweeper, nil
}

func newRetentionSweeper(
	cfg *config.AuditConfig,
	auditRepo repository.AuditRepository,
	tokenRepo repository.RefreshTokenRepository,
	logger *slog.Logger,
) (*RetentionSweeper, error) {
	retention, schedule := defaultRetention, defaultPurgeSchedule
	if cfg != nil {
		if cfg.Retention > 0 {
			retention = cfg.Retention
		}
		if cfg.PurgeSchedule != "" {
			schedule = cfg.PurgeSchedule
		}
	}

	sweeper := &RetentionSweeper{
		auditRepo: auditRepo,
		tokenRepo: tokenRepo,
		logger:    logger,
		retention: retention,
		scheduler: cron.New(cron.WithLocation(time.UTC)),
		now:       time.Now,
	}

	if _, err := sweeper.scheduler.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		if err := sweeper.Sweep(ctx); err != nil {
			logger.Error("Audit retention sweep failed", slog.Any("error", err))
		}
	}); err != nil {
		return nil, errors.Wrapf(err, "invalid audit purge schedule %q", schedule)
	}

	return sweeper, nil
}

// Sweep runs one purge. A failure in one store does not skip the other.
func (s *RetentionSweeper) Sweep(ctx context.Context) error {
	now := s.now().UTC()
	cutoff := now.Add(-s.retention)

	purged, auditErr := s.auditRepo.PurgeBefore(ctx, cutoff)
	if auditErr == nil {
		s.logger.InfoContext(ctx, "Purged audit events",
			slog.Int64("count", purged),
			slog.Time("cutoff", cutoff),
		)
	}

	expired, tokenErr := s.tokenRepo.DeleteExpiredRefreshTokens(ctx, now)
	if tokenErr == nil {
		s.logger.InfoContext(ctx, "Deleted expired refresh tokens", slog.Int64("count", expired))
	}

	return errors.Join(auditErr, tokenErr)
}
