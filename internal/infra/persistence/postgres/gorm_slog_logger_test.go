package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"orderguard/config"
	deliverycontext "orderguard/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (*bytes.Buffer, logger.Interface) {
	buf := &bytes.Buffer{}
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	base := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return buf, newGormSlogLogger(base, cfg)
}

func TestGormSlogLogger_TraceCarriesRequestID(t *testing.T) {
	buf, gormLogger := newBufferedGormLogger(true)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	gormLogger.Trace(ctx, time.Now(), func() (string, int64) {
		return "SELECT 1", 1
	}, nil)

	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
	assert.Contains(t, buf.String(), `"sql":"SELECT 1"`)
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	buf, gormLogger := newBufferedGormLogger(false)

	gormLogger.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT * FROM orders", 0
	}, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_QuietOutsideDebug(t *testing.T) {
	buf, gormLogger := newBufferedGormLogger(false)

	gormLogger.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT 1", 1
	}, nil)

	assert.Empty(t, buf.String())
}
