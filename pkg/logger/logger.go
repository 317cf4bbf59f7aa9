// Package logger provides a structured, levelled logger built on log/slog.
//
// Handlers log through a per-request logger that already carries the
// request_id injected by the Logger middleware:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("item added to cart", "item_id", itemID)
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/zephyrlabs/zephyr/config"
)

var L *slog.Logger

func init() {
	var handler slog.Handler

	opts := &slog.HandlerOptions{}

	switch config.AppEnv() {
	case "production", "prod":
		opts.Level = slog.LevelInfo
		handler = slog.NewJSONHandler(os.Stdout, opts) // structured JSON for log aggregators
	default:
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts) // human-readable for dev
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

// AttachMongoSink adds the asynchronous MongoDB sink next to the stdout
// handler when LOG_MONGO_URI is configured. Returns the handler so the
// caller can Close() it on shutdown; returns nil when the sink is disabled
// or unreachable.
func AttachMongoSink() *MongoHandler {
	uri := config.LogMongoURI()
	if uri == "" {
		return nil
	}

	mh, err := NewMongoHandler(uri, config.LogMongoDB(), config.LogMongoCollection())
	if err != nil {
		L.Warn("mongo log sink unavailable", "error", err)
		return nil
	}

	L = slog.New(NewMultiHandler(L.Handler(), mh))
	slog.SetDefault(L)
	return mh
}

// ctxKey is the unexported key used to store a per-request *slog.Logger.
type ctxKey struct{}

// WithCtx returns the per-request *slog.Logger stored by the Logger
// middleware, or the base logger when none is present.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores a *slog.Logger (pre-tagged with request_id) into ctx.
// Called by the Logger middleware — not usually needed in application code.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
