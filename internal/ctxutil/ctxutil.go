// Package ctxutil holds request-scoped values shared by the HTTP middleware
// and the persistence layer.
//
// The auth middleware writes the current actor at request entry; the audit
// auto-fill stage reads it when a mapper call runs. Values live on the
// request's context.Context, so they end with the request and are never
// visible to other requests.
package ctxutil

import (
	"context"
	"log/slog"
)

type contextKey string

const (
	keyActorID   contextKey = "actor_id"
	keyRequestID contextKey = "request_id"
	keyLogger    contextKey = "logger"
)

// WithActorID returns a new context carrying the ID of the employee driving the request.
func WithActorID(ctx context.Context, actorID int64) context.Context {
	return context.WithValue(ctx, keyActorID, actorID)
}

// ActorIDFromContext extracts the actor ID from the context.
func ActorIDFromContext(ctx context.Context) (int64, bool) {
	if ctx == nil {
		return 0, false
	}
	v, ok := ctx.Value(keyActorID).(int64)
	return v, ok
}

// WithRequestID returns a new context carrying the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, keyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from the context.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(keyRequestID).(string)
	return v
}

// WithLogger returns a new context carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// LoggerFromContext extracts the request-scoped logger, or nil if none was set.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return nil
	}
	v, _ := ctx.Value(keyLogger).(*slog.Logger)
	return v
}
