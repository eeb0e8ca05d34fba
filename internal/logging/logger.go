// Package logging is the structured logging seam shared by the goalline
// client and the stub backend. New picks a slog or zap backed Logger from
// config values.
package logging

import "context"

// Logger takes a message plus alternating key and value arguments:
//
//	logger.Debug(ctx, "request done", "path", "/matches", "status", 200)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With binds fields that every later entry carries, e.g. a request id.
	With(args ...any) Logger
}

// OrNop returns l, or a discarding Logger when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return Nop()
	}
	return l
}
