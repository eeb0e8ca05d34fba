package logging

import (
	"io"
	"log/slog"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a Logger writing to w.
//
// format selects the backend: "text" (default) and "json" use slog handlers,
// "zap" uses a zap console encoder. level is one of debug, info, warn, error;
// anything else means info.
func New(level, format string, w io.Writer) Logger {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
		return NewSlogLogger(slog.New(h))
	case "zap":
		enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		core := zapcore.NewCore(enc, zapcore.AddSync(w), zapLevel(level))
		return NewZapLogger(zap.New(core))
	default:
		h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
		return NewSlogLogger(slog.New(h))
	}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func parseLevel(v string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func zapLevel(v string) zapcore.Level {
	switch parseLevel(v) {
	case slog.LevelDebug:
		return zapcore.DebugLevel
	case slog.LevelWarn:
		return zapcore.WarnLevel
	case slog.LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
