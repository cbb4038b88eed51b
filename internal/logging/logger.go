// Package logging defines the structured logger used across the client and
// its two backends: log/slog for human-readable text and zap for JSON.
package logging

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "request done", "method", req.Method, "status", resp.StatusCode)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

const (
	FormatText = "text"
	FormatJSON = "json"
)

// New builds a Logger writing to w. Format "json" selects the zap backend,
// "text" (or empty) the slog one. Level is one of debug, info, warn, error.
func New(format, level string, w io.Writer) (Logger, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return newSlogText(level, w)
	case FormatJSON:
		return newZapJSON(level, w)
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// Nop discards everything. Handy for tests and for components built without a logger.
func Nop() Logger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) Logger                  { return n }
