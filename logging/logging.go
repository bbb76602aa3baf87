// Package logging builds the module's slog loggers and carries them
// through contexts.
//
// Library packages (mtx, network, validate, codec) are log-free; the
// host-facing layers (session, store, httpapi, the CLI) take a
// *slog.Logger and default to Nop when given none. FromContext never
// panics and never returns nil, so call sites need no guards.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// New builds a logger writing to w at the named level, text or JSON.
// Unknown level names fall back to "info".
func New(level string, json bool, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// Nop returns a logger that discards everything.
func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// parseLevel maps the config strings onto slog levels.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// key is unexported so no other package can collide with our context slot.
type key struct{}

// WithContext returns a context carrying l.
func WithContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, key{}, l)
}

// FromContext extracts the logger placed by WithContext. A context without
// one (or a nil context value) yields Nop, never nil.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(key{}).(*slog.Logger); ok && l != nil {
			return l
		}
	}

	return Nop()
}
