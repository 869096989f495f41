// Package logging provides zerolog construction and context helpers shared by
// every nanolca component.
package logging

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Supported log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// DefaultLevel keeps the interactive console free of log noise.
const DefaultLevel = "warn"

// Config controls logger construction.
type Config struct {
	Level  string
	Format string
}

// ParseLevel converts level to a zerolog level, falling back to DefaultLevel.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		lvl, _ = zerolog.ParseLevel(DefaultLevel)
	}
	return lvl
}

// NewLogger builds a logger writing to w.
// Any format other than "json" produces human-readable console output.
func NewLogger(cfg Config, w io.Writer) zerolog.Logger {
	out := w
	if !strings.EqualFold(cfg.Format, FormatJSON) {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()
}

// ComponentLogger returns a child logger tagged with component.
func ComponentLogger(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

type runIDKey struct{}

// NewRunID returns a new lexically sortable run identifier.
func NewRunID() string {
	return ulid.Make().String()
}

// ContextWithRunID stores id in ctx.
func ContextWithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFromContext returns the run ID stored in ctx, or "".
func RunIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

// GetOrGenerateRunID returns the run ID in ctx, generating one if absent.
func GetOrGenerateRunID(ctx context.Context) string {
	if id := RunIDFromContext(ctx); id != "" {
		return id
	}
	return NewRunID()
}
