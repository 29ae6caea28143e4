// Package logger wraps zerolog with the service's defaults: one JSON object per
// line, a "ts" RFC3339Nano timestamp and a "level" field.
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the project-wide logging type.
type Logger = zerolog.Logger

// Options configures the logger.
type Options struct {
	Level   string
	Format  string
	Service string
	Writer  io.Writer
}

var root atomic.Pointer[zerolog.Logger]

func init() {
	zerolog.TimestampFieldName = "ts"
	zerolog.TimeFieldFormat = time.RFC3339Nano
	l := New(Options{Level: "info", Format: "json"})
	root.Store(&l)
}

// New builds a logger from opt without touching the process-wide root.
func New(opt Options) Logger {
	var w io.Writer = os.Stdout
	if opt.Writer != nil {
		w = opt.Writer
	}
	if strings.EqualFold(opt.Format, "console") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp()
	if opt.Service != "" {
		ctx = ctx.Str("service", opt.Service)
	}
	return ctx.Logger()
}

// Init replaces the process-wide root logger.
func Init(opt Options) {
	l := New(opt)
	root.Store(&l)
}

// Get returns the process-wide root logger.
func Get() *Logger {
	return root.Load()
}

// Named returns a child logger with a component field.
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}

type ctxKey struct{}

// WithRequestID annotates ctx with the request id so C can pick it up.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, requestID)
}

// C returns a child of the root logger enriched with the request id found in ctx.
func C(ctx context.Context) *Logger {
	if ctx == nil {
		return Get()
	}
	if id, ok := ctx.Value(ctxKey{}).(string); ok && id != "" {
		l := Get().With().Str("request_id", id).Logger()
		return &l
	}
	return Get()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
