// Package logger configures structured logging (log/slog) for the library and
// provides context-scoped loggers so that validation calls can carry
// key-value attributes without threading a logger through every signature.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/amp-labs/amp-tabular/contexts"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

// Used so the caller can know which part of the system is generating the log.
// Using atomic.Value to ensure thread-safe reads and writes.
var subsystem atomic.Value //nolint:gochecknoglobals

// configMutex protects concurrent calls to ConfigureLoggingWithOptions.
// This is necessary because the function modifies global state (slog.SetDefault).
var configMutex sync.Mutex //nolint:gochecknoglobals

// It's considered good practice to use unexported custom types for context keys.
// This avoids collisions with other packages that might be using the same string
// values for their own keys.
type contextKey string

const (
	mutedKey  contextKey = "muted"
	valuesKey contextKey = "loggerValues"
)

// Fatal logs an error message and exits the application.
func Fatal(msg string, args ...any) {
	slog.Error(msg, args...)

	os.Exit(1)
}

// Options is used to configure logging.
type Options struct {
	// Subsystem names the component producing logs, added as an attribute.
	Subsystem string

	// JSON selects the JSON handler over the text handler.
	JSON bool

	// MinLevel is the minimum level that will be emitted.
	MinLevel slog.Level

	// Output is where logs are written. Defaults to os.Stdout.
	Output io.Writer

	// LoggerProvider, when non-nil, routes logs through the OpenTelemetry
	// log bridge instead of a local text/JSON handler. Build one with
	// telemetry.NewLoggerProvider or the otel SDK directly.
	LoggerProvider *sdklog.LoggerProvider
}

// ConfigureLoggingWithOptions configures logging for the library and returns
// the default logger. This function is thread-safe but modifies global state,
// so concurrent calls will be serialized.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	var handler slog.Handler

	switch {
	case opts.LoggerProvider != nil:
		handler = otelslog.NewHandler(opts.Subsystem,
			otelslog.WithLoggerProvider(opts.LoggerProvider))
	case opts.JSON:
		handler = slog.NewJSONHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	default:
		handler = slog.NewTextHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	}

	logger := slog.New(&slogErrorLogger{inner: handler})

	slog.SetDefault(logger)

	subsystem.Store(opts.Subsystem)

	return logger
}

// GetSubsystem returns the configured subsystem name, or an empty string.
func GetSubsystem() string {
	name, ok := subsystem.Load().(string)
	if !ok {
		return ""
	}

	return name
}

// WithMuted returns a context that suppresses all logging when muted is true.
// Useful for high-frequency validation loops where per-call logs add noise.
func WithMuted(ctx context.Context, muted bool) context.Context {
	return contexts.WithValue(ctx, mutedKey, muted)
}

func isMuted(ctx context.Context) bool {
	muted, ok := contexts.GetValue[contextKey, bool](ctx, mutedKey)

	return ok && muted
}

// With returns a new context with the given values added.
// The values are added to the logger automatically.
func With(ctx context.Context, values ...any) context.Context {
	if len(values) == 0 && ctx != nil {
		// Corner case, don't bother creating a new context.
		return ctx
	}

	vals := append(getValues(ctx), values...)

	return contexts.WithValue(ctx, valuesKey, vals)
}

func getValues(ctx context.Context) []any {
	vals, ok := contexts.GetValue[contextKey, []any](ctx, valuesKey)
	if !ok {
		return nil
	}

	return vals
}

// nullHandler is a slog.Handler implementation that discards all log output.
// It is used to implement the muted logging feature.
type nullHandler struct{}

func (n *nullHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return false
}

func (n *nullHandler) Handle(_ context.Context, _ slog.Record) error {
	return nil
}

func (n *nullHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return n
}

func (n *nullHandler) WithGroup(_ string) slog.Handler {
	return n
}

// nullLogger discards all output. Returned by Get when the context is muted,
// so callers can log unconditionally without checking the flag themselves.
var nullLogger = slog.New(&nullHandler{}) //nolint:gochecknoglobals

// Get returns a logger seeded with the subsystem name and any key-value
// attributes attached to the context via With. A nil or missing context is
// tolerated and falls back to context.Background().
func Get(ctx ...context.Context) *slog.Logger {
	realCtx := contexts.EnsureContext(ctx...)

	if isMuted(realCtx) {
		return nullLogger
	}

	logger := slog.Default()

	if name := GetSubsystem(); name != "" {
		logger = logger.With("subsystem", name)
	}

	if vals := getValues(realCtx); vals != nil {
		logger = logger.With(vals...)
	}

	return logger
}
