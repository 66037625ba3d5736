package logger

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// AnnotateError wraps an error with structured logging attributes (slog
// key-value pairs). When the returned error is logged through a logger built
// by ConfigureLoggingWithOptions, the attributes are extracted and included
// in the log output. This lets validation code attach the contract name and
// container description to an error once, at the point of failure.
//
// Args should be key-value pairs compatible with slog. Returns nil if err is nil.
func AnnotateError(err error, args ...any) error {
	if err == nil {
		return nil
	}

	r := slog.NewRecord(time.Now(), slog.LevelDebug, "", 0)
	r.Add(args...)

	var errAttrs []slog.Attr

	r.Attrs(func(attr slog.Attr) bool {
		errAttrs = append(errAttrs, attr)

		return true
	})

	return &slogError{
		err:   err,
		attrs: errAttrs,
	}
}

// slogError wraps an error with structured logging attributes.
// It supports unwrapping, so errors.Is and errors.As see through it.
type slogError struct {
	err   error
	attrs []slog.Attr
}

// Error returns the error message from the underlying error.
func (s *slogError) Error() string {
	return s.err.Error()
}

// Unwrap returns the underlying error, supporting error chain traversal.
func (s *slogError) Unwrap() error {
	return s.err
}

var _ error = (*slogError)(nil)

// slogErrorLogger is a slog.Handler decorator that extracts structured
// attributes from annotated errors (created via AnnotateError) and includes
// them in the log output. It wraps another handler and delegates all actual
// logging to it.
type slogErrorLogger struct {
	inner slog.Handler
}

var _ slog.Handler = (*slogErrorLogger)(nil)

// Enabled reports whether the handler handles records at the given level.
// Delegates to the inner handler.
func (s *slogErrorLogger) Enabled(ctx context.Context, level slog.Level) bool {
	return s.inner.Enabled(ctx, level)
}

// Handle processes a log record. Error attributes carrying annotations are
// replaced with the unwrapped error, and the embedded attributes are appended
// to the record before it reaches the inner handler.
func (s *slogErrorLogger) Handle(ctx context.Context, record slog.Record) error {
	var (
		baseAttrs []slog.Attr
		errAttrs  []slog.Attr
	)

	record.Attrs(func(attr slog.Attr) bool {
		val := attr.Value.Any()

		switch v := val.(type) {
		case error:
			var se *slogError

			if errors.As(v, &se) {
				baseAttrs = append(baseAttrs, slog.Attr{
					Key:   attr.Key,
					Value: slog.AnyValue(se.err),
				})

				errAttrs = append(errAttrs, se.attrs...)
			} else {
				baseAttrs = append(baseAttrs, attr)
			}
		default:
			baseAttrs = append(baseAttrs, attr)
		}

		return true
	})

	if len(errAttrs) > 0 {
		r := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
		r.AddAttrs(baseAttrs...)
		r.AddAttrs(errAttrs...)

		return s.inner.Handle(ctx, r)
	}

	return s.inner.Handle(ctx, record)
}

// WithAttrs returns a new handler with the given attributes added, keeping
// the error annotation extraction behavior.
func (s *slogErrorLogger) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &slogErrorLogger{
		inner: s.inner.WithAttrs(attrs),
	}
}

// WithGroup returns a new handler with the given group name, keeping the
// error annotation extraction behavior.
func (s *slogErrorLogger) WithGroup(name string) slog.Handler {
	return &slogErrorLogger{
		inner: s.inner.WithGroup(name),
	}
}
