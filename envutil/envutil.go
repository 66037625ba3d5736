// Package envutil reads typed configuration values from environment
// variables. A Reader carries the key, whether the variable was present, the
// parsed value, and any parse error, so callers can chain defaults and decide
// how strictly to treat missing or malformed values.
package envutil

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Reader holds the outcome of reading a single environment variable.
type Reader[T any] struct {
	key     string
	present bool
	value   T
	err     error
}

// Option is a function which modifies a Reader. It's used by functions like
// String and Bool so that the caller can easily provide defaults.
type Option[T any] func(Reader[T]) Reader[T]

// Default allows you to provide a default value for the Reader.
func Default[T any](dfl T) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithDefault(dfl)
	}
}

// WithDefault returns a Reader that substitutes dfl when the variable was absent.
func (r Reader[T]) WithDefault(dfl T) Reader[T] {
	if r.present || r.err != nil {
		return r
	}

	return Reader[T]{key: r.key, present: true, value: dfl}
}

// Value returns the parsed value, or an error if the variable was absent or malformed.
func (r Reader[T]) Value() (T, error) {
	if r.err != nil {
		return r.value, fmt.Errorf("reading %q: %w", r.key, r.err)
	}

	if !r.present {
		return r.value, fmt.Errorf("environment variable %q is not set", r.key) //nolint:err113
	}

	return r.value, nil
}

// ValueOrElse returns the parsed value, or fallback when absent or malformed.
func (r Reader[T]) ValueOrElse(fallback T) T {
	if r.err != nil || !r.present {
		return fallback
	}

	return r.value
}

// ValueOrFatal returns the parsed value, or logs and exits when absent or malformed.
func (r Reader[T]) ValueOrFatal() T {
	value, err := r.Value()
	if err != nil {
		slog.Error("failed to read environment variable", "key", r.key, "error", err)
		os.Exit(1)
	}

	return value
}

// get returns a Reader for the given environment variable key.
func get(key string) Reader[string] {
	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

// String returns a Reader for the given environment variable key.
func String(key string, opts ...Option[string]) Reader[string] {
	rdr := get(key)
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// Bool returns a Reader that parses the variable with strconv.ParseBool.
func Bool(key string, opts ...Option[bool]) Reader[bool] {
	rdr := Map(get(key), strconv.ParseBool)
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// Duration returns a Reader that parses the variable with time.ParseDuration.
func Duration(key string, opts ...Option[time.Duration]) Reader[time.Duration] {
	rdr := Map(get(key), time.ParseDuration)
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// Map converts a Reader's value using the supplied transform. Absent values
// pass through untouched; transform errors are carried on the Reader.
func Map[T any, U any](r Reader[T], f func(T) (U, error)) Reader[U] {
	out := Reader[U]{key: r.key, present: r.present, err: r.err}

	if r.present && r.err == nil {
		value, err := f(r.value)
		out.value = value
		out.err = err
	}

	return out
}
