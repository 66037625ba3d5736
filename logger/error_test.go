//nolint:err113 // Test file uses errors.New() for creating test errors
package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotateError_NilError(t *testing.T) {
	t.Parallel()

	assert.NoError(t, AnnotateError(nil, "key", "value"))
}

func TestAnnotateError_BasicAnnotation(t *testing.T) {
	t.Parallel()

	baseErr := errors.New("base error")
	annotated := AnnotateError(baseErr, "contract", "has_columns", "rows", 3)

	require.Error(t, annotated)
	assert.Equal(t, "base error", annotated.Error())

	var se *slogError
	require.ErrorAs(t, annotated, &se)
	assert.Equal(t, baseErr, se.err)
	assert.Len(t, se.attrs, 2)
}

func TestSlogError_Unwrap(t *testing.T) {
	t.Parallel()

	baseErr := errors.New("base error")
	annotated := AnnotateError(baseErr, "key", "value")

	assert.Equal(t, baseErr, errors.Unwrap(annotated))
	require.ErrorIs(t, annotated, baseErr)
}

func TestSlogError_ChainedAnnotation(t *testing.T) {
	t.Parallel()

	baseErr := errors.New("base error")
	annotated1 := AnnotateError(baseErr, "key1", "value1")
	annotated2 := AnnotateError(annotated1, "key2", "value2")

	var se *slogError
	require.ErrorAs(t, annotated2, &se)
	require.Len(t, se.attrs, 1)
	assert.Equal(t, "key2", se.attrs[0].Key)

	require.ErrorAs(t, errors.Unwrap(annotated2), &se)
	assert.Equal(t, "key1", se.attrs[0].Key)
}

func TestSlogErrorLogger_Enabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	handler := &slogErrorLogger{inner: slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})}

	assert.True(t, handler.Enabled(context.Background(), slog.LevelError))
	assert.False(t, handler.Enabled(context.Background(), slog.LevelInfo))
}

func TestSlogErrorLogger_Handle_WithAnnotatedError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	handler := &slogErrorLogger{inner: slog.NewJSONHandler(&buf, nil)}

	annotated := AnnotateError(errors.New("base error"),
		"contract", "not_nan_frame",
		"column", "amount",
	)

	record := slog.NewRecord(time.Now(), slog.LevelError, "coercion failed", 0)
	record.AddAttrs(slog.Any("error", annotated))

	require.NoError(t, handler.Handle(context.Background(), record))

	var logData map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logData))

	assert.Equal(t, "coercion failed", logData["msg"])
	assert.Equal(t, "not_nan_frame", logData["contract"])
	assert.Equal(t, "amount", logData["column"])
}

func TestSlogErrorLogger_Handle_PlainError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	handler := &slogErrorLogger{inner: slog.NewJSONHandler(&buf, nil)}

	record := slog.NewRecord(time.Now(), slog.LevelError, "plain failure", 0)
	record.AddAttrs(slog.Any("error", errors.New("plain error")))

	require.NoError(t, handler.Handle(context.Background(), record))

	output := buf.String()
	assert.Contains(t, output, "plain failure")
	assert.Contains(t, output, "plain error")
}

func TestSlogErrorLogger_WithAttrsAndGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	handler := &slogErrorLogger{inner: slog.NewJSONHandler(&buf, nil)}

	withAttrs := handler.WithAttrs([]slog.Attr{slog.String("fixed", "attr")})
	_, ok := withAttrs.(*slogErrorLogger)
	assert.True(t, ok)

	withGroup := handler.WithGroup("checks")
	_, ok = withGroup.(*slogErrorLogger)
	assert.True(t, ok)
}

func TestSlogErrorLogger_Integration(t *testing.T) { //nolint:paralleltest // slog.SetDefault is global
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "error-test",
		JSON:      true,
		Output:    &buf,
	})

	annotated := AnnotateError(errors.New("predicate failed"),
		"contract", "unique_index_frame",
		"rows", 7,
	)

	Get(context.Background()).Error("contract rejected frame", "error", annotated)

	output := buf.String()
	assert.Contains(t, output, "error-test")
	assert.Contains(t, output, "predicate failed")
	assert.Contains(t, output, "unique_index_frame")
	assert.Contains(t, output, "rows")
}
