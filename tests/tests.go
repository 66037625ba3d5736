// Package tests provides helpers for carrying test metadata (a unique ID and
// the test name) through context.Context, so tests can create uniquely-named
// fixtures and correlate log output with the test that produced it.
package tests

import (
	"context"
	"testing"

	"github.com/amp-labs/amp-tabular/contexts"
	"github.com/google/uuid"
)

// contextKey is a private type used for storing test metadata in context.Context.
// Using a custom type instead of string prevents collisions with other packages.
type contextKey string

const (
	testIdKey   contextKey = "testId"
	testNameKey contextKey = "testName"
)

// TestInfo carries the metadata stored by GetUniqueContext.
type TestInfo struct {
	// Id is a UUID prefixed with "test-", unique per GetUniqueContext call.
	Id string

	// Name is the full test path from testing.T.Name().
	Name string
}

// GetUniqueContext creates a context derived from t.Context() that includes a
// unique test identifier and the test name. Marked as a test helper, so
// failures are reported at the caller's location.
func GetUniqueContext(t *testing.T) context.Context {
	t.Helper()

	return contexts.WithMultipleValues[contextKey](t.Context(), map[contextKey]any{
		testIdKey:   "test-" + uuid.New().String(),
		testNameKey: t.Name(),
	})
}

// GetTestInfo retrieves the test metadata from the context.
// Returns false when the context was not created by GetUniqueContext.
func GetTestInfo(ctx context.Context) (TestInfo, bool) {
	id, okId := contexts.GetValue[contextKey, string](ctx, testIdKey)
	name, okName := contexts.GetValue[contextKey, string](ctx, testNameKey)

	if !okId || !okName {
		return TestInfo{}, false
	}

	return TestInfo{Id: id, Name: name}, true
}
