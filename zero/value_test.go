package zero_test

import (
	"testing"

	"github.com/amp-labs/amp-tabular/zero"
	"github.com/stretchr/testify/assert"
)

type testStruct struct {
	Field1 string
	Field2 int
}

func TestValue(t *testing.T) {
	t.Parallel()

	t.Run("int returns 0", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0, zero.Value[int]())
	})

	t.Run("string returns empty string", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, zero.Value[string]())
	})

	t.Run("struct returns zeroed fields", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, testStruct{}, zero.Value[testStruct]())
	})

	t.Run("pointer returns nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, zero.Value[*testStruct]())
	})
}

func TestIsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, zero.IsZero(0))
	assert.False(t, zero.IsZero(1))
	assert.True(t, zero.IsZero(""))
	assert.False(t, zero.IsZero("x"))
	assert.True(t, zero.IsZero(testStruct{}))
	assert.False(t, zero.IsZero(testStruct{Field2: 1}))
}
