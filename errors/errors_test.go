package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinels(t *testing.T) {
	t.Parallel()

	t.Run("wrapped sentinels survive errors.Is", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("%w: column amount has nulls", ErrValidation)

		require.ErrorIs(t, err, ErrValidation)
		assert.NotErrorIs(t, err, ErrShape)
		assert.NotErrorIs(t, err, ErrConfiguration)
	})

	t.Run("sentinels are distinct", func(t *testing.T) {
		t.Parallel()

		assert.NotErrorIs(t, ErrValidation, ErrShape)
		assert.NotErrorIs(t, ErrShape, ErrConfiguration)
		assert.NotErrorIs(t, ErrConfiguration, ErrValidation)
	})
}

func TestCollection_Add(t *testing.T) {
	t.Parallel()

	t.Run("adds non-nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(errors.New("error 1")) //nolint:err113
		c.Add(errors.New("error 2")) //nolint:err113

		assert.True(t, c.HasError())
		assert.Len(t, c.errors, 2)
	})

	t.Run("ignores nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		c.Add(nil)

		assert.False(t, c.HasError())
		assert.Empty(t, c.errors)
	})
}

func TestCollection_Clear(t *testing.T) {
	t.Parallel()

	c := &Collection{}
	c.Add(errors.New("error 1")) //nolint:err113

	c.Clear()

	assert.False(t, c.HasError())
	assert.Empty(t, c.errors)
}

func TestCollection_GetError(t *testing.T) {
	t.Parallel()

	t.Run("empty collection yields nil", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		require.NoError(t, c.GetError())
	})

	t.Run("single error is returned as-is", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		err := errors.New("only one") //nolint:err113
		c.Add(err)

		assert.Equal(t, err, c.GetError())
	})

	t.Run("multiple errors are joined", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		err1 := fmt.Errorf("%w: first", ErrValidation)
		err2 := fmt.Errorf("%w: second", ErrValidation)
		c.Add(err1)
		c.Add(err2)

		joined := c.GetError()

		require.Error(t, joined)
		require.ErrorIs(t, joined, err1)
		require.ErrorIs(t, joined, err2)
		assert.ErrorIs(t, joined, ErrValidation)
	})
}
