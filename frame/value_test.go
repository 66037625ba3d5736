package frame

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueConstructors(t *testing.T) {
	t.Parallel()

	t.Run("zero value is null", func(t *testing.T) {
		t.Parallel()

		var v Value

		assert.True(t, v.IsNull())
		assert.Equal(t, KindNull, v.Kind())
	})

	t.Run("nan normalizes to null", func(t *testing.T) {
		t.Parallel()

		v := Float(math.NaN())

		assert.True(t, v.IsNull())
	})

	t.Run("kinds round-trip through accessors", func(t *testing.T) {
		t.Parallel()

		i, ok := Int(42).AsInt()
		assert.True(t, ok)
		assert.Equal(t, int64(42), i)

		f, ok := Float(1.5).AsFloat()
		assert.True(t, ok)
		assert.InDelta(t, 1.5, f, 0)

		s, ok := Str("hello").AsString()
		assert.True(t, ok)
		assert.Equal(t, "hello", s)

		b, ok := Bool(true).AsBool()
		assert.True(t, ok)
		assert.True(t, b)
	})

	t.Run("accessors refuse other kinds", func(t *testing.T) {
		t.Parallel()

		_, ok := Str("x").AsInt()
		assert.False(t, ok)

		_, ok = Null().AsFloat()
		assert.False(t, ok)
	})

	t.Run("ints widen to float", func(t *testing.T) {
		t.Parallel()

		f, ok := Int(7).AsFloat()
		assert.True(t, ok)
		assert.InDelta(t, 7.0, f, 0)
	})
}

func TestValueCompare(t *testing.T) {
	t.Parallel()

	t.Run("orders within kinds", func(t *testing.T) {
		t.Parallel()

		assert.Negative(t, Compare(Int(1), Int(2)))
		assert.Positive(t, Compare(Float(2.5), Float(1.5)))
		assert.Negative(t, Compare(Str("a"), Str("b")))
		assert.Negative(t, Compare(Bool(false), Bool(true)))
	})

	t.Run("compares int and float numerically", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0, Compare(Int(2), Float(2)))
		assert.Negative(t, Compare(Int(1), Float(1.5)))
	})

	t.Run("nulls order before everything", func(t *testing.T) {
		t.Parallel()

		assert.Negative(t, Compare(Null(), Int(-100)))
		assert.Equal(t, 0, Compare(Null(), Null()))
	})

	t.Run("mixed kinds order by rank", func(t *testing.T) {
		t.Parallel()

		assert.Negative(t, Compare(Bool(true), Int(0)))
		assert.Negative(t, Compare(Int(99), Str("0")))
	})
}

func TestValueEquals(t *testing.T) {
	t.Parallel()

	t.Run("numerically equal int and float are equal", func(t *testing.T) {
		t.Parallel()

		assert.True(t, Int(3).Equals(Float(3)))
	})

	t.Run("different content is not equal", func(t *testing.T) {
		t.Parallel()

		assert.False(t, Int(3).Equals(Int(4)))
		assert.False(t, Str("3").Equals(Int(3)))
	})
}

func TestValueString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<null>", Null().String())
	assert.Equal(t, "42", Int(42).String())
	assert.Equal(t, "1.5", Float(1.5).String())
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "abc", Str("abc").String())
}
