package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intSeries(name string, values ...int64) Series {
	cells := make([]Value, len(values))
	for i, v := range values {
		cells[i] = Int(v)
	}

	return NewSeries(name, cells)
}

func TestSeriesConstruction(t *testing.T) {
	t.Parallel()

	t.Run("default index is a range", func(t *testing.T) {
		t.Parallel()

		s := intSeries("x", 10, 20)

		require.Equal(t, 2, s.Len())
		assert.True(t, s.Index().Equals(RangeIndex(2)))
	})

	t.Run("with index enforces matching length", func(t *testing.T) {
		t.Parallel()

		s := intSeries("x", 10, 20)

		_, err := s.WithIndex(RangeIndex(3))
		require.Error(t, err)

		reindexed, err := s.WithIndex(NewIndex([]Value{Str("a"), Str("b")}))
		require.NoError(t, err)
		assert.True(t, reindexed.Index().Label(0).Equals(Str("a")))
	})
}

func TestSeriesPredicates(t *testing.T) {
	t.Parallel()

	t.Run("null detection", func(t *testing.T) {
		t.Parallel()

		assert.False(t, intSeries("x", 1, 2).HasNull())
		assert.True(t, NewSeries("x", []Value{Int(1), Null()}).HasNull())
	})

	t.Run("uniqueness treats nulls as equal", func(t *testing.T) {
		t.Parallel()

		assert.True(t, intSeries("x", 1, 2, 3).IsUnique())
		assert.False(t, intSeries("x", 1, 1).IsUnique())
		assert.False(t, NewSeries("x", []Value{Null(), Null()}).IsUnique())
	})

	t.Run("sign predicates", func(t *testing.T) {
		t.Parallel()

		assert.True(t, intSeries("x", 0, 1).AllNonNegative())
		assert.False(t, intSeries("x", -1, 1).AllNonNegative())
		assert.True(t, intSeries("x", 1, 2).AllPositive())
		assert.False(t, intSeries("x", 0, 2).AllPositive())
	})

	t.Run("dtype conformance ignores nulls", func(t *testing.T) {
		t.Parallel()

		s := NewSeries("x", []Value{Int(1), Null()})

		assert.True(t, s.ConformsTo(DTypeInt))
		assert.False(t, s.ConformsTo(DTypeString))
	})
}

func TestSeriesTransforms(t *testing.T) {
	t.Parallel()

	t.Run("fill null leaves original untouched", func(t *testing.T) {
		t.Parallel()

		s := NewSeries("x", []Value{Int(1), Null()})
		before := s.Fingerprint()

		filled := s.FillNull(Int(0))

		assert.False(t, filled.HasNull())
		assert.True(t, filled.Value(1).Equals(Int(0)))
		assert.Equal(t, before, s.Fingerprint())
	})

	t.Run("drop duplicates keeps first and its label", func(t *testing.T) {
		t.Parallel()

		s := intSeries("x", 5, 5, 7)
		deduped := s.DropDuplicates()

		require.Equal(t, 2, deduped.Len())
		assert.True(t, deduped.Value(0).Equals(Int(5)))
		assert.True(t, deduped.Value(1).Equals(Int(7)))
		// Positions 0 and 2 survive, so their original labels do too.
		assert.True(t, deduped.Index().Label(1).Equals(Int(2)))
	})

	t.Run("map transforms every cell", func(t *testing.T) {
		t.Parallel()

		doubled := intSeries("x", 1, 2).Map(func(v Value) Value {
			i, _ := v.AsInt()

			return Int(i * 2)
		})

		assert.True(t, doubled.Value(0).Equals(Int(2)))
		assert.True(t, doubled.Value(1).Equals(Int(4)))
	})

	t.Run("cast converts whole column or fails", func(t *testing.T) {
		t.Parallel()

		s := NewSeries("x", []Value{Str("1"), Str("2")})

		cast, err := s.Cast(DTypeInt)
		require.NoError(t, err)
		assert.Equal(t, DTypeInt, cast.DType())

		_, err = NewSeries("x", []Value{Str("one")}).Cast(DTypeInt)
		require.Error(t, err)
	})
}
