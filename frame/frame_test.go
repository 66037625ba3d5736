package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFrame(t *testing.T) Frame {
	t.Helper()

	f, err := NewFrame(
		intSeries("a", 1, 2, 3),
		NewSeries("b", []Value{Str("x"), Str("y"), Str("z")}),
	)
	require.NoError(t, err)

	return f
}

func TestNewFrame(t *testing.T) {
	t.Parallel()

	t.Run("columns keep declaration order", func(t *testing.T) {
		t.Parallel()

		f := testFrame(t)

		assert.Equal(t, []string{"a", "b"}, f.Columns())
		assert.Equal(t, 3, f.NumRows())
		assert.Equal(t, 2, f.NumColumns())
	})

	t.Run("rejects mismatched column lengths", func(t *testing.T) {
		t.Parallel()

		_, err := NewFrame(intSeries("a", 1, 2), intSeries("b", 1))
		require.Error(t, err)
	})

	t.Run("rejects duplicate column names", func(t *testing.T) {
		t.Parallel()

		_, err := NewFrame(intSeries("a", 1), intSeries("a", 2))
		require.Error(t, err)
	})

	t.Run("columns share the frame index", func(t *testing.T) {
		t.Parallel()

		f := testFrame(t)

		col, ok := f.Column("b")
		require.True(t, ok)
		assert.True(t, col.Index().Equals(f.Index()))
	})
}

func TestFrameWithColumn(t *testing.T) {
	t.Parallel()

	t.Run("appends a new column after existing ones", func(t *testing.T) {
		t.Parallel()

		f, err := testFrame(t).WithColumn(intSeries("c", 7, 8, 9))
		require.NoError(t, err)

		assert.Equal(t, []string{"a", "b", "c"}, f.Columns())
	})

	t.Run("replaces an existing column in place", func(t *testing.T) {
		t.Parallel()

		f, err := testFrame(t).WithColumn(intSeries("a", 9, 9, 9))
		require.NoError(t, err)

		assert.Equal(t, []string{"a", "b"}, f.Columns())

		col, _ := f.Column("a")
		assert.True(t, col.Value(0).Equals(Int(9)))
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		t.Parallel()

		_, err := testFrame(t).WithColumn(intSeries("c", 1))
		require.Error(t, err)
	})

	t.Run("does not mutate the receiver", func(t *testing.T) {
		t.Parallel()

		f := testFrame(t)
		before := f.Fingerprint()

		_, err := f.WithColumn(intSeries("c", 7, 8, 9))
		require.NoError(t, err)

		assert.Equal(t, before, f.Fingerprint())
	})
}

func TestFrameRowsAndIndex(t *testing.T) {
	t.Parallel()

	t.Run("select rows slices every column and the index", func(t *testing.T) {
		t.Parallel()

		f := testFrame(t).SelectRows([]int{0, 2})

		require.Equal(t, 2, f.NumRows())

		col, _ := f.Column("a")
		assert.True(t, col.Value(1).Equals(Int(3)))
		assert.True(t, f.Index().Label(1).Equals(Int(2)))
	})

	t.Run("with index relabels rows", func(t *testing.T) {
		t.Parallel()

		ix := NewIndex([]Value{Str("r1"), Str("r2"), Str("r3")}, "row")

		f, err := testFrame(t).WithIndex(ix)
		require.NoError(t, err)
		assert.True(t, f.Index().Equals(ix))

		col, _ := f.Column("a")
		assert.True(t, col.Index().Equals(ix))
	})

	t.Run("with index rejects wrong length", func(t *testing.T) {
		t.Parallel()

		_, err := testFrame(t).WithIndex(RangeIndex(2))
		require.Error(t, err)
	})
}

func TestFrameDTypes(t *testing.T) {
	t.Parallel()

	dtypes := testFrame(t).DTypes()

	assert.Equal(t, DTypeInt, dtypes["a"])
	assert.Equal(t, DTypeString, dtypes["b"])
}

func TestFrameEquals(t *testing.T) {
	t.Parallel()

	t.Run("equal content compares equal", func(t *testing.T) {
		t.Parallel()

		assert.True(t, testFrame(t).Equals(testFrame(t)))
	})

	t.Run("column order matters", func(t *testing.T) {
		t.Parallel()

		swapped, err := NewFrame(
			NewSeries("b", []Value{Str("x"), Str("y"), Str("z")}),
			intSeries("a", 1, 2, 3),
		)
		require.NoError(t, err)

		assert.False(t, testFrame(t).Equals(swapped))
	})
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	t.Run("equal content yields equal fingerprints", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, testFrame(t).Fingerprint(), testFrame(t).Fingerprint())
	})

	t.Run("content changes the fingerprint", func(t *testing.T) {
		t.Parallel()

		changed, err := testFrame(t).WithColumn(intSeries("a", 1, 2, 4))
		require.NoError(t, err)

		assert.NotEqual(t, testFrame(t).Fingerprint(), changed.Fingerprint())
	})

	t.Run("kind tag distinguishes lookalike cells", func(t *testing.T) {
		t.Parallel()

		a := NewIndex([]Value{Int(0)})
		b := NewIndex([]Value{Bool(false)})

		assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	})

	t.Run("numerically equal int and float collide on purpose", func(t *testing.T) {
		t.Parallel()

		a := NewIndex([]Value{Int(1)})
		b := NewIndex([]Value{Float(1)})

		assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	})
}
