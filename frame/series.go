package frame

import (
	"fmt"
	"slices"
)

// Series is a named, ordered sequence of cells aligned with an Index.
// The index always has exactly as many labels as the series has values.
type Series struct {
	name   string
	values []Value
	index  Index
}

// NewSeries builds a series over the default range index 0..len(values)-1.
func NewSeries(name string, values []Value) Series {
	return Series{
		name:   name,
		values: slices.Clone(values),
		index:  RangeIndex(len(values)),
	}
}

// WithIndex returns a copy of the series aligned with the given index.
// The index must have exactly one label per value.
func (s Series) WithIndex(ix Index) (Series, error) {
	if ix.Len() != len(s.values) {
		return Series{}, fmt.Errorf( //nolint:err113
			"index length %d does not match series length %d", ix.Len(), len(s.values))
	}

	return Series{name: s.name, values: s.values, index: ix}, nil
}

// WithName returns a copy of the series under a new name.
func (s Series) WithName(name string) Series {
	return Series{name: name, values: s.values, index: s.index}
}

// Len returns the number of values.
func (s Series) Len() int {
	return len(s.values)
}

// Name returns the series name.
func (s Series) Name() string {
	return s.name
}

// Value returns the cell at position i.
func (s Series) Value(i int) Value {
	return s.values[i]
}

// Values returns a copy of the value sequence.
func (s Series) Values() []Value {
	return slices.Clone(s.values)
}

// Index returns the series index.
func (s Series) Index() Index {
	return s.index
}

// DType infers the column dtype from the current cells.
func (s Series) DType() DType {
	return InferDType(s.values)
}

// HasNull reports whether any cell is missing.
func (s Series) HasNull() bool {
	for _, v := range s.values {
		if v.IsNull() {
			return true
		}
	}

	return false
}

// IsUnique reports whether no value repeats. Nulls count as equal to each
// other, so two missing cells make the series non-unique.
func (s Series) IsUnique() bool {
	seen := make(map[Value]struct{}, len(s.values))

	for _, v := range s.values {
		key := v.canonical()

		if _, ok := seen[key]; ok {
			return false
		}

		seen[key] = struct{}{}
	}

	return true
}

// AllNonNegative reports whether every value is numeric and >= 0.
// Nulls and non-numeric values fail the predicate.
func (s Series) AllNonNegative() bool {
	return allAtLeast(s.values, 0)
}

// AllPositive reports whether every value is numeric and > 0.
// Nulls and non-numeric values fail the predicate.
func (s Series) AllPositive() bool {
	return allGreaterThan(s.values, 0)
}

// ConformsTo reports whether every cell already satisfies the dtype.
// Missing cells satisfy any dtype, since they carry no type of their own.
func (s Series) ConformsTo(t DType) bool {
	for _, v := range s.values {
		if !t.matches(v) {
			return false
		}
	}

	return true
}

// FillNull returns a copy of the series with missing cells replaced by fill.
func (s Series) FillNull(fill Value) Series {
	return s.Map(func(v Value) Value {
		if v.IsNull() {
			return fill
		}

		return v
	})
}

// Map returns a copy of the series with every cell transformed by f.
// The index is unchanged.
func (s Series) Map(f func(Value) Value) Series {
	values := make([]Value, len(s.values))
	for i, v := range s.values {
		values[i] = f(v)
	}

	return Series{name: s.name, values: values, index: s.index}
}

// DropDuplicates returns a copy keeping only the first occurrence of each
// value, dropping the corresponding index labels alongside.
func (s Series) DropDuplicates() Series {
	seen := make(map[Value]struct{}, len(s.values))
	positions := make([]int, 0, len(s.values))

	for i, v := range s.values {
		key := v.canonical()

		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}

		positions = append(positions, i)
	}

	return s.Select(positions)
}

// Select returns a copy made of the cells (and index labels) at the given positions.
func (s Series) Select(positions []int) Series {
	values := make([]Value, 0, len(positions))
	for _, p := range positions {
		values = append(values, s.values[p])
	}

	return Series{name: s.name, values: values, index: s.index.Select(positions)}
}

// Cast converts every cell to the target dtype. Fails without producing a
// series when any cell cannot be converted.
func (s Series) Cast(t DType) (Series, error) {
	values := make([]Value, len(s.values))

	for i, v := range s.values {
		cast, err := Cast(v, t)
		if err != nil {
			return Series{}, fmt.Errorf("column %q position %d: %w", s.name, i, err)
		}

		values[i] = cast
	}

	return Series{name: s.name, values: values, index: s.index}, nil
}

// Equals reports whether two series have the same name, equal values in
// order, and equal indexes.
func (s Series) Equals(other Series) bool {
	if s.name != other.name {
		return false
	}

	if !slices.EqualFunc(s.values, other.values, Value.Equals) {
		return false
	}

	return s.index.Equals(other.index)
}

// String renders a short description used in failure messages.
func (s Series) String() string {
	return fmt.Sprintf("series[name=%s n=%d]", s.name, len(s.values))
}
