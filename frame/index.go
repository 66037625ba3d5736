package frame

import (
	"fmt"
	"slices"
	"strings"

	"facette.io/natsort"
)

// Direction selects the ordering an index is checked or sorted against.
type Direction uint8

const (
	Ascending Direction = iota + 1
	Descending
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "unknown"
	}
}

// ParseDirection maps a direction name back to its Direction.
func ParseDirection(name string) (Direction, error) {
	switch name {
	case "ascending", "asc":
		return Ascending, nil
	case "descending", "desc":
		return Descending, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", name) //nolint:err113
	}
}

// Index is an ordered sequence of labels, optionally named. A single name is
// the common case; multiple names model hierarchical label levels.
type Index struct {
	names  []string
	labels []Value
}

// NewIndex builds an index from the given labels. Optional names label the
// index itself (not its elements).
func NewIndex(labels []Value, names ...string) Index {
	return Index{
		names:  slices.Clone(names),
		labels: slices.Clone(labels),
	}
}

// RangeIndex builds the default unnamed index 0..n-1.
func RangeIndex(n int) Index {
	labels := make([]Value, n)
	for i := range labels {
		labels[i] = Int(int64(i))
	}

	return Index{labels: labels}
}

// Len returns the number of labels.
func (ix Index) Len() int {
	return len(ix.labels)
}

// Label returns the label at position i.
func (ix Index) Label(i int) Value {
	return ix.labels[i]
}

// Labels returns a copy of the label sequence.
func (ix Index) Labels() []Value {
	return slices.Clone(ix.labels)
}

// Names returns a copy of the index names. Empty when the index is unnamed.
func (ix Index) Names() []string {
	return slices.Clone(ix.names)
}

// Name returns the first index name, or an empty string when unnamed.
func (ix Index) Name() string {
	if len(ix.names) == 0 {
		return ""
	}

	return ix.names[0]
}

// WithNames returns a copy of the index carrying the given names.
func (ix Index) WithNames(names ...string) Index {
	return Index{
		names:  slices.Clone(names),
		labels: ix.labels,
	}
}

// Duplicated flags each label that already appeared earlier in the sequence.
// The first occurrence is never flagged.
func (ix Index) Duplicated() []bool {
	seen := make(map[Value]struct{}, len(ix.labels))
	dup := make([]bool, len(ix.labels))

	for i, label := range ix.labels {
		key := label.canonical()

		if _, ok := seen[key]; ok {
			dup[i] = true
		} else {
			seen[key] = struct{}{}
		}
	}

	return dup
}

// IsUnique reports whether no label repeats.
func (ix Index) IsUnique() bool {
	return !slices.Contains(ix.Duplicated(), true)
}

// IsMonotonic reports whether labels are non-decreasing (Ascending) or
// non-increasing (Descending). All-string indexes are checked in natural
// order and everything else under the total order of Compare, mirroring
// the ordering Sort produces.
func (ix Index) IsMonotonic(dir Direction) bool {
	cmp := Compare

	if _, ok := asStrings(ix.labels); ok {
		cmp = compareNaturalValues
	}

	for i := 1; i < len(ix.labels); i++ {
		c := cmp(ix.labels[i-1], ix.labels[i])

		if dir == Ascending && c > 0 {
			return false
		}

		if dir == Descending && c < 0 {
			return false
		}
	}

	return true
}

// compareNaturalValues orders two string values naturally, so "a2" precedes
// "a10". Both values must be strings.
func compareNaturalValues(a, b Value) int {
	sa, _ := a.AsString()
	sb, _ := b.AsString()

	switch {
	case sa == sb:
		return 0
	case natsort.Compare(sa, sb):
		return -1
	default:
		return 1
	}
}

// AllNonNegative reports whether every label is numeric and >= 0.
// Nulls and non-numeric labels fail the predicate.
func (ix Index) AllNonNegative() bool {
	return allAtLeast(ix.labels, 0)
}

// AllPositive reports whether every label is numeric and > 0.
// Nulls and non-numeric labels fail the predicate.
func (ix Index) AllPositive() bool {
	return allGreaterThan(ix.labels, 0)
}

// DropDuplicates returns a new index keeping only the first occurrence of
// each label, preserving relative order.
func (ix Index) DropDuplicates() Index {
	dup := ix.Duplicated()
	kept := make([]Value, 0, len(ix.labels))

	for i, label := range ix.labels {
		if !dup[i] {
			kept = append(kept, label)
		}
	}

	return Index{names: ix.names, labels: kept}
}

// Sort returns a new index with labels ordered in the given direction.
// All-string indexes sort in natural order (so "row2" precedes "row10");
// everything else follows the total order of Compare. The sort is stable.
func (ix Index) Sort(dir Direction) Index {
	sorted := slices.Clone(ix.labels)

	if strs, ok := asStrings(sorted); ok {
		natsort.Sort(strs)

		for i, s := range strs {
			sorted[i] = Str(s)
		}
	} else {
		slices.SortStableFunc(sorted, Compare)
	}

	if dir == Descending {
		slices.Reverse(sorted)
	}

	return Index{names: ix.names, labels: sorted}
}

// Where returns the positions of labels satisfying pred, in order.
func (ix Index) Where(pred func(Value) bool) []int {
	var positions []int

	for i, label := range ix.labels {
		if pred(label) {
			positions = append(positions, i)
		}
	}

	return positions
}

// Select returns a new index made of the labels at the given positions.
func (ix Index) Select(positions []int) Index {
	labels := make([]Value, 0, len(positions))
	for _, p := range positions {
		labels = append(labels, ix.labels[p])
	}

	return Index{names: ix.names, labels: labels}
}

// Equals reports whether two indexes carry the same names and equal labels
// in the same order.
func (ix Index) Equals(other Index) bool {
	if !slices.Equal(ix.names, other.names) {
		return false
	}

	return slices.EqualFunc(ix.labels, other.labels, Value.Equals)
}

// String renders a short description used in failure messages.
func (ix Index) String() string {
	if len(ix.names) == 0 {
		return fmt.Sprintf("index[n=%d]", len(ix.labels))
	}

	return fmt.Sprintf("index[n=%d name=%s]", len(ix.labels), strings.Join(ix.names, ","))
}

// asStrings extracts the string payloads when every value is a string.
func asStrings(values []Value) ([]string, bool) {
	strs := make([]string, len(values))

	for i, v := range values {
		s, ok := v.AsString()
		if !ok {
			return nil, false
		}

		strs[i] = s
	}

	return strs, len(values) > 0
}

// allAtLeast reports whether every value is numeric and >= bound.
func allAtLeast(values []Value, bound float64) bool {
	for _, v := range values {
		f, ok := v.AsFloat()
		if !ok || f < bound {
			return false
		}
	}

	return true
}

// allGreaterThan reports whether every value is numeric and > bound.
func allGreaterThan(values []Value, bound float64) bool {
	for _, v := range values {
		f, ok := v.AsFloat()
		if !ok || f <= bound {
			return false
		}
	}

	return true
}
