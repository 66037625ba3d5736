package contract

import (
	"fmt"
	"slices"

	"github.com/amp-labs/amp-tabular/errors"
	"github.com/amp-labs/amp-tabular/frame"
)

// UniqueIndex requires that no index label repeats.
// Coercion drops duplicate labels, keeping the first occurrence and
// preserving relative order.
type UniqueIndex struct {
	settings
}

var _ Contract[frame.Index] = (*UniqueIndex)(nil)

// NewUniqueIndex builds a UniqueIndex contract.
func NewUniqueIndex(opts ...Option) *UniqueIndex {
	return &UniqueIndex{settings: newSettings(opts)}
}

func (c *UniqueIndex) Name() string {
	return "unique_index"
}

func (c *UniqueIndex) Holds(ix frame.Index) bool {
	return ix.IsUnique()
}

func (c *UniqueIndex) Coerce(ix frame.Index) (frame.Index, error) {
	return ix.DropDuplicates(), nil
}

// MonotonicIndex requires index labels to be non-decreasing (Ascending) or
// non-increasing (Descending). Coercion sorts the labels in the configured
// direction.
type MonotonicIndex struct {
	settings

	direction frame.Direction
}

var _ Contract[frame.Index] = (*MonotonicIndex)(nil)

// NewMonotonicIndex builds a MonotonicIndex contract for the given direction.
// An unknown direction is a configuration error.
func NewMonotonicIndex(direction frame.Direction, opts ...Option) (*MonotonicIndex, error) {
	if direction != frame.Ascending && direction != frame.Descending {
		return nil, fmt.Errorf("%w: unknown monotonic direction %d",
			errors.ErrConfiguration, direction)
	}

	return &MonotonicIndex{
		settings:  newSettings(opts),
		direction: direction,
	}, nil
}

func (c *MonotonicIndex) Name() string {
	return "monotonic_index"
}

func (c *MonotonicIndex) Holds(ix frame.Index) bool {
	return ix.IsMonotonic(c.direction)
}

func (c *MonotonicIndex) Coerce(ix frame.Index) (frame.Index, error) {
	return ix.Sort(c.direction), nil
}

// NonNegativeIndex requires every index label to be numeric and >= 0.
// Coercion drops negative labels; nulls and non-numeric labels are kept, so
// the recheck fails when the index cannot be repaired by dropping.
type NonNegativeIndex struct {
	settings
}

var _ Contract[frame.Index] = (*NonNegativeIndex)(nil)

// NewNonNegativeIndex builds a NonNegativeIndex contract.
func NewNonNegativeIndex(opts ...Option) *NonNegativeIndex {
	return &NonNegativeIndex{settings: newSettings(opts)}
}

func (c *NonNegativeIndex) Name() string {
	return "non_negative_index"
}

func (c *NonNegativeIndex) Holds(ix frame.Index) bool {
	return ix.AllNonNegative()
}

func (c *NonNegativeIndex) Coerce(ix frame.Index) (frame.Index, error) {
	kept := ix.Where(func(v frame.Value) bool {
		f, ok := v.AsFloat()

		return !ok || f >= 0
	})

	return ix.Select(kept), nil
}

// PositiveIndex requires every index label to be numeric and > 0.
// Coercion drops labels <= 0, with the same caveat as NonNegativeIndex.
type PositiveIndex struct {
	settings
}

var _ Contract[frame.Index] = (*PositiveIndex)(nil)

// NewPositiveIndex builds a PositiveIndex contract.
func NewPositiveIndex(opts ...Option) *PositiveIndex {
	return &PositiveIndex{settings: newSettings(opts)}
}

func (c *PositiveIndex) Name() string {
	return "positive_index"
}

func (c *PositiveIndex) Holds(ix frame.Index) bool {
	return ix.AllPositive()
}

func (c *PositiveIndex) Coerce(ix frame.Index) (frame.Index, error) {
	kept := ix.Where(func(v frame.Value) bool {
		f, ok := v.AsFloat()

		return !ok || f > 0
	})

	return ix.Select(kept), nil
}

// IndexNames requires the index names to match a required sequence exactly.
// Coercion renames the index when the name count lines up (an unnamed index
// accepts any count); otherwise coercion cannot help and Apply fails.
type IndexNames struct {
	settings

	required []string
}

var _ Contract[frame.Index] = (*IndexNames)(nil)

// NewIndexNames builds an IndexNames contract for the required names, in order.
func NewIndexNames(names []string, opts ...Option) *IndexNames {
	return &IndexNames{
		settings: newSettings(opts),
		required: slices.Clone(names),
	}
}

func (c *IndexNames) Name() string {
	return "index_names"
}

func (c *IndexNames) Holds(ix frame.Index) bool {
	return slices.Equal(ix.Names(), c.required)
}

func (c *IndexNames) Coerce(ix frame.Index) (frame.Index, error) {
	existing := ix.Names()

	if len(existing) != 0 && len(existing) != len(c.required) {
		return frame.Index{}, fmt.Errorf( //nolint:err113
			"cannot rename %d index name(s) to %d", len(existing), len(c.required))
	}

	return ix.WithNames(c.required...), nil
}
