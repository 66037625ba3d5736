package contract

import (
	"github.com/amp-labs/amp-tabular/frame"
)

// Coercion policy values. The exact fill and clamp cells are deliberate,
// documented constants rather than inferred statistics; callers who want a
// different policy use the WithFill constructor variants.
var (
	// DefaultNullFill replaces missing cells when NotNaN contracts coerce.
	DefaultNullFill = frame.Int(0) //nolint:gochecknoglobals

	// DefaultPositiveClamp replaces non-positive cells when a PositiveSeries
	// contract coerces a series that contains no positive value to derive a
	// clamp from.
	DefaultPositiveClamp = frame.Int(1) //nolint:gochecknoglobals
)

// NonNegativeSeries requires every value to be numeric and >= 0.
// Coercion clamps negative values to zero, preserving the cell's kind.
type NonNegativeSeries struct {
	settings
}

var _ Contract[frame.Series] = (*NonNegativeSeries)(nil)

// NewNonNegativeSeries builds a NonNegativeSeries contract.
func NewNonNegativeSeries(opts ...Option) *NonNegativeSeries {
	return &NonNegativeSeries{settings: newSettings(opts)}
}

func (c *NonNegativeSeries) Name() string {
	return "non_negative_series"
}

func (c *NonNegativeSeries) Holds(s frame.Series) bool {
	return s.AllNonNegative()
}

func (c *NonNegativeSeries) Coerce(s frame.Series) (frame.Series, error) {
	return s.Map(func(v frame.Value) frame.Value {
		f, ok := v.AsFloat()
		if !ok || f >= 0 {
			return v
		}

		if v.Kind() == frame.KindFloat {
			return frame.Float(0)
		}

		return frame.Int(0)
	}), nil
}

// NotNaNSeries requires the series to contain no missing cells.
// Coercion fills missing cells with a fixed value (DefaultNullFill unless
// overridden via NewNotNaNSeriesWithFill).
type NotNaNSeries struct {
	settings

	fill frame.Value
}

var _ Contract[frame.Series] = (*NotNaNSeries)(nil)

// NewNotNaNSeries builds a NotNaNSeries contract using DefaultNullFill.
func NewNotNaNSeries(opts ...Option) *NotNaNSeries {
	return NewNotNaNSeriesWithFill(DefaultNullFill, opts...)
}

// NewNotNaNSeriesWithFill builds a NotNaNSeries contract with an explicit
// fill value for coercion.
func NewNotNaNSeriesWithFill(fill frame.Value, opts ...Option) *NotNaNSeries {
	return &NotNaNSeries{
		settings: newSettings(opts),
		fill:     fill,
	}
}

func (c *NotNaNSeries) Name() string {
	return "not_nan_series"
}

func (c *NotNaNSeries) Holds(s frame.Series) bool {
	return !s.HasNull()
}

func (c *NotNaNSeries) Coerce(s frame.Series) (frame.Series, error) {
	return s.FillNull(c.fill), nil
}

// UniqueValuesSeries requires that no value repeats.
// Coercion drops rows holding a value already seen, keeping first occurrences
// along with their index labels.
type UniqueValuesSeries struct {
	settings
}

var _ Contract[frame.Series] = (*UniqueValuesSeries)(nil)

// NewUniqueValuesSeries builds a UniqueValuesSeries contract.
func NewUniqueValuesSeries(opts ...Option) *UniqueValuesSeries {
	return &UniqueValuesSeries{settings: newSettings(opts)}
}

func (c *UniqueValuesSeries) Name() string {
	return "unique_values_series"
}

func (c *UniqueValuesSeries) Holds(s frame.Series) bool {
	return s.IsUnique()
}

func (c *UniqueValuesSeries) Coerce(s frame.Series) (frame.Series, error) {
	return s.DropDuplicates(), nil
}

// PositiveSeries requires every value to be numeric and > 0.
// Coercion clamps non-positive values to the smallest positive value already
// present in the series, falling back to the configured clamp
// (DefaultPositiveClamp unless overridden) when there is none.
type PositiveSeries struct {
	settings

	clamp frame.Value
}

var _ Contract[frame.Series] = (*PositiveSeries)(nil)

// NewPositiveSeries builds a PositiveSeries contract using DefaultPositiveClamp.
func NewPositiveSeries(opts ...Option) *PositiveSeries {
	return NewPositiveSeriesWithClamp(DefaultPositiveClamp, opts...)
}

// NewPositiveSeriesWithClamp builds a PositiveSeries contract with an
// explicit fallback clamp value for coercion.
func NewPositiveSeriesWithClamp(clamp frame.Value, opts ...Option) *PositiveSeries {
	return &PositiveSeries{
		settings: newSettings(opts),
		clamp:    clamp,
	}
}

func (c *PositiveSeries) Name() string {
	return "positive_series"
}

func (c *PositiveSeries) Holds(s frame.Series) bool {
	return s.AllPositive()
}

func (c *PositiveSeries) Coerce(s frame.Series) (frame.Series, error) {
	clamp := c.clamp
	if smallest, ok := smallestPositive(s); ok {
		clamp = smallest
	}

	return s.Map(func(v frame.Value) frame.Value {
		f, ok := v.AsFloat()
		if !ok || f > 0 {
			return v
		}

		return clamp
	}), nil
}

// smallestPositive returns the smallest strictly positive value in the
// series, or false when there is none.
func smallestPositive(s frame.Series) (frame.Value, bool) {
	var (
		best  frame.Value
		found bool
	)

	for _, v := range s.Values() {
		f, ok := v.AsFloat()
		if !ok || f <= 0 {
			continue
		}

		if !found || v.Less(best) {
			best = v
			found = true
		}
	}

	return best, found
}
