package contract

import (
	"fmt"
	"maps"
	"slices"

	"github.com/amp-labs/amp-tabular/frame"
)

// HasColumns requires every named column to be present in the frame.
// Coercion appends missing columns filled with the null placeholder, after
// the existing columns, in required order.
type HasColumns struct {
	settings

	columns []string
}

var _ Contract[frame.Frame] = (*HasColumns)(nil)

// NewHasColumns builds a HasColumns contract for the required column names.
func NewHasColumns(columns []string, opts ...Option) *HasColumns {
	return &HasColumns{
		settings: newSettings(opts),
		columns:  slices.Clone(columns),
	}
}

func (c *HasColumns) Name() string {
	return "has_columns"
}

func (c *HasColumns) Holds(f frame.Frame) bool {
	for _, name := range c.columns {
		if !f.HasColumn(name) {
			return false
		}
	}

	return true
}

func (c *HasColumns) Coerce(f frame.Frame) (frame.Frame, error) {
	for _, name := range c.columns {
		if f.HasColumn(name) {
			continue
		}

		nulls := make([]frame.Value, f.NumRows())
		for i := range nulls {
			nulls[i] = frame.Null()
		}

		withCol, err := f.WithColumn(frame.NewSeries(name, nulls))
		if err != nil {
			return frame.Frame{}, err
		}

		f = withCol
	}

	return f, nil
}

// HasDtypes requires the named columns to be present and every cell in them
// to already satisfy the required dtype. Coercion attempts a per-column cast;
// columns that cannot be cast are left unchanged, so the recheck still fails.
type HasDtypes struct {
	settings

	dtypes map[string]frame.DType
}

var _ Contract[frame.Frame] = (*HasDtypes)(nil)

// NewHasDtypes builds a HasDtypes contract mapping column names to required dtypes.
func NewHasDtypes(dtypes map[string]frame.DType, opts ...Option) *HasDtypes {
	return &HasDtypes{
		settings: newSettings(opts),
		dtypes:   maps.Clone(dtypes),
	}
}

func (c *HasDtypes) Name() string {
	return "has_dtypes"
}

func (c *HasDtypes) Holds(f frame.Frame) bool {
	for name, dtype := range c.dtypes {
		col, ok := f.Column(name)
		if !ok || !col.ConformsTo(dtype) {
			return false
		}
	}

	return true
}

func (c *HasDtypes) Coerce(f frame.Frame) (frame.Frame, error) {
	for name, dtype := range c.dtypes {
		col, ok := f.Column(name)
		if !ok {
			// A missing column is not castable; HasColumns is the
			// contract for presence.
			continue
		}

		cast, err := col.Cast(dtype)
		if err != nil {
			continue
		}

		withCol, err := f.WithColumn(cast)
		if err != nil {
			return frame.Frame{}, err
		}

		f = withCol
	}

	return f, nil
}

// NotNaNFrame requires the named columns (or every column when none are
// named) to contain no missing cells. A named column absent from the frame
// fails the predicate. Coercion fills missing cells per column with the same
// policy as NotNaNSeries.
type NotNaNFrame struct {
	settings

	columns []string
	fill    frame.Value
}

var _ Contract[frame.Frame] = (*NotNaNFrame)(nil)

// NewNotNaNFrame builds a NotNaNFrame contract over the named columns.
// Pass no columns to cover the whole frame. Coercion fills with DefaultNullFill.
func NewNotNaNFrame(columns []string, opts ...Option) *NotNaNFrame {
	return NewNotNaNFrameWithFill(columns, DefaultNullFill, opts...)
}

// NewNotNaNFrameWithFill builds a NotNaNFrame contract with an explicit fill
// value for coercion.
func NewNotNaNFrameWithFill(columns []string, fill frame.Value, opts ...Option) *NotNaNFrame {
	return &NotNaNFrame{
		settings: newSettings(opts),
		columns:  slices.Clone(columns),
		fill:     fill,
	}
}

func (c *NotNaNFrame) Name() string {
	return "not_nan_frame"
}

// targets resolves the column set under test: the configured names, or all
// columns when none were configured.
func (c *NotNaNFrame) targets(f frame.Frame) []string {
	if len(c.columns) == 0 {
		return f.Columns()
	}

	return c.columns
}

func (c *NotNaNFrame) Holds(f frame.Frame) bool {
	for _, name := range c.targets(f) {
		col, ok := f.Column(name)
		if !ok || col.HasNull() {
			return false
		}
	}

	return true
}

func (c *NotNaNFrame) Coerce(f frame.Frame) (frame.Frame, error) {
	for _, name := range c.targets(f) {
		col, ok := f.Column(name)
		if !ok {
			return frame.Frame{}, fmt.Errorf("column %q not found", name) //nolint:err113
		}

		withCol, err := f.WithColumn(col.FillNull(c.fill))
		if err != nil {
			return frame.Frame{}, err
		}

		f = withCol
	}

	return f, nil
}

// UniqueIndexFrame requires the frame's row index to have unique labels.
// Coercion drops every row whose label already appeared, keeping the first.
type UniqueIndexFrame struct {
	settings
}

var _ Contract[frame.Frame] = (*UniqueIndexFrame)(nil)

// NewUniqueIndexFrame builds a UniqueIndexFrame contract.
func NewUniqueIndexFrame(opts ...Option) *UniqueIndexFrame {
	return &UniqueIndexFrame{settings: newSettings(opts)}
}

func (c *UniqueIndexFrame) Name() string {
	return "unique_index_frame"
}

func (c *UniqueIndexFrame) Holds(f frame.Frame) bool {
	return f.Index().IsUnique()
}

func (c *UniqueIndexFrame) Coerce(f frame.Frame) (frame.Frame, error) {
	dup := f.Index().Duplicated()

	kept := make([]int, 0, len(dup))

	for i, isDup := range dup {
		if !isDup {
			kept = append(kept, i)
		}
	}

	return f.SelectRows(kept), nil
}
