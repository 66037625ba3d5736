package frame

import (
	"fmt"
	"slices"
	"strings"
)

// Frame is an ordered collection of named columns sharing one row index.
// Column order is significant and preserved by every transform.
type Frame struct {
	colNames []string
	cols     map[string]Series
	index    Index
}

// NewFrame builds a frame from the given columns over the default range
// index. All columns must have the same length and distinct names; each
// column's own index is replaced by the frame's row index.
func NewFrame(columns ...Series) (Frame, error) {
	n := 0
	if len(columns) > 0 {
		n = columns[0].Len()
	}

	f := Frame{
		colNames: make([]string, 0, len(columns)),
		cols:     make(map[string]Series, len(columns)),
		index:    RangeIndex(n),
	}

	for _, col := range columns {
		if col.Len() != n {
			return Frame{}, fmt.Errorf( //nolint:err113
				"column %q has length %d, want %d", col.Name(), col.Len(), n)
		}

		if _, ok := f.cols[col.Name()]; ok {
			return Frame{}, fmt.Errorf("duplicate column name %q", col.Name()) //nolint:err113
		}

		aligned, err := col.WithIndex(f.index)
		if err != nil {
			return Frame{}, err
		}

		f.colNames = append(f.colNames, col.Name())
		f.cols[col.Name()] = aligned
	}

	return f, nil
}

// WithIndex returns a copy of the frame re-labeled with the given row index.
// Column data is untouched; the index must have one label per row.
func (f Frame) WithIndex(ix Index) (Frame, error) {
	if ix.Len() != f.NumRows() {
		return Frame{}, fmt.Errorf( //nolint:err113
			"index length %d does not match row count %d", ix.Len(), f.NumRows())
	}

	out := Frame{
		colNames: slices.Clone(f.colNames),
		cols:     make(map[string]Series, len(f.cols)),
		index:    ix,
	}

	for name, col := range f.cols {
		aligned, err := col.WithIndex(ix)
		if err != nil {
			return Frame{}, err
		}

		out.cols[name] = aligned
	}

	return out, nil
}

// NumRows returns the number of rows.
func (f Frame) NumRows() int {
	return f.index.Len()
}

// NumColumns returns the number of columns.
func (f Frame) NumColumns() int {
	return len(f.colNames)
}

// Columns returns the column names in order.
func (f Frame) Columns() []string {
	return slices.Clone(f.colNames)
}

// HasColumn reports whether a column with the given name exists.
func (f Frame) HasColumn(name string) bool {
	_, ok := f.cols[name]

	return ok
}

// Column returns the named column and whether it exists.
func (f Frame) Column(name string) (Series, bool) {
	col, ok := f.cols[name]

	return col, ok
}

// Index returns the row index.
func (f Frame) Index() Index {
	return f.index
}

// WithColumn returns a copy of the frame carrying the given column. An
// existing column of the same name is replaced in place; a new name is
// appended after the current columns. The column must match the row count.
func (f Frame) WithColumn(col Series) (Frame, error) {
	if col.Len() != f.NumRows() {
		return Frame{}, fmt.Errorf( //nolint:err113
			"column %q has length %d, want %d", col.Name(), col.Len(), f.NumRows())
	}

	aligned, err := col.WithIndex(f.index)
	if err != nil {
		return Frame{}, err
	}

	out := Frame{
		colNames: slices.Clone(f.colNames),
		cols:     make(map[string]Series, len(f.cols)+1),
		index:    f.index,
	}

	for name, existing := range f.cols {
		out.cols[name] = existing
	}

	if _, ok := out.cols[col.Name()]; !ok {
		out.colNames = append(out.colNames, col.Name())
	}

	out.cols[col.Name()] = aligned

	return out, nil
}

// SelectRows returns a copy of the frame keeping only the rows at the given
// positions, in the given order. Columns and their order are unchanged.
func (f Frame) SelectRows(positions []int) Frame {
	out := Frame{
		colNames: slices.Clone(f.colNames),
		cols:     make(map[string]Series, len(f.cols)),
		index:    f.index.Select(positions),
	}

	for name, col := range f.cols {
		out.cols[name] = col.Select(positions)
	}

	return out
}

// DTypes returns the inferred dtype of every column, keyed by column name.
func (f Frame) DTypes() map[string]DType {
	dtypes := make(map[string]DType, len(f.cols))
	for name, col := range f.cols {
		dtypes[name] = col.DType()
	}

	return dtypes
}

// Equals reports whether two frames have the same columns in the same order,
// equal column contents, and equal row indexes.
func (f Frame) Equals(other Frame) bool {
	if !slices.Equal(f.colNames, other.colNames) {
		return false
	}

	if !f.index.Equals(other.index) {
		return false
	}

	for name, col := range f.cols {
		if !col.Equals(other.cols[name]) {
			return false
		}
	}

	return true
}

// String renders a short description used in failure messages.
func (f Frame) String() string {
	return fmt.Sprintf("frame[%dx%d cols=%s]",
		f.NumRows(), f.NumColumns(), strings.Join(f.colNames, ","))
}
