package engine

import "github.com/hrlens-org/hrlens/dataset"

// ============================================================================
// VIEW — Zero-copy filtered subset of a Table
// ============================================================================
// A View holds row indices into its parent table; no employee data is copied.
// Views are recomputed on every filter change and discarded — the table
// itself is never mutated.
// ============================================================================

// View is a read-only subset of a dataset.Table.
type View struct {
	table   *dataset.Table
	indices []int
}

// NewView builds a view over explicit row indices. Indices are not validated
// here; out-of-range reads resolve to empty/missing like on the table itself.
func NewView(t *dataset.Table, indices []int) *View {
	return &View{table: t, indices: indices}
}

// FullView returns a view covering every row of the table.
func FullView(t *dataset.Table) *View {
	indices := make([]int, t.Len())
	for i := range indices {
		indices[i] = i
	}
	return &View{table: t, indices: indices}
}

// Len returns the number of rows in the view.
func (v *View) Len() int { return len(v.indices) }

// StringAt reads a string column at view position i.
func (v *View) StringAt(i int, col string) string {
	if i < 0 || i >= len(v.indices) {
		return ""
	}
	return v.table.StringAt(v.indices[i], col)
}

// FloatAt reads a numeric column at view position i.
func (v *View) FloatAt(i int, col string) dataset.Float {
	if i < 0 || i >= len(v.indices) {
		return dataset.Float{}
	}
	return v.table.FloatAt(v.indices[i], col)
}

// Rows returns a copy of the underlying table row indices, in view order.
// Used by the export path to serialize exactly the filtered rows.
func (v *View) Rows() []int {
	out := make([]int, len(v.indices))
	copy(out, v.indices)
	return out
}

// Table returns the parent table.
func (v *View) Table() *dataset.Table { return v.table }
