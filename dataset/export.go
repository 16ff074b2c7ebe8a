package dataset

import (
	"encoding/csv"
	"io"
)

// ============================================================================
// EXPORT — Filtered rows back to CSV
// ============================================================================
// Same column set as the load, fixed field order, header row first. Missing
// numeric cells serialize as empty fields, so an export re-parses to the same
// row set it was built from.
// ============================================================================

// WriteCSV serializes the given row indices of t as UTF-8 CSV. A nil rows
// slice exports the whole table.
func WriteCSV(w io.Writer, t *Table, rows []int) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Columns); err != nil {
		return err
	}

	if rows == nil {
		rows = make([]int, t.Len())
		for i := range rows {
			rows[i] = i
		}
	}

	record := make([]string, len(Columns))
	for _, i := range rows {
		if i < 0 || i >= t.Len() {
			continue
		}
		for j, col := range Columns {
			if IsNumeric(col) {
				record[j] = t.FloatAt(i, col).String()
			} else {
				record[j] = t.StringAt(i, col)
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
