package engine

import (
	"errors"

	"github.com/hrlens-org/hrlens/dataset"
)

// ============================================================================
// FILTER — Single-pass AND filter over the table
// ============================================================================
// One loop, all three predicates per record. Produces a zero-copy View of
// matching row indices.
// ============================================================================

// ErrEmptyResult signals that the current filter combination matches no
// records. Recoverable: presentation layers show a warning and skip metric
// and chart rendering until the filters change.
var ErrEmptyResult = errors.New("no records match the current filters")

// Filter returns the view of rows matching all criteria. Records with a
// missing performance score are always excluded — a range test against a
// missing value is false.
func Filter(t *dataset.Table, c Criteria) (*View, error) {
	genders := toSet(c.Genders)
	marital := toSet(c.MaritalStatuses)

	indices := make([]int, 0, t.Len())
	for i := range t.Employees {
		e := &t.Employees[i]
		if !genders[e.Gender] {
			continue
		}
		if !marital[e.MaritalStatus] {
			continue
		}
		if !e.PerformanceScore.Valid {
			continue
		}
		if s := e.PerformanceScore.Float64; s < c.ScoreMin || s > c.ScoreMax {
			continue
		}
		indices = append(indices, i)
	}

	if len(indices) == 0 {
		return nil, ErrEmptyResult
	}
	return NewView(t, indices), nil
}

// toSet converts a string slice to a lookup set.
func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
