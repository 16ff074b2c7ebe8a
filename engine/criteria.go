package engine

import "github.com/hrlens-org/hrlens/dataset"

// ============================================================================
// CRITERIA — The three filter controls
// ============================================================================
// Reconstructed from UI state on every interaction, never persisted. Set
// membership is exact (the loader already trimmed gender), the score range is
// inclusive on the raw numeric value.
// ============================================================================

// Criteria selects the rows a View will contain. A record is included only
// when it passes all three tests; a missing performance score always fails
// the range test.
type Criteria struct {
	Genders         []string `json:"genders"`
	ScoreMin        float64  `json:"scoreMin"`
	ScoreMax        float64  `json:"scoreMax"`
	MaritalStatuses []string `json:"maritalStatuses"`
}

// AllCriteria returns criteria matching every row that has a present
// performance score: all genders, all marital statuses, the full score range.
func AllCriteria(t *dataset.Table) Criteria {
	min, max, ok := ScoreBounds(t)
	if !ok {
		min, max = 0, 0
	}
	return Criteria{
		Genders:         t.DistinctValues(dataset.ColGender),
		ScoreMin:        float64(min),
		ScoreMax:        float64(max),
		MaritalStatuses: t.DistinctValues(dataset.ColMaritalStatus),
	}
}

// ScoreBounds derives the slider bounds from the full, unfiltered table:
// min and max performance score truncated to integers. ok is false when the
// table has no present scores at all.
//
// Truncation only affects the control bounds — Filter compares the raw float.
func ScoreBounds(t *dataset.Table) (min, max int, ok bool) {
	var lo, hi float64
	for i := range t.Employees {
		s := t.Employees[i].PerformanceScore
		if !s.Valid {
			continue
		}
		if !ok || s.Float64 < lo {
			lo = s.Float64
		}
		if !ok || s.Float64 > hi {
			hi = s.Float64
		}
		ok = true
	}
	if !ok {
		return 0, 0, false
	}
	return int(lo), int(hi), true
}
