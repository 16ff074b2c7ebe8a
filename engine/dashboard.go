package engine

import "github.com/hrlens-org/hrlens/dataset"

// ============================================================================
// DASHBOARD — One recompute pass: view → render-ready output
// ============================================================================
// Pure function of the loaded table and the current view. Called once per
// filter change; the result is discarded on the next pass.
// ============================================================================

// BuildDashboard assembles the complete render output for a filtered view:
// KPI metrics, the four charts, the detail table, and the conclusions text.
func BuildDashboard(t *dataset.Table, v *View) *Dashboard {
	return &Dashboard{
		Metrics: Metrics{
			FilteredCount:    Count(v),
			TotalCount:       t.Len(),
			MeanPerformance:  maybe(Mean(v, dataset.ColPerformanceScore)),
			MeanSatisfaction: maybe(Mean(v, dataset.ColSatisfactionLevel)),
			MeanAbsences:     maybe(Mean(v, dataset.ColAbsences)),
		},
		Charts: Charts{
			ScoreDistribution: BuildScoreDistribution(v),
			HoursByGender:     BuildHoursByGender(v),
			AgeSalary:         BuildAgeSalary(v),
			HoursByScore:      BuildHoursByScore(v),
		},
		Detail:      BuildDetailTable(v),
		Conclusions: BuildConclusions(t, v),
	}
}
