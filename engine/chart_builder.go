package engine

import (
	"strconv"

	"github.com/hrlens-org/hrlens/dataset"
)

// ============================================================================
// CHART BUILDER — The four dashboard charts
// ============================================================================

// BuildScoreDistribution counts employees per performance score, ascending
// by score.
func BuildScoreDistribution(v *View) *ChartConfig {
	dist := DistributionByValue(v, dataset.ColPerformanceScore)

	points := make([]ChartPoint, 0, len(dist))
	for _, d := range dist {
		points = append(points, ChartPoint{
			Label: formatScore(d.Value),
			Value: float64(d.Count),
		})
	}

	return &ChartConfig{
		ChartType: "bar",
		Title:     "Performance score distribution",
		XAxis:     "Performance score",
		YAxis:     "Employees",
		Series:    []ChartSeries{{Name: "Employees", Data: points}},
		ShowGrid:  true,
	}
}

// BuildHoursByGender averages work hours per gender, ascending by key.
func BuildHoursByGender(v *View) *ChartConfig {
	means := GroupedMean(v, dataset.ColGender, dataset.ColAverageWorkHours)

	points := make([]ChartPoint, 0, len(means))
	for _, m := range means {
		points = append(points, ChartPoint{Label: m.Key, Value: RoundTo2(m.Mean)})
	}

	return &ChartConfig{
		ChartType: "bar",
		Title:     "Average work hours by gender",
		XAxis:     "Gender",
		YAxis:     "Average work hours",
		Series:    []ChartSeries{{Name: "Average work hours", Data: points}},
		ShowGrid:  true,
	}
}

// BuildAgeSalary pairs age and salary for every row where both are present.
func BuildAgeSalary(v *View) *ChartConfig {
	return &ChartConfig{
		ChartType: "scatter",
		Title:     "Age vs salary",
		XAxis:     "Age",
		YAxis:     "Salary",
		Series: []ChartSeries{{
			Name:   "Employees",
			Points: Pairs(v, dataset.ColAge, dataset.ColSalary),
		}},
		ShowGrid: true,
	}
}

// BuildHoursByScore averages work hours per performance score, ascending by
// score, rendered as a line.
func BuildHoursByScore(v *View) *ChartConfig {
	means := GroupedMeanByNumber(v, dataset.ColPerformanceScore, dataset.ColAverageWorkHours)

	points := make([]ChartPoint, 0, len(means))
	for _, m := range means {
		points = append(points, ChartPoint{Label: formatScore(m.Key), Value: RoundTo2(m.Mean)})
	}

	return &ChartConfig{
		ChartType: "line",
		Title:     "Average work hours vs performance score",
		XAxis:     "Performance score",
		YAxis:     "Average work hours",
		Series:    []ChartSeries{{Name: "Average work hours", Data: points}},
		ShowGrid:  true,
	}
}

// formatScore renders a score label without trailing decimals for
// integer-valued scores.
func formatScore(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
