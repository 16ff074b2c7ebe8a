package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/hrlens-org/hrlens/dataset"
)

// ============================================================================
// TEXT BUILDER — Data-driven conclusions for the current view
// ============================================================================

// BuildConclusions derives the summary statements: most frequent performance
// description with its share, mean score against the observed scale, mean
// satisfaction with its correlation to score, and mean absences.
//
// The scale comes from the full table's score bounds, not the filtered view,
// so the text stays comparable across filter changes.
func BuildConclusions(t *dataset.Table, v *View) *Conclusions {
	c := &Conclusions{
		MeanPerformance:  maybe(Mean(v, dataset.ColPerformanceScore)),
		MeanSatisfaction: maybe(Mean(v, dataset.ColSatisfactionLevel)),
		MeanAbsences:     maybe(Mean(v, dataset.ColAbsences)),
		Correlation:      maybe(Correlation(v, dataset.ColPerformanceScore, dataset.ColSatisfactionLevel)),
	}
	c.ScoreMin, c.ScoreMax, _ = ScoreBounds(t)

	if counts := ValueCounts(v, dataset.ColPerformanceScoreDesc); len(counts) > 0 {
		c.TopScoreDesc = counts[0].Value
		c.TopScoreDescPercent = counts[0].Percent
	}

	c.Text = renderConclusions(c)
	return c
}

func renderConclusions(c *Conclusions) string {
	var lines []string

	if c.TopScoreDesc != "" {
		lines = append(lines, fmt.Sprintf(
			"The most frequent performance category is %s at %.1f%% of the filtered employees.",
			c.TopScoreDesc, c.TopScoreDescPercent))
	}
	if c.MeanPerformance != nil {
		lines = append(lines, fmt.Sprintf(
			"The average performance score is %.2f on the observed %d to %d scale.",
			*c.MeanPerformance, c.ScoreMin, c.ScoreMax))
	}
	if c.MeanSatisfaction != nil {
		line := fmt.Sprintf("The average satisfaction level is %.2f", *c.MeanSatisfaction)
		if c.Correlation != nil {
			line += fmt.Sprintf(", with a %.2f correlation to performance", *c.Correlation)
		}
		lines = append(lines, line+".")
	}
	if c.MeanAbsences != nil {
		lines = append(lines, fmt.Sprintf(
			"Employees average %.2f absences; high values can signal continuity or engagement risk.",
			*c.MeanAbsences))
	}

	return strings.Join(lines, "\n")
}

// maybe converts a possibly-NaN aggregate into a nil-able value so render
// structures stay JSON-safe.
func maybe(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
