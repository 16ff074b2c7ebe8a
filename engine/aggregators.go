package engine

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ============================================================================
// AGGREGATORS — Derived summaries over a View
// ============================================================================
// Every aggregate is independently computable and excludes missing values
// from its input ("ignore missing" semantics). None of them mutate the view.
// ============================================================================

// Count returns the number of records in the view.
func Count(v *View) int { return v.Len() }

// Mean returns the arithmetic mean of a numeric column, skipping missing
// cells. With no present values it returns NaN — it never panics; callers
// hit ErrEmptyResult before metrics run in the normal flow.
func Mean(v *View, col string) float64 {
	return stat.Mean(collect(v, col), nil)
}

// Correlation returns the Pearson correlation coefficient between two
// numeric columns, using only rows where both values are present. Fewer than
// two complete pairs yields NaN.
func Correlation(v *View, colA, colB string) float64 {
	var xs, ys []float64
	for i := 0; i < v.Len(); i++ {
		a := v.FloatAt(i, colA)
		b := v.FloatAt(i, colB)
		if !a.Valid || !b.Valid {
			continue
		}
		xs = append(xs, a.Float64)
		ys = append(ys, b.Float64)
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.Correlation(xs, ys, nil)
}

// ValueCount is one distinct value of a string column with its frequency.
type ValueCount struct {
	Value   string  `json:"value"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// ValueCounts returns distinct value frequencies for a string column,
// ordered by descending count. Ties keep first-encountered order, so the
// ranking is deterministic for a given view. Percent fields are normalized
// to sum to 100. Empty cells are treated as missing and excluded.
func ValueCounts(v *View, col string) []ValueCount {
	counts := make(map[string]int)
	var order []string
	total := 0

	for i := 0; i < v.Len(); i++ {
		val := v.StringAt(i, col)
		if val == "" {
			continue
		}
		if _, seen := counts[val]; !seen {
			order = append(order, val)
		}
		counts[val]++
		total++
	}

	out := make([]ValueCount, 0, len(order))
	for _, val := range order {
		out = append(out, ValueCount{Value: val, Count: counts[val]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })

	if total > 0 {
		for i := range out {
			out[i].Percent = float64(out[i].Count) / float64(total) * 100
		}
	}
	return out
}

// GroupMean is the mean of a numeric column within one string-keyed group.
type GroupMean struct {
	Key   string  `json:"key"`
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
}

// GroupedMean maps each distinct value of groupCol to the mean of valCol
// within that group, ordered by ascending key. Rows with an empty group key
// or a missing value are excluded, so every emitted group has a real mean.
func GroupedMean(v *View, groupCol, valCol string) []GroupMean {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for i := 0; i < v.Len(); i++ {
		key := v.StringAt(i, groupCol)
		val := v.FloatAt(i, valCol)
		if key == "" || !val.Valid {
			continue
		}
		sums[key] += val.Float64
		counts[key]++
	}

	keys := make([]string, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]GroupMean, 0, len(keys))
	for _, k := range keys {
		out = append(out, GroupMean{Key: k, Mean: sums[k] / float64(counts[k]), Count: counts[k]})
	}
	return out
}

// NumericGroupMean is the mean of a numeric column within one numeric-keyed
// group (e.g. mean work hours per performance score).
type NumericGroupMean struct {
	Key   float64 `json:"key"`
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
}

// GroupedMeanByNumber groups by a numeric column and averages another,
// ordered by ascending key. Rows missing either value are excluded.
func GroupedMeanByNumber(v *View, groupCol, valCol string) []NumericGroupMean {
	sums := make(map[float64]float64)
	counts := make(map[float64]int)

	for i := 0; i < v.Len(); i++ {
		key := v.FloatAt(i, groupCol)
		val := v.FloatAt(i, valCol)
		if !key.Valid || !val.Valid {
			continue
		}
		sums[key.Float64] += val.Float64
		counts[key.Float64]++
	}

	keys := make([]float64, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Float64s(keys)

	out := make([]NumericGroupMean, 0, len(keys))
	for _, k := range keys {
		out = append(out, NumericGroupMean{Key: k, Mean: sums[k] / float64(counts[k]), Count: counts[k]})
	}
	return out
}

// NumericCount is one distinct value of a numeric column with its
// occurrence count.
type NumericCount struct {
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// DistributionByValue maps each distinct present value of a numeric column
// to its occurrence count, ordered by ascending value.
func DistributionByValue(v *View, col string) []NumericCount {
	counts := make(map[float64]int)
	for i := 0; i < v.Len(); i++ {
		val := v.FloatAt(i, col)
		if !val.Valid {
			continue
		}
		counts[val.Float64]++
	}

	keys := make([]float64, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Float64s(keys)

	out := make([]NumericCount, 0, len(keys))
	for _, k := range keys {
		out = append(out, NumericCount{Value: k, Count: counts[k]})
	}
	return out
}

// ScatterPoint is one (x, y) pair for scatter charts.
type ScatterPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pairs returns the (colX, colY) values of every row where both are present,
// in view order.
func Pairs(v *View, colX, colY string) []ScatterPoint {
	var out []ScatterPoint
	for i := 0; i < v.Len(); i++ {
		x := v.FloatAt(i, colX)
		y := v.FloatAt(i, colY)
		if !x.Valid || !y.Valid {
			continue
		}
		out = append(out, ScatterPoint{X: x.Float64, Y: y.Float64})
	}
	return out
}

// RoundTo2 rounds to 2 decimal places.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

// collect gathers the present values of a numeric column.
func collect(v *View, col string) []float64 {
	var out []float64
	for i := 0; i < v.Len(); i++ {
		if f := v.FloatAt(i, col); f.Valid {
			out = append(out, f.Float64)
		}
	}
	return out
}
