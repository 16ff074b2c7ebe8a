package engine

// ============================================================================
// RENDER TYPES — Chart/table/text structures consumed by adapters
// ============================================================================
// The engine computes; adapters (HTTP JSON, terminal report) only render.
// Means that cannot be computed (no present values) are nil pointers rather
// than NaN, so every structure here marshals cleanly to JSON.
// ============================================================================

// Dashboard is the full render-ready output for one filter pass.
type Dashboard struct {
	Metrics     Metrics      `json:"metrics"`
	Charts      Charts       `json:"charts"`
	Detail      *TableData   `json:"detail"`
	Conclusions *Conclusions `json:"conclusions"`
}

// Metrics are the headline KPI values over the filtered view.
type Metrics struct {
	FilteredCount    int      `json:"filteredCount"`
	TotalCount       int      `json:"totalCount"`
	MeanPerformance  *float64 `json:"meanPerformance,omitempty"`
	MeanSatisfaction *float64 `json:"meanSatisfaction,omitempty"`
	MeanAbsences     *float64 `json:"meanAbsences,omitempty"`
}

// Charts holds the four chart structures of the dashboard.
type Charts struct {
	ScoreDistribution *ChartConfig `json:"scoreDistribution"`
	HoursByGender     *ChartConfig `json:"hoursByGender"`
	AgeSalary         *ChartConfig `json:"ageSalary"`
	HoursByScore      *ChartConfig `json:"hoursByScore"`
}

// ChartConfig defines how to render a chart.
type ChartConfig struct {
	ChartType string        `json:"chartType"` // "bar", "line", "scatter"
	Title     string        `json:"title"`
	XAxis     string        `json:"xAxis,omitempty"`
	YAxis     string        `json:"yAxis,omitempty"`
	Series    []ChartSeries `json:"series"`
	ShowGrid  bool          `json:"showGrid"`
}

// ChartSeries is one data series. Bar/line series carry Data; scatter series
// carry Points.
type ChartSeries struct {
	Name   string         `json:"name"`
	Data   []ChartPoint   `json:"data,omitempty"`
	Points []ScatterPoint `json:"points,omitempty"`
}

// ChartPoint is a single labelled value.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// TableData defines how to render the detail table.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Column defines one detail table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number"
	Align string `json:"align"` // "left", "right"
}

// Conclusions are the data-driven summary statements for the current view.
type Conclusions struct {
	TopScoreDesc        string   `json:"topScoreDesc,omitempty"`
	TopScoreDescPercent float64  `json:"topScoreDescPercent,omitempty"`
	MeanPerformance     *float64 `json:"meanPerformance,omitempty"`
	ScoreMin            int      `json:"scoreMin"`
	ScoreMax            int      `json:"scoreMax"`
	MeanSatisfaction    *float64 `json:"meanSatisfaction,omitempty"`
	Correlation         *float64 `json:"correlation,omitempty"`
	MeanAbsences        *float64 `json:"meanAbsences,omitempty"`
	Text                string   `json:"text"`
}
