package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/hrlens-org/hrlens/engine"
)

// ============================================================================
// REPORT — Terminal rendering of the dashboard
// ============================================================================

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the filtered dashboard in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		table := loadTable()
		criteria := buildCriteria(cmd, table)

		view, err := engine.Filter(table, criteria)
		if err != nil {
			if errors.Is(err, engine.ErrEmptyResult) {
				color.Yellow("No records match the current filters. Adjust the filters to continue.")
				return nil
			}
			return err
		}

		dash := engine.BuildDashboard(table, view)
		renderReport(dash)
		return nil
	},
}

func init() {
	addFilterFlags(reportCmd)
	rootCmd.AddCommand(reportCmd)
}

func renderReport(d *engine.Dashboard) {
	heading := color.New(color.FgCyan, color.Bold)

	heading.Println("Employee performance report")
	fmt.Println()

	// KPIs
	kpis := tablewriter.NewWriter(os.Stdout)
	kpis.SetHeader([]string{"Metric", "Value"})
	kpis.Append([]string{"Employees (filtered)", fmt.Sprintf("%d / %d", d.Metrics.FilteredCount, d.Metrics.TotalCount)})
	kpis.Append([]string{"Average performance", fmtMean(d.Metrics.MeanPerformance)})
	kpis.Append([]string{"Average satisfaction", fmtMean(d.Metrics.MeanSatisfaction)})
	kpis.Append([]string{"Average absences", fmtMean(d.Metrics.MeanAbsences)})
	kpis.Render()
	fmt.Println()

	renderChart(d.Charts.ScoreDistribution)
	renderChart(d.Charts.HoursByGender)
	renderChart(d.Charts.HoursByScore)

	heading.Println("Conclusions")
	fmt.Println(d.Conclusions.Text)
}

func renderChart(c *engine.ChartConfig) {
	if c == nil || len(c.Series) == 0 || len(c.Series[0].Data) == 0 {
		return
	}
	color.New(color.Bold).Println(c.Title)

	t := tablewriter.NewWriter(os.Stdout)
	t.SetHeader([]string{c.XAxis, c.YAxis})
	for _, p := range c.Series[0].Data {
		t.Append([]string{p.Label, strconv.FormatFloat(p.Value, 'f', -1, 64)})
	}
	t.Render()
	fmt.Println()
}

func fmtMean(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *v)
}
