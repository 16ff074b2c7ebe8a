package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/hrlens-org/hrlens/dataset"
	"github.com/hrlens-org/hrlens/engine"
)

var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "Print the dataset schema and filter option values",
	RunE: func(cmd *cobra.Command, args []string) error {
		table := loadTable()

		fmt.Printf("Dataset: %s (snapshot %s, %d rows)\n\n",
			table.Path, table.SnapshotID, table.Len())

		required := make(map[string]bool, len(dataset.RequiredColumns))
		for _, c := range dataset.RequiredColumns {
			required[c] = true
		}

		t := tablewriter.NewWriter(os.Stdout)
		t.SetHeader([]string{"Column", "Kind", "Required"})
		for _, col := range dataset.Columns {
			kind := "string"
			if dataset.IsNumeric(col) {
				kind = "numeric"
			}
			req := ""
			if required[col] {
				req = "yes"
			}
			t.Append([]string{col, kind, req})
		}
		t.Render()
		fmt.Println()

		if min, max, ok := engine.ScoreBounds(table); ok {
			fmt.Printf("Performance score bounds: %d to %d\n", min, max)
		} else {
			fmt.Println("Performance score bounds: no present scores")
		}
		fmt.Printf("Genders: %s\n", strings.Join(table.DistinctValues(dataset.ColGender), ", "))
		fmt.Printf("Marital statuses: %s\n", strings.Join(table.DistinctValues(dataset.ColMaritalStatus), ", "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(columnsCmd)
}
