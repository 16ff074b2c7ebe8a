package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/hrlens-org/hrlens/dataset"
	"github.com/hrlens-org/hrlens/engine"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the filtered rows as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		table := loadTable()
		criteria := buildCriteria(cmd, table)

		view, err := engine.Filter(table, criteria)
		if err != nil {
			if errors.Is(err, engine.ErrEmptyResult) {
				return errors.New("no records match the current filters, nothing to export")
			}
			return err
		}

		out := os.Stdout
		if path, _ := cmd.Flags().GetString("out"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
			logger.Info().Str("path", path).Int("rows", view.Len()).Msg("writing export")
		}

		return dataset.WriteCSV(out, table, view.Rows())
	},
}

func init() {
	addFilterFlags(exportCmd)
	exportCmd.Flags().String("out", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
