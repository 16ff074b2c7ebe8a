package cli

import (
	"github.com/spf13/cobra"

	"github.com/hrlens-org/hrlens/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		table := loadTable()
		return server.New(cfg, table, logger).ListenAndServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
