package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hrlens-org/hrlens/config"
	"github.com/hrlens-org/hrlens/dataset"
	"github.com/hrlens-org/hrlens/engine"
)

// ============================================================================
// CLI ROOT — hrlens command tree
// ============================================================================

var (
	// Persistent flags
	cfgFile  string
	dataPath string
	debug    bool

	// Loaded configuration and logger, available to all subcommands
	cfg    *config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "hrlens",
	Short: "hrlens: filter and summarize an employee performance dataset",
	Long: `hrlens loads a tabular employee dataset once, filters it by gender,
performance score range, and marital status, and renders summary metrics,
charts, and exports over the filtered subset.`,
}

// Execute is the entry point called by main.main().
func Execute() {
	cobra.OnInitialize(initConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.hrlens/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "path to the employee CSV (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func initConfig() {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	c, err := config.Load(cfgFile)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load config, using defaults")
		c = &config.Config{
			DataPath:   "Employee_data.csv",
			ListenAddr: ":8080",
			ExportName: "employee_data_filtered.csv",
		}
	}
	cfg = c

	if rootCmd.PersistentFlags().Changed("data") && dataPath != "" {
		cfg.DataPath = dataPath
	}
}

// loadTable loads (or re-reads from the process cache) the configured
// dataset. Load and schema failures are fatal for the command.
func loadTable() *dataset.Table {
	t, err := dataset.Load(cfg.DataPath)
	if err != nil {
		var schemaErr *dataset.SchemaError
		if errors.As(err, &schemaErr) {
			logger.Fatal().Strs("missing", schemaErr.Missing).Msg("dataset schema is incomplete")
		}
		logger.Fatal().Err(err).Msg("failed to load dataset")
	}
	logger.Debug().
		Str("snapshot_id", t.SnapshotID).
		Int("rows", t.Len()).
		Msg("dataset loaded")
	return t
}

// addFilterFlags registers the shared filter flags on a subcommand.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("gender", nil, "genders to include (default: all)")
	cmd.Flags().StringSlice("marital-status", nil, "marital statuses to include (default: all)")
	cmd.Flags().Float64("score-min", 0, "minimum performance score, inclusive (default: dataset minimum)")
	cmd.Flags().Float64("score-max", 0, "maximum performance score, inclusive (default: dataset maximum)")
}

// buildCriteria turns the filter flags into criteria, falling back to the
// widest selection for any flag the user did not set.
func buildCriteria(cmd *cobra.Command, t *dataset.Table) engine.Criteria {
	criteria := engine.AllCriteria(t)
	f := cmd.Flags()

	if f.Changed("gender") {
		criteria.Genders, _ = f.GetStringSlice("gender")
	}
	if f.Changed("marital-status") {
		criteria.MaritalStatuses, _ = f.GetStringSlice("marital-status")
	}
	if f.Changed("score-min") {
		criteria.ScoreMin, _ = f.GetFloat64("score-min")
	}
	if f.Changed("score-max") {
		criteria.ScoreMax, _ = f.GetFloat64("score-max")
	}
	return criteria
}
