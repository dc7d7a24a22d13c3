// =============================================================================
// Sales Report Generator - Root Command
// =============================================================================
//
// Defines the base cobra command that 'serve', 'generate' and 'version' hang
// off. The root command owns the global flags (--config, --verbose) and the
// shared setup: loading the configuration file and building the logger.
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/linkresults/report-generator/internal/config"
)

// cfgFile is the path to the configuration file, settable via --config.
var cfgFile string

// verbose forces debug logging regardless of the configured level.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "report-generator",
	Short: "Sales Report Generator - Turn a sales workbook into a one-page PDF report",
	Long: `Sales Report Generator ingests a two-sheet workbook ("Sales" and
"Inventory"), computes revenue, profit, discount and stock metrics, renders
charts, and composes everything into a single-page landscape PDF report.

Run it as an HTTP upload service or as a one-shot command:

  report-generator serve                      # start the upload server
  report-generator generate --file sales.xlsx # convert one workbook`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the CLI. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// loadConfigAndLogger performs the shared command setup: read the config
// file (defaults apply if it does not exist) and build the logger at the
// configured level.
func loadConfigAndLogger() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return cfg, logger, nil
}
