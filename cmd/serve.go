// =============================================================================
// Sales Report Generator - Serve Command
// =============================================================================
//
// Starts the HTTP upload service. The server accepts workbook uploads on
// POST /process and responds with the generated PDF report. Shuts down
// gracefully on SIGINT/SIGTERM.
//
// =============================================================================

package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/linkresults/report-generator/internal/chart"
	"github.com/linkresults/report-generator/internal/report"
	"github.com/linkresults/report-generator/internal/server"
)

// listenAddr overrides the configured listen address when set.
var listenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the report upload HTTP server",
	Long: `The serve command starts the HTTP service. It serves an upload form on
GET / and accepts a workbook on POST /process, responding with the composed
PDF report or a plain-text error message.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(
		&listenAddr,
		"addr",
		"",
		"Listen address (overrides the configured listen_addr)",
	)
}

func runServe() error {
	cfg, logger, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	if listenAddr != "" {
		cfg.ListenAddr = listenAddr
	}

	generator := report.NewGenerator(cfg, chart.New(), logger)
	srv := server.New(cfg, generator, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.ListenAndServe(ctx)
}
