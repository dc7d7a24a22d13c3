// =============================================================================
// Sales Report Generator - Generate Command
// =============================================================================
//
// One-shot pipeline run: take a workbook path, produce the PDF report, print
// where it landed. Useful for scripting and for checking a workbook without
// standing up the HTTP server.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/linkresults/report-generator/internal/chart"
	"github.com/linkresults/report-generator/internal/report"
	"github.com/linkresults/report-generator/pkg/utils"
)

// workbookFile is the input workbook path (required).
var workbookFile string

// outFile optionally copies the generated PDF to a caller-chosen path.
var outFile string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a PDF report from a workbook file",
	Long: `The generate command runs the full pipeline once: parse the Sales and
Inventory sheets, compute the metrics, render the charts, and compose the
one-page PDF report into the output directory.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate()
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(
		&workbookFile,
		"file",
		"",
		"Path to the workbook to process (required)",
	)
	generateCmd.Flags().StringVar(
		&outFile,
		"out",
		"",
		"Also write the PDF to this path",
	)
	generateCmd.MarkFlagRequired("file")
}

func runGenerate() error {
	cfg, logger, err := loadConfigAndLogger()
	if err != nil {
		return err
	}

	if !cfg.ExtensionAllowed(utils.Extension(workbookFile)) {
		return fmt.Errorf("unsupported workbook extension %q", filepath.Ext(workbookFile))
	}

	files := utils.NewFileManager(cfg.UploadDir, cfg.OutputDir, cfg.PlotDir)
	if err := files.EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to prepare working directories: %w", err)
	}

	generator := report.NewGenerator(cfg, chart.New(), logger)
	result, err := generator.GenerateFile(workbookFile)
	if err != nil {
		return fmt.Errorf("report generation failed: %w", err)
	}

	if outFile != "" {
		if err := os.WriteFile(outFile, result.PDF, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outFile, err)
		}
	}

	fmt.Printf("Report written to %s\n", result.PDFPath)
	if result.DroppedTransactions > 0 {
		fmt.Printf("Warning: %d sales row(s) referenced unknown item codes and were dropped\n",
			result.DroppedTransactions)
	}
	return nil
}
