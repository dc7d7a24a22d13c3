// =============================================================================
// Sales Report Generator - Report Generation Orchestration
// =============================================================================
//
// The Generator drives one full report run: parse the workbook, compute the
// metric series, render the three chart images, compose the one-page
// landscape PDF, and stage the artifacts on disk. A run is all-or-nothing;
// any failure aborts without leaving a partial report behind.
//
// Each run gets a unique identifier so that its chart and PDF files never
// collide with another run's in-flight artifacts.
//
// =============================================================================

package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/linkresults/report-generator/internal/composer"
	"github.com/linkresults/report-generator/internal/config"
	"github.com/linkresults/report-generator/internal/sheetparser"
)

// Generator produces PDF reports from workbook files. Construct with
// NewGenerator; the zero value is not usable.
type Generator struct {
	cfg      *config.Config
	renderer Renderer
	logger   *slog.Logger
}

// NewGenerator wires a generator with its configuration and chart renderer.
func NewGenerator(cfg *config.Config, renderer Renderer, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{cfg: cfg, renderer: renderer, logger: logger}
}

// Result describes one completed report run.
type Result struct {
	// PDF is the composed report document.
	PDF []byte

	// PDFPath is where the report was written under the output directory.
	PDFPath string

	// PlotPaths are the three chart images written to the plot directory,
	// in revenue / profit / discount order.
	PlotPaths []string

	// DroppedTransactions counts sales rows excluded by the join for
	// referencing an unknown item code.
	DroppedTransactions int

	// Elapsed is the wall time of the run.
	Elapsed time.Duration
}

// GenerateFile runs the whole pipeline for one workbook file.
func (g *Generator) GenerateFile(workbookPath string) (*Result, error) {
	start := time.Now()
	runID := uuid.New().String()
	log := g.logger.With("run_id", runID, "workbook", filepath.Base(workbookPath))

	sales, inventory, err := sheetparser.ParseWorkbook(workbookPath)
	if err != nil {
		return nil, fmt.Errorf("parse workbook: %w", err)
	}
	log.Debug("parsed workbook", "sales_rows", sales.NumRows(), "inventory_rows", inventory.NumRows())

	metrics, err := Compute(sales, inventory)
	if err != nil {
		return nil, fmt.Errorf("compute metrics: %w", err)
	}
	if metrics.DroppedTransactions > 0 {
		log.Warn("sales rows with unknown item codes were dropped",
			"dropped", metrics.DroppedTransactions)
	}

	w, h := g.cfg.ChartWidthPx, g.cfg.ChartHeightPx
	revenuePNG, err := g.renderer.Render(metrics.RevenueBySalesperson, ChartPie, w, h)
	if err != nil {
		return nil, fmt.Errorf("render revenue chart: %w", err)
	}
	profitPNG, err := g.renderer.Render(metrics.ProfitBySalesperson, ChartPie, w, h)
	if err != nil {
		return nil, fmt.Errorf("render profit chart: %w", err)
	}
	discountPNG, err := g.renderer.Render(metrics.AverageDiscountByItem, ChartBar, w, h)
	if err != nil {
		return nil, fmt.Errorf("render discount chart: %w", err)
	}

	plotPaths, err := g.writePlots(runID, revenuePNG, profitPNG, discountPNG)
	if err != nil {
		return nil, err
	}

	pdf, err := composer.Compose(composer.Input{
		RevenueChart:  revenuePNG,
		ProfitChart:   profitPNG,
		DiscountChart: discountPNG,
		StockTable:    stockTableRows(metrics.StockByItem),
	})
	if err != nil {
		return nil, fmt.Errorf("compose report: %w", err)
	}

	pdfPath := filepath.Join(g.cfg.OutputDir, fmt.Sprintf("report-%s.pdf", runID))
	if err := os.WriteFile(pdfPath, pdf, 0o644); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}

	result := &Result{
		PDF:                 pdf,
		PDFPath:             pdfPath,
		PlotPaths:           plotPaths,
		DroppedTransactions: metrics.DroppedTransactions,
		Elapsed:             time.Since(start),
	}
	log.Info("report generated", "pdf", pdfPath, "elapsed", result.Elapsed)
	return result, nil
}

// writePlots stages the chart images in the plot directory. The images are
// already embedded in the PDF from memory; the files are kept as inspectable
// artifacts, one set per run.
func (g *Generator) writePlots(runID string, revenue, profit, discount []byte) ([]string, error) {
	plots := []struct {
		name string
		data []byte
	}{
		{"revenue_by_salesperson", revenue},
		{"profit_by_salesperson", profit},
		{"item_average_discount", discount},
	}
	paths := make([]string, 0, len(plots))
	for _, p := range plots {
		path := filepath.Join(g.cfg.PlotDir, fmt.Sprintf("%s-%s.png", p.name, runID))
		if err := os.WriteFile(path, p.data, 0o644); err != nil {
			return nil, fmt.Errorf("write plot %s: %w", p.name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func stockTableRows(rows []StockRow) []composer.TableRow {
	out := make([]composer.TableRow, len(rows))
	for i, r := range rows {
		out[i] = composer.TableRow{
			Item:      r.ItemName,
			StockLeft: formatInt(r.StockLeft),
		}
	}
	return out
}
