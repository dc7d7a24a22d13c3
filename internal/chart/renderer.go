// =============================================================================
// Sales Report Generator - Chart Renderer
// =============================================================================
//
// Renders the metric series into PNG chart images for the report composer.
//
// Chart policy:
//   - Pie charts get one wedge per group; every group must carry a positive
//     value, since a zero or negative wedge cannot be drawn. The first
//     wedge (the top group after the descending sort) is visually
//     emphasized with a heavier outline. Each wedge is labeled with its
//     monetary value, re-derived from the wedge's percentage of the series
//     total and floor-rounded.
//     Because the label is recomputed from the percentage rather than
//     copied from the per-group total, it can differ from that total by a
//     cent; this mirrors the reference report.
//   - Bar charts get one bar per item, a percent-formatted y-axis with zero
//     decimal places, x labels rotated 45 degrees, and no x-axis title.
//
// =============================================================================

package chart

import (
	"bytes"
	"fmt"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/linkresults/report-generator/internal/report"
)

// Renderer draws report series as PNG images. It implements report.Renderer.
type Renderer struct{}

// New returns a chart renderer.
func New() *Renderer {
	return &Renderer{}
}

var _ report.Renderer = (*Renderer)(nil)

// Render draws the series as the requested chart kind at the given pixel
// dimensions. A series with no points, or a pie series containing any group
// with a non-positive value, cannot be drawn and returns an error.
func (r *Renderer) Render(series report.Series, kind report.ChartKind, widthPx, heightPx int) ([]byte, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("cannot render %s chart: series has no groups", kind)
	}
	switch kind {
	case report.ChartPie:
		return renderPie(series, widthPx, heightPx)
	case report.ChartBar:
		return renderBar(series, widthPx, heightPx)
	default:
		return nil, fmt.Errorf("unknown chart kind %q", kind)
	}
}

func renderPie(series report.Series, widthPx, heightPx int) ([]byte, error) {
	total := series.Total()
	if total <= 0 {
		return nil, fmt.Errorf("cannot render pie chart: series total is not positive")
	}

	values := make([]gochart.Value, len(series))
	for i, p := range series {
		// A wedge needs a positive share. go-chart would silently drop a
		// non-positive value, losing the group and its label; fail instead
		// so the run surfaces the problem.
		if p.Value <= 0 {
			return nil, fmt.Errorf("cannot render pie chart: group %q has non-positive value %v", p.Key, p.Value)
		}
		// The wedge label re-derives the dollar figure from the wedge's
		// share of the total, then floors to cents.
		pct := p.Value / total * 100
		label := report.FormatCurrency(report.FloorCurrency(pct / 100 * total))
		values[i] = gochart.Value{Value: p.Value, Label: label}
	}
	// Emphasize the leading wedge with a heavier outline.
	values[0].Style = gochart.Style{
		StrokeWidth: 4.0,
		StrokeColor: drawing.ColorWhite,
	}

	pie := gochart.PieChart{
		Width:  widthPx,
		Height: heightPx,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render pie chart: %w", err)
	}
	return buf.Bytes(), nil
}

func renderBar(series report.Series, widthPx, heightPx int) ([]byte, error) {
	bars := make([]gochart.Value, len(series))
	maxValue := 0.0
	for i, p := range series {
		bars[i] = gochart.Value{Value: p.Value, Label: p.Key}
		if p.Value > maxValue {
			maxValue = p.Value
		}
	}
	if maxValue <= 0 {
		// All-zero discounts still render; give the axis a visible range.
		maxValue = 1.0
	}

	bar := gochart.BarChart{
		Width:    widthPx,
		Height:   heightPx,
		BarWidth: barWidth(widthPx, len(bars)),
		XAxis: gochart.Style{
			TextRotationDegrees: 45.0,
		},
		YAxis: gochart.YAxis{
			ValueFormatter: percentFormatter,
			Range: &gochart.ContinuousRange{
				Min: 0,
				Max: maxValue,
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := bar.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render bar chart: %w", err)
	}
	return buf.Bytes(), nil
}

// percentFormatter renders a fraction as a whole percentage, e.g. 0.25 -> "25%".
func percentFormatter(v interface{}) string {
	f, ok := v.(float64)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%.0f%%", f*100)
}

// barWidth spreads the bars across the drawable width, within sane bounds.
func barWidth(widthPx, bars int) int {
	if bars == 0 {
		return 1
	}
	w := (widthPx - 100) / (bars * 2)
	if w < 10 {
		w = 10
	}
	if w > 80 {
		w = 80
	}
	return w
}
