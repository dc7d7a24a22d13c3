// =============================================================================
// Sales Report Generator - Report Composer
// =============================================================================
//
// Lays out the three chart images and the stock table on a single landscape
// A4 page and produces the PDF byte stream. The geometry is fixed: for the
// same input shape the layout is identical across runs.
//
// Page layout (millimetres, origin at the top-left content margin):
//
//   [Revenue by salesperson 112x20] [Profit by salesperson 110x20]
//   [revenue pie, w=110] [gap 2] [profit pie, w=110]   [stock table at x0+220]
//   [Average discounts label]                          [ "Item" | "Stock Left" ]
//   [discount bar chart, w=103]                        [  ...   |     ...      ]
//
// The stock table is one bordered 30x10 cell pair per inventory item, header
// row bold and centered, item names left-aligned, stock-left figures
// right-aligned. The row count is unbounded by the layout; with a very large
// inventory the rows run past the bottom of the single page. This is a
// deliberate one-page-only limitation, not silent truncation: every row is
// emitted, the page simply does not paginate.
//
// =============================================================================

package composer

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// Layout constants, in millimetres on an A4 landscape page.
const (
	pieWidth       = 110
	pieGap         = 2
	barWidth       = 103
	labelWidth     = 112
	labelHeight    = 20
	tableOffsetX   = 220
	tableCellW     = 30
	tableCellH     = 10
	chartLabelSize = 12
	tableFontSize  = 10
)

// TableRow is one line of the stock table.
type TableRow struct {
	Item      string
	StockLeft string
}

// Input carries everything the composer places on the page. The chart
// images must be PNG-encoded.
type Input struct {
	RevenueChart  []byte
	ProfitChart   []byte
	DiscountChart []byte
	StockTable    []TableRow
}

// Compose builds the one-page landscape report and returns the PDF bytes.
func Compose(in Input) ([]byte, error) {
	if len(in.RevenueChart) == 0 || len(in.ProfitChart) == 0 || len(in.DiscountChart) == 0 {
		return nil, fmt.Errorf("compose: all three chart images are required")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	// One page only: a very long stock table runs off the bottom rather
	// than paginating.
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetFont("Arial", "", chartLabelSize)

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	revenueInfo := pdf.RegisterImageOptionsReader("revenue_pie", opts, bytes.NewReader(in.RevenueChart))
	pdf.RegisterImageOptionsReader("profit_pie", opts, bytes.NewReader(in.ProfitChart))
	pdf.RegisterImageOptionsReader("discount_bar", opts, bytes.NewReader(in.DiscountChart))
	if pdf.Err() {
		return nil, fmt.Errorf("compose: register chart images: %w", pdf.Error())
	}

	// Header labels for the two pies, side by side.
	pdf.CellFormat(labelWidth, labelHeight, "Revenue by salesperson", "", 0, "L", false, 0, "")
	pdf.CellFormat(pieWidth, labelHeight, "Profit by salesperson", "", 1, "L", false, 0, "")

	startX := pdf.GetX()
	startY := pdf.GetY()

	// Both pies are rendered at the same pixel dimensions, so the scaled
	// height of the first determines where content below the pies starts.
	pieHeight := pieWidth * revenueInfo.Height() / revenueInfo.Width()

	pdf.ImageOptions("revenue_pie", startX, startY, pieWidth, 0, false, opts, 0, "")
	pdf.ImageOptions("profit_pie", startX+pieWidth+pieGap, startY, pieWidth, 0, false, opts, 0, "")
	belowPieY := startY + pieHeight

	composeStockTable(pdf, in.StockTable, startX+tableOffsetX, startY)

	// Bar chart below the pies, label first.
	pdf.SetFont("Arial", "", chartLabelSize)
	pdf.SetXY(startX, belowPieY-tableCellH)
	pdf.CellFormat(tableCellW, tableCellH, "Average discounts", "", 2, "L", false, 0, "")
	pdf.ImageOptions("discount_bar", startX, pdf.GetY(), barWidth, 0, false, opts, 0, "")

	if pdf.Err() {
		return nil, fmt.Errorf("compose: %w", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("compose: write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// composeStockTable draws the bordered two-column stock table with its bold
// header row, flowing downward from (x, y).
func composeStockTable(pdf *fpdf.Fpdf, rows []TableRow, x, y float64) {
	pdf.SetFont("Arial", "B", tableFontSize)
	pdf.SetXY(x, y)
	pdf.CellFormat(tableCellW, tableCellH, "Item", "1", 0, "C", false, 0, "")
	pdf.CellFormat(tableCellW, tableCellH, "Stock Left", "1", 0, "C", false, 0, "")

	pdf.SetFont("Arial", "", tableFontSize)
	for i, row := range rows {
		rowY := y + float64(i+1)*tableCellH
		pdf.SetXY(x, rowY)
		pdf.CellFormat(tableCellW, tableCellH, row.Item, "1", 0, "L", false, 0, "")
		pdf.CellFormat(tableCellW, tableCellH, row.StockLeft, "1", 0, "R", false, 0, "")
	}
}
