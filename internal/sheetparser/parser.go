// =============================================================================
// Sales Report Generator - Workbook Parser
// =============================================================================
//
// Parses the uploaded workbook into the two tabular stores the pipeline
// operates on. The workbook must contain a "Sales" sheet and an "Inventory"
// sheet; the first row of each sheet is the header and every following
// non-empty row is data. Header names are taken verbatim (matching later in
// the pipeline is exact, case- and spacing-sensitive).
//
// Cell values arrive as the strings excelize reads from the sheet; numeric
// validation happens at the point of use in the pipeline, so a bad cell is
// reported with its column name and row position.
//
// =============================================================================

package sheetparser

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/linkresults/report-generator/internal/table"
)

// Sheet names required in every input workbook.
const (
	SalesSheet     = "Sales"
	InventorySheet = "Inventory"
)

// ParseWorkbook opens a workbook file and parses the Sales and Inventory
// sheets. A missing sheet, an unreadable file, or a sheet with no data rows
// is an error; no partial result is returned.
func ParseWorkbook(path string) (sales, inventory *table.Table, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sales, err = parseSheet(f, SalesSheet)
	if err != nil {
		return nil, nil, err
	}
	inventory, err = parseSheet(f, InventorySheet)
	if err != nil {
		return nil, nil, err
	}
	return sales, inventory, nil
}

// parseSheet reads one sheet into a table. excelize trims trailing empty
// cells per row, so short rows are padded back out to the header width;
// fully empty rows are skipped. A row with data beyond the header width is
// rejected rather than truncated.
func parseSheet(f *excelize.File, name string) (*table.Table, error) {
	idx, err := f.GetSheetIndex(name)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", name, err)
	}
	if idx < 0 {
		return nil, fmt.Errorf("workbook has no %q sheet", name)
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", name)
	}

	header := rows[0]
	for len(header) > 0 && header[len(header)-1] == "" {
		header = header[:len(header)-1]
	}
	if len(header) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", name)
	}

	t, err := table.New(header...)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", name, err)
	}

	for i, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		if len(row) > len(header) {
			return nil, fmt.Errorf("sheet %q row %d has %d cells, header has %d columns",
				name, i+2, len(row), len(header))
		}
		cells := make([]string, len(header))
		copy(cells, row)
		if err := t.AppendRow(cells...); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
	}

	if t.NumRows() == 0 {
		return nil, fmt.Errorf("sheet %q has no data rows", name)
	}
	return t, nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
