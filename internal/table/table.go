// =============================================================================
// Sales Report Generator - Tabular Store
// =============================================================================
//
// This package provides the in-memory tabular representation used across the
// pipeline. A Table is an ordered set of named columns of equal length; a row
// is the tuple of cell values at one index. Both input sheets ("Sales",
// "Inventory") and the joined transaction table are held as Tables.
//
// Cells are stored in their raw string form as read from the workbook and
// parsed on demand through the typed accessors (Floats, Ints). A cell that
// cannot be parsed surfaces as an error from the accessor, which the pipeline
// treats as malformed input.
//
// =============================================================================

package table

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Table is a rectangular dataset with uniquely named, equal-length columns.
// The zero value is not usable; construct with New.
type Table struct {
	names []string
	index map[string]int
	cols  [][]string
}

// New creates an empty table with the given column names.
// Column names must be unique; matching is exact (case- and
// spacing-sensitive).
func New(names ...string) (*Table, error) {
	t := &Table{
		names: make([]string, 0, len(names)),
		index: make(map[string]int, len(names)),
		cols:  make([][]string, 0, len(names)),
	}
	for _, name := range names {
		if name == "" {
			return nil, fmt.Errorf("empty column name")
		}
		if _, exists := t.index[name]; exists {
			return nil, fmt.Errorf("duplicate column name %q", name)
		}
		t.index[name] = len(t.names)
		t.names = append(t.names, name)
		t.cols = append(t.cols, []string{})
	}
	return t, nil
}

// Names returns the column names in order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return len(t.cols[0])
}

// Has reports whether a column with the given name exists.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Require returns an error naming the first missing column, or nil if all
// are present. Used by the pipeline to reject sheets with missing headers
// before any computation starts.
func (t *Table) Require(names ...string) error {
	for _, name := range names {
		if !t.Has(name) {
			return fmt.Errorf("missing required column %q", name)
		}
	}
	return nil
}

// AppendRow appends one row. The number of values must match the number of
// columns.
func (t *Table) AppendRow(values ...string) error {
	if len(values) != len(t.names) {
		return fmt.Errorf("row has %d values, table has %d columns", len(values), len(t.names))
	}
	for i, v := range values {
		t.cols[i] = append(t.cols[i], v)
	}
	return nil
}

// AddColumn appends a derived column. The values must match the current row
// count and the name must not collide with an existing column.
func (t *Table) AddColumn(name string, values []string) error {
	if _, exists := t.index[name]; exists {
		return fmt.Errorf("column %q already exists", name)
	}
	if len(values) != t.NumRows() {
		return fmt.Errorf("column %q has %d values, table has %d rows", name, len(values), t.NumRows())
	}
	col := make([]string, len(values))
	copy(col, values)
	t.index[name] = len(t.names)
	t.names = append(t.names, name)
	t.cols = append(t.cols, col)
	return nil
}

// Strings returns the raw cell values of a column.
func (t *Table) Strings(name string) ([]string, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("no such column %q", name)
	}
	out := make([]string, len(t.cols[i]))
	copy(out, t.cols[i])
	return out, nil
}

// Value returns the raw cell at (column, row).
func (t *Table) Value(name string, row int) (string, error) {
	i, ok := t.index[name]
	if !ok {
		return "", fmt.Errorf("no such column %q", name)
	}
	if row < 0 || row >= len(t.cols[i]) {
		return "", fmt.Errorf("row %d out of range for column %q", row, name)
	}
	return t.cols[i][row], nil
}

// Floats parses a column as float64 values. Any cell that does not parse is
// reported with its column and 1-based row position.
func (t *Table) Floats(name string) ([]float64, error) {
	raw, err := t.Strings(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(raw))
	for i, cell := range raw {
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: non-numeric value %q", name, i+1, cell)
		}
		out[i] = v
	}
	return out, nil
}

// Ints parses a column as integers. Whole-valued floats (e.g. "10.0", as
// spreadsheet cells often round-trip) are accepted.
func (t *Table) Ints(name string) ([]int, error) {
	raw, err := t.Strings(name)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(raw))
	for i, cell := range raw {
		trimmed := strings.TrimSpace(cell)
		if n, err := strconv.Atoi(trimmed); err == nil {
			out[i] = n
			continue
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || f != float64(int(f)) {
			return nil, fmt.Errorf("column %q row %d: non-integer value %q", name, i+1, cell)
		}
		out[i] = int(f)
	}
	return out, nil
}

// SortBy stably reorders all rows by the given column in ascending
// lexicographic order. Ties keep their current relative order.
func (t *Table) SortBy(name string) error {
	i, ok := t.index[name]
	if !ok {
		return fmt.Errorf("no such column %q", name)
	}
	order := make([]int, t.NumRows())
	for r := range order {
		order[r] = r
	}
	key := t.cols[i]
	sort.SliceStable(order, func(a, b int) bool {
		return key[order[a]] < key[order[b]]
	})
	for c := range t.cols {
		src := t.cols[c]
		dst := make([]string, len(src))
		for r, o := range order {
			dst[r] = src[o]
		}
		t.cols[c] = dst
	}
	return nil
}

// Row returns the raw cells of one row in column order.
func (t *Table) Row(row int) ([]string, error) {
	if row < 0 || row >= t.NumRows() {
		return nil, fmt.Errorf("row %d out of range", row)
	}
	out := make([]string, len(t.cols))
	for c := range t.cols {
		out[c] = t.cols[c][row]
	}
	return out, nil
}
