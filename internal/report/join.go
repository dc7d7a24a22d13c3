// =============================================================================
// Sales Report Generator - Joiner
// =============================================================================
//
// Inner-joins the sales transaction table to the inventory master table on
// the item-code foreign key, producing the enriched table the metric pipeline
// aggregates over. The enriched table exists only for the duration of one
// report run; it is never persisted.
//
// =============================================================================

package report

import (
	"fmt"

	"github.com/linkresults/report-generator/internal/table"
)

// JoinResult carries the enriched table plus join diagnostics.
type JoinResult struct {
	// Table is the enriched transaction table: every left column followed by
	// every right column except the right join key (the key is already
	// present on the left side).
	Table *table.Table

	// DroppedRows counts left rows with no matching right key. These rows
	// are dropped silently and contribute to no downstream aggregate; the
	// count is exposed as an optional data-quality diagnostic.
	DroppedRows int
}

// Join performs an inner join of left onto right, matching left[keyLeft]
// against right[keyRight] by exact cell equality.
//
// Left rows without a match are dropped (silently, apart from the diagnostic
// count). If a right key value is duplicated, every match is kept, so one
// left row can expand into several enriched rows. Both behaviors mirror the
// reference pipeline.
func Join(left, right *table.Table, keyLeft, keyRight string) (*JoinResult, error) {
	leftKeys, err := left.Strings(keyLeft)
	if err != nil {
		return nil, fmt.Errorf("join: %w", err)
	}
	rightKeys, err := right.Strings(keyRight)
	if err != nil {
		return nil, fmt.Errorf("join: %w", err)
	}

	// Index right rows by key value. Duplicate keys keep all row indices.
	matches := make(map[string][]int, len(rightKeys))
	for i, k := range rightKeys {
		matches[k] = append(matches[k], i)
	}

	var rightNames []string
	for _, name := range right.Names() {
		if name == keyRight {
			continue
		}
		if left.Has(name) {
			return nil, fmt.Errorf("join: column %q exists in both tables", name)
		}
		rightNames = append(rightNames, name)
	}

	joined, err := table.New(append(left.Names(), rightNames...)...)
	if err != nil {
		return nil, fmt.Errorf("join: %w", err)
	}

	dropped := 0
	for l := 0; l < left.NumRows(); l++ {
		rows, ok := matches[leftKeys[l]]
		if !ok {
			dropped++
			continue
		}
		leftRow, err := left.Row(l)
		if err != nil {
			return nil, fmt.Errorf("join: %w", err)
		}
		for _, r := range rows {
			cells := make([]string, 0, len(leftRow)+len(rightNames))
			cells = append(cells, leftRow...)
			for _, name := range rightNames {
				v, err := right.Value(name, r)
				if err != nil {
					return nil, fmt.Errorf("join: %w", err)
				}
				cells = append(cells, v)
			}
			if err := joined.AppendRow(cells...); err != nil {
				return nil, fmt.Errorf("join: %w", err)
			}
		}
	}

	return &JoinResult{Table: joined, DroppedRows: dropped}, nil
}
