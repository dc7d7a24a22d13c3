// =============================================================================
// Sales Report Generator - Aggregator
// =============================================================================
//
// Groups the enriched transaction table by a categorical column and reduces
// one numeric column per group (sum or mean). Group order in the result is
// the insertion order of first appearance, which downstream sorts rely on
// for stable tie-breaking.
//
// =============================================================================

package report

import (
	"fmt"

	"github.com/linkresults/report-generator/internal/table"
)

// Reducer selects how grouped values are reduced.
type Reducer int

const (
	// Sum adds all values in a group.
	Sum Reducer = iota
	// Mean averages all values in a group.
	Mean
)

// GroupReduce groups t by the groupKey column and reduces the valueKey
// column per group. Points appear in first-seen group order.
func GroupReduce(t *table.Table, groupKey, valueKey string, reduce Reducer) (Series, error) {
	keys, err := t.Strings(groupKey)
	if err != nil {
		return nil, fmt.Errorf("group by %q: %w", groupKey, err)
	}
	values, err := t.Floats(valueKey)
	if err != nil {
		return nil, fmt.Errorf("reduce %q: %w", valueKey, err)
	}

	type group struct {
		sum   float64
		count int
	}
	var order []string
	groups := make(map[string]*group, 16)
	for i, key := range keys {
		g, seen := groups[key]
		if !seen {
			g = &group{}
			groups[key] = g
			order = append(order, key)
		}
		g.sum += values[i]
		g.count++
	}

	out := make(Series, 0, len(order))
	for _, key := range order {
		g := groups[key]
		v := g.sum
		if reduce == Mean {
			v = g.sum / float64(g.count)
		}
		out = append(out, Point{Key: key, Value: v})
	}
	return out, nil
}

// StockRow is one line of the stock balance result: inventory position after
// subtracting everything sold.
type StockRow struct {
	ItemName  string
	Stock     int
	StockSold int
	StockLeft int
}

// StockBalances derives per-item stock balances. The inventory table drives
// the result: every inventory item appears exactly once, sorted by item
// name, and an item with no matching sales has StockSold zero rather than
// being dropped. The inventory table is row-sorted in place.
//
// Quantity-sold figures are merged onto inventory rows by item name, an
// explicit key-based merge instead of the positional alignment the reference
// pipeline used. The observable result is identical; the ordering dependency
// between the two series is gone.
func StockBalances(inventory *table.Table, soldByItem Series) ([]StockRow, error) {
	if err := inventory.Require(colItemName, colStock); err != nil {
		return nil, err
	}
	if err := inventory.SortBy(colItemName); err != nil {
		return nil, err
	}
	names, err := inventory.Strings(colItemName)
	if err != nil {
		return nil, err
	}
	stock, err := inventory.Ints(colStock)
	if err != nil {
		return nil, err
	}

	sold := make(map[string]int, len(soldByItem))
	for _, p := range soldByItem {
		sold[p.Key] = int(p.Value)
	}

	rows := make([]StockRow, len(names))
	for i, name := range names {
		rows[i] = StockRow{
			ItemName:  name,
			Stock:     stock[i],
			StockSold: sold[name],
			StockLeft: stock[i] - sold[name],
		}
	}
	return rows, nil
}
