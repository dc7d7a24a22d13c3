// =============================================================================
// Sales Report Generator - Metric Pipeline
// =============================================================================
//
// Orchestrates the joiner and aggregator to compute the four result series:
//   1. Revenue by salesperson (sum, sorted descending)
//   2. Profit by salesperson (sum, sorted descending)
//   3. Average discount by item (mean, sorted descending)
//   4. Stock left by item (inventory-driven, sorted by item name)
//
// Step order matters: Sale Revenue must exist before Sale Profit is derived,
// and both money columns are floor-rounded per row before aggregation so
// that group totals equal the sum of the truncated cent values.
//
// =============================================================================

package report

import "github.com/linkresults/report-generator/internal/table"

// Column names expected in the input sheets. Matching is exact.
const (
	colItemCode    = "Item Code"
	colSalesperson = "Sales Person"
	colQuantity    = "Quantity Sold"
	colSalePrice   = "Sale Price"
	colDiscount    = "Discount"

	colCode      = "Code"
	colItemName  = "Item Name"
	colCostPrice = "Cost Price"
	colStock     = "Stock"

	colRevenue = "Sale Revenue"
	colProfit  = "Sale Profit"
)

// Metrics is the full result set of one pipeline run.
type Metrics struct {
	RevenueBySalesperson  Series
	ProfitBySalesperson   Series
	AverageDiscountByItem Series
	StockByItem           []StockRow

	// DroppedTransactions counts sales rows that referenced an unknown item
	// code. They are excluded from every aggregate (silently, matching the
	// reference behavior); the count is a data-quality diagnostic only.
	DroppedTransactions int
}

// Compute runs the metric pipeline over the two parsed sheets. Any missing
// column, non-numeric cell, or empty sheet aborts the run; no partial
// metrics are returned.
func Compute(sales, inventory *table.Table) (*Metrics, error) {
	if err := sales.Require(colItemCode, colSalesperson, colQuantity, colSalePrice, colDiscount); err != nil {
		return nil, err
	}
	if err := inventory.Require(colCode, colItemName, colCostPrice, colStock); err != nil {
		return nil, err
	}

	// Step 1: enrich each sale with its inventory item.
	joined, err := Join(sales, inventory, colItemCode, colCode)
	if err != nil {
		return nil, err
	}
	enriched := joined.Table

	quantity, err := enriched.Floats(colQuantity)
	if err != nil {
		return nil, err
	}
	price, err := enriched.Floats(colSalePrice)
	if err != nil {
		return nil, err
	}
	discount, err := enriched.Floats(colDiscount)
	if err != nil {
		return nil, err
	}
	cost, err := enriched.Floats(colCostPrice)
	if err != nil {
		return nil, err
	}

	// Steps 2-3: per-row revenue and profit, truncated to cents before any
	// summing. Profit is derived from the already-truncated revenue.
	revenue := make([]float64, enriched.NumRows())
	profit := make([]float64, enriched.NumRows())
	for i := range revenue {
		revenue[i] = FloorCurrency(quantity[i] * price[i] * (1 - discount[i]))
		profit[i] = FloorCurrency(revenue[i] - cost[i]*quantity[i])
	}
	if err := enriched.AddColumn(colRevenue, centsColumn(revenue)); err != nil {
		return nil, err
	}
	if err := enriched.AddColumn(colProfit, centsColumn(profit)); err != nil {
		return nil, err
	}

	// Step 4: who brought in the most revenue, and the most profit.
	revenueBySalesperson, err := GroupReduce(enriched, colSalesperson, colRevenue, Sum)
	if err != nil {
		return nil, err
	}
	revenueBySalesperson.SortByValueDesc()

	profitBySalesperson, err := GroupReduce(enriched, colSalesperson, colProfit, Sum)
	if err != nil {
		return nil, err
	}
	profitBySalesperson.SortByValueDesc()

	// Step 5: most discounted item on average.
	averageDiscounts, err := GroupReduce(enriched, colItemName, colDiscount, Mean)
	if err != nil {
		return nil, err
	}
	averageDiscounts.SortByValueDesc()

	// Step 6: stock balances, driven by the inventory table so items with
	// no sales still appear with StockSold zero.
	soldByItem, err := GroupReduce(enriched, colItemName, colQuantity, Sum)
	if err != nil {
		return nil, err
	}
	stockByItem, err := StockBalances(inventory, soldByItem)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		RevenueBySalesperson:  revenueBySalesperson,
		ProfitBySalesperson:   profitBySalesperson,
		AverageDiscountByItem: averageDiscounts,
		StockByItem:           stockByItem,
		DroppedTransactions:   joined.DroppedRows,
	}, nil
}

func centsColumn(values []float64) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = formatCents(v)
	}
	return out
}
