package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkresults/report-generator/internal/table"
)

func TestGroupReduce_SumInFirstSeenOrder(t *testing.T) {
	tbl, err := table.New("Sales Person", "Sale Revenue")
	require.NoError(t, err)
	require.NoError(t, tbl.AppendRow("Bob", "10.00"))
	require.NoError(t, tbl.AppendRow("Alice", "5.00"))
	require.NoError(t, tbl.AppendRow("Bob", "2.50"))

	got, err := GroupReduce(tbl, "Sales Person", "Sale Revenue", Sum)
	require.NoError(t, err)
	assert.Equal(t, Series{
		{Key: "Bob", Value: 12.50},
		{Key: "Alice", Value: 5.00},
	}, got)
}

func TestGroupReduce_Mean(t *testing.T) {
	tbl, err := table.New("Item Name", "Discount")
	require.NoError(t, err)
	require.NoError(t, tbl.AppendRow("Widget", "0.1"))
	require.NoError(t, tbl.AppendRow("Widget", "0.3"))
	require.NoError(t, tbl.AppendRow("Anvil", "0.5"))

	got, err := GroupReduce(tbl, "Item Name", "Discount", Mean)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.InDelta(t, 0.2, got[0].Value, 1e-9)
	assert.Equal(t, "Widget", got[0].Key)
	assert.InDelta(t, 0.5, got[1].Value, 1e-9)
}

func TestGroupReduce_NonNumericValueColumn(t *testing.T) {
	tbl, err := table.New("Sales Person", "Sale Revenue")
	require.NoError(t, err)
	require.NoError(t, tbl.AppendRow("Alice", "not money"))

	_, err = GroupReduce(tbl, "Sales Person", "Sale Revenue", Sum)
	assert.Error(t, err)
}

// Monetary totals must equal the sum of the per-row truncated values, not
// the truncation of the raw sum: three rows of 10.004 floor to 10.00 each
// and sum to 30.00, where floor(30.012) would have been 30.01.
func TestGroupReduce_TruncateBeforeSumSemantics(t *testing.T) {
	tbl, err := table.New("Sales Person", "Sale Revenue")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, tbl.AppendRow("Alice", formatCents(FloorCurrency(10.004))))
	}

	got, err := GroupReduce(tbl, "Sales Person", "Sale Revenue", Sum)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.InDelta(t, 30.00, got[0].Value, 1e-9)
}

func TestSeries_SortByValueDescIsStable(t *testing.T) {
	s := Series{
		{Key: "Carol", Value: 5},
		{Key: "Alice", Value: 10},
		{Key: "Bob", Value: 5},
	}
	s.SortByValueDesc()

	assert.Equal(t, Series{
		{Key: "Alice", Value: 10},
		{Key: "Carol", Value: 5},
		{Key: "Bob", Value: 5},
	}, s, "ties keep first-seen order")

	for i := 1; i < len(s); i++ {
		assert.LessOrEqual(t, s[i].Value, s[i-1].Value, "strictly non-increasing")
	}
}

func TestStockBalances(t *testing.T) {
	inventory, err := table.New("Code", "Item Name", "Cost Price", "Stock")
	require.NoError(t, err)
	require.NoError(t, inventory.AppendRow("1", "Widget", "2.00", "100"))
	require.NoError(t, inventory.AppendRow("2", "Anvil", "4.00", "50"))
	require.NoError(t, inventory.AppendRow("3", "Sprocket", "1.00", "25"))

	soldByItem := Series{
		{Key: "Widget", Value: 10},
		{Key: "Anvil", Value: 5},
		// Sprocket had no sales.
	}

	rows, err := StockBalances(inventory, soldByItem)
	require.NoError(t, err)
	require.Len(t, rows, 3, "every inventory item appears, sold or not")

	// Sorted by item name.
	assert.Equal(t, []StockRow{
		{ItemName: "Anvil", Stock: 50, StockSold: 5, StockLeft: 45},
		{ItemName: "Sprocket", Stock: 25, StockSold: 0, StockLeft: 25},
		{ItemName: "Widget", Stock: 100, StockSold: 10, StockLeft: 90},
	}, rows)

	for _, r := range rows {
		assert.Equal(t, r.Stock-r.StockSold, r.StockLeft)
	}
}
