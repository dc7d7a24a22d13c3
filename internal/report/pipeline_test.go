package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkresults/report-generator/internal/table"
)

// The reference scenario: one sale of 10 Widgets at $5.00 with a 10%
// discount, cost price $2.00, opening stock 100.
func TestCompute_ReferenceScenario(t *testing.T) {
	sales := salesFixture(t, []string{"1", "Alice", "10", "5.00", "0.1"})
	inventory := inventoryFixture(t, []string{"1", "Widget", "2.00", "100"})

	m, err := Compute(sales, inventory)
	require.NoError(t, err)

	require.Len(t, m.RevenueBySalesperson, 1)
	assert.Equal(t, "Alice", m.RevenueBySalesperson[0].Key)
	assert.InDelta(t, 45.00, m.RevenueBySalesperson[0].Value, 1e-9)

	require.Len(t, m.ProfitBySalesperson, 1)
	assert.InDelta(t, 25.00, m.ProfitBySalesperson[0].Value, 1e-9)

	require.Len(t, m.StockByItem, 1)
	assert.Equal(t, StockRow{ItemName: "Widget", Stock: 100, StockSold: 10, StockLeft: 90}, m.StockByItem[0])

	assert.Equal(t, 0, m.DroppedTransactions)
}

func TestCompute_UnmatchedTransactionContributesNothing(t *testing.T) {
	sales := salesFixture(t,
		[]string{"1", "Alice", "10", "5.00", "0.1"},
		[]string{"999", "Alice", "50", "100.00", "0"},
	)
	inventory := inventoryFixture(t, []string{"1", "Widget", "2.00", "100"})

	m, err := Compute(sales, inventory)
	require.NoError(t, err, "unmatched rows are not an error")
	assert.Equal(t, 1, m.DroppedTransactions)

	// The phantom $5000 sale is absent from every aggregate.
	assert.InDelta(t, 45.00, m.RevenueBySalesperson.Total(), 1e-9)
	assert.Equal(t, 10, m.StockByItem[0].StockSold)
}

func TestCompute_ItemWithNoSalesKeepsFullStock(t *testing.T) {
	sales := salesFixture(t, []string{"1", "Alice", "10", "5.00", "0.1"})
	inventory := inventoryFixture(t,
		[]string{"1", "Widget", "2.00", "100"},
		[]string{"2", "Anvil", "4.00", "50"},
	)

	m, err := Compute(sales, inventory)
	require.NoError(t, err)
	require.Len(t, m.StockByItem, 2)

	// Sorted by item name; Anvil sold nothing.
	assert.Equal(t, StockRow{ItemName: "Anvil", Stock: 50, StockSold: 0, StockLeft: 50}, m.StockByItem[0])
}

func TestCompute_RevenueAndProfitSortedDescending(t *testing.T) {
	sales := salesFixture(t,
		[]string{"1", "Alice", "1", "5.00", "0"},
		[]string{"1", "Bob", "10", "5.00", "0"},
		[]string{"1", "Carol", "4", "5.00", "0"},
	)
	inventory := inventoryFixture(t, []string{"1", "Widget", "2.00", "100"})

	m, err := Compute(sales, inventory)
	require.NoError(t, err)

	revenueOrder := []string{m.RevenueBySalesperson[0].Key, m.RevenueBySalesperson[1].Key, m.RevenueBySalesperson[2].Key}
	assert.Equal(t, []string{"Bob", "Carol", "Alice"}, revenueOrder)
	for i := 1; i < len(m.ProfitBySalesperson); i++ {
		assert.LessOrEqual(t, m.ProfitBySalesperson[i].Value, m.ProfitBySalesperson[i-1].Value)
	}
}

func TestCompute_AverageDiscountSortedDescending(t *testing.T) {
	sales := salesFixture(t,
		[]string{"1", "Alice", "1", "5.00", "0.1"},
		[]string{"2", "Alice", "1", "5.00", "0.5"},
		[]string{"2", "Alice", "1", "5.00", "0.3"},
	)
	inventory := inventoryFixture(t,
		[]string{"1", "Widget", "2.00", "100"},
		[]string{"2", "Anvil", "4.00", "50"},
	)

	m, err := Compute(sales, inventory)
	require.NoError(t, err)
	require.Len(t, m.AverageDiscountByItem, 2)
	assert.Equal(t, "Anvil", m.AverageDiscountByItem[0].Key)
	assert.InDelta(t, 0.4, m.AverageDiscountByItem[0].Value, 1e-9)
	assert.Equal(t, "Widget", m.AverageDiscountByItem[1].Key)
}

// Profit is derived from the already-floored revenue, and both columns are
// floored per row before the salesperson sums.
func TestCompute_RoundingOrderOfOperations(t *testing.T) {
	// 3 * 1.111 * (1 - 0.0) = 3.333 -> revenue floors to 3.33
	// profit = 3.33 - 1.111*3 = 3.33 - 3.333 = -0.003 -> floors to -0.01
	sales := salesFixture(t, []string{"1", "Alice", "3", "1.111", "0"})
	inventory := inventoryFixture(t, []string{"1", "Widget", "1.111", "100"})

	m, err := Compute(sales, inventory)
	require.NoError(t, err)
	assert.InDelta(t, 3.33, m.RevenueBySalesperson[0].Value, 1e-9)
	assert.InDelta(t, -0.01, m.ProfitBySalesperson[0].Value, 1e-9)
}

func TestCompute_MissingColumnFails(t *testing.T) {
	sales, err := table.New("Item Code", "Sales Person", "Quantity Sold", "Sale Price")
	require.NoError(t, err)
	require.NoError(t, sales.AppendRow("1", "Alice", "10", "5.00"))
	inventory := inventoryFixture(t, []string{"1", "Widget", "2.00", "100"})

	_, err = Compute(sales, inventory)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Discount")
}

func TestCompute_NonNumericCellFails(t *testing.T) {
	sales := salesFixture(t, []string{"1", "Alice", "ten", "5.00", "0.1"})
	inventory := inventoryFixture(t, []string{"1", "Widget", "2.00", "100"})

	_, err := Compute(sales, inventory)
	assert.Error(t, err)
}
