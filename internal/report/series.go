package report

import "sort"

// Point is one labeled value of a named series.
type Point struct {
	Key   string
	Value float64
}

// Series is an ordered mapping from a group key (salesperson or item name)
// to a numeric value. Order is meaningful: aggregation produces points in
// first-appearance order, and SortByValueDesc reorders deliberately. A
// Series is the unit handed to the chart renderer and report composer.
type Series []Point

// Total returns the sum of all values.
func (s Series) Total() float64 {
	var total float64
	for _, p := range s {
		total += p.Value
	}
	return total
}

// SortByValueDesc reorders the series strictly non-increasing by value.
// The sort is stable: equal values keep their first-appearance order.
func (s Series) SortByValueDesc() {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Value > s[j].Value
	})
}
