package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FloorCurrency truncates a monetary value to two decimal places, rounding
// toward negative infinity: 19.999 becomes 19.99 and -0.001 becomes -0.01.
// This is truncation at the cent boundary, not round-to-nearest, and it is
// applied per row BEFORE any aggregation so that summed totals equal the sum
// of the displayed cent values.
func FloorCurrency(value float64) float64 {
	return math.Floor(value*100) / 100
}

// FormatCurrency renders a value as a dollar amount with thousands
// separators, e.g. 1234.5 -> "$1,234.50".
func FormatCurrency(value float64) string {
	neg := value < 0
	s := strconv.FormatFloat(math.Abs(value), 'f', 2, 64)
	whole, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	if neg {
		b.WriteString("-")
	}
	b.WriteString("$")
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(",")
		}
		b.WriteRune(digit)
	}
	b.WriteString(".")
	b.WriteString(frac)
	return b.String()
}

// formatCents renders a floored currency value back to its cell form with
// exactly two decimals, so derived money columns stay exact when re-parsed.
func formatCents(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}

func formatInt(value int) string {
	return fmt.Sprintf("%d", value)
}
