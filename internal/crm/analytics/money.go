package analytics

import "github.com/shopspring/decimal"

// sumOf adds currency amounts in decimal so long runs of satang values do not
// drift the way float64 accumulation does.
func sumOf[T any](items []T, amount func(T) float64) float64 {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(decimal.NewFromFloat(amount(item)))
	}
	return total.InexactFloat64()
}

// ratio divides a by b, returning 0 when b is zero.
func ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return decimal.NewFromFloat(a).Div(decimal.NewFromFloat(b)).InexactFloat64()
}

func percent(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b * 100
}
