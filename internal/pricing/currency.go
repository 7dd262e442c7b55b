package pricing

import "github.com/shopspring/decimal"

// FormatCurrency renders an amount with exactly two fractional digits:
// 1.2 -> "1.20", 1.25 -> "1.25", 5 -> "5.00". No currency symbol is added;
// callers prepend "$" when composing display text.
func FormatCurrency(value decimal.Decimal) string {
	return value.StringFixed(2)
}
