package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MillionScale is the divisor used for every displayed amount.
var MillionScale = decimal.NewFromInt(1_000_000)

// Display precision for amounts shown in millions.
const (
	CardPlaces   int32 = 1
	DetailPlaces int32 = 2
)

// CurrencyUnit is appended to totals.
const CurrencyUnit = "mln ₽"

// FormatMillions divides amount by one million and renders exactly places
// decimals. Rounding is half away from zero.
func FormatMillions(amount decimal.Decimal, places int32) string {
	return amount.Div(MillionScale).StringFixed(places)
}

// FormatPercent renders a share with one decimal, e.g. "53.6%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
