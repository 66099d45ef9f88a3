package util

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var moneyPrinter = message.NewPrinter(language.Thai)

// FormatMoney renders an amount the way the old vouchers did
// (toLocaleString): thousands separators, decimals only when present,
// at most two fraction digits.
func FormatMoney(v float64) string {
	if v == math.Trunc(v) {
		return moneyPrinter.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(0)))
	}
	return moneyPrinter.Sprintf("%v", number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatWeight renders a weight without grouping, trimming a trailing
// zero fraction (12.5 -> "12.5", 12 -> "12").
func FormatWeight(v float64) string {
	if v == math.Trunc(v) {
		return moneyPrinter.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(0), number.NoSeparator()))
	}
	return moneyPrinter.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(2), number.NoSeparator()))
}
