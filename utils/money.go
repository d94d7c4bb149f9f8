package utils

import "github.com/shopspring/decimal"

// FormatPrice renders an amount as dollars with two decimals, e.g. "$135.00".
func FormatPrice(amount float64) string {
	return "$" + decimal.NewFromFloat(amount).StringFixed(2)
}

// RoundPrice rounds half away from zero to cents.
func RoundPrice(amount float64) float64 {
	f, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return f
}
