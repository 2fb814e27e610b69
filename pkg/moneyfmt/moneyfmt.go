// Package moneyfmt provides human-readable formatting for currency
// amounts and counts in rendered reports.
package moneyfmt

import (
	"fmt"
	"strconv"
)

// Money formats a dollar amount with exactly two decimal places, sign
// before the currency symbol.
func Money(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%.2f", -v)
	}
	return fmt.Sprintf("$%.2f", v)
}

// Compact formats a dollar amount with a magnitude suffix.
// Examples: "$1.23M", "$456.00K", "$789.12".
func Compact(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	const (
		thousand = 1000.0
		million  = 1000 * thousand
		billion  = 1000 * million
	)

	switch {
	case v >= billion:
		return fmt.Sprintf("%s$%.2fB", sign, v/billion)
	case v >= million:
		return fmt.Sprintf("%s$%.2fM", sign, v/million)
	case v >= thousand:
		return fmt.Sprintf("%s$%.2fK", sign, v/thousand)
	default:
		return fmt.Sprintf("%s$%.2f", sign, v)
	}
}

// Count formats an integer count with a magnitude suffix.
// Examples: "1.23M", "456.00K", "789".
func Count(n int64) string {
	if n < 0 {
		return strconv.FormatInt(n, 10)
	}

	const (
		thousand = 1000
		million  = 1000 * thousand
		billion  = 1000 * million
	)

	switch {
	case n >= billion:
		return fmt.Sprintf("%.2fB", float64(n)/billion)
	case n >= million:
		return fmt.Sprintf("%.2fM", float64(n)/million)
	case n >= thousand:
		return fmt.Sprintf("%.2fK", float64(n)/thousand)
	default:
		return strconv.FormatInt(n, 10)
	}
}
