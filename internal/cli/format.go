// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatPrice formats a USD amount with two decimals and comma separators.
// e.g., 2.5 -> "$2.50", 1985 -> "$1,985.00", -9.5 -> "-$9.50"
func FormatPrice(d decimal.Decimal) string {
	d = d.Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}

	fixed := d.Abs().StringFixed(2)
	whole, cents, _ := strings.Cut(fixed, ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return sign + "$" + fixed
	}
	return sign + "$" + FormatNumber(n) + "." + cents
}

// FormatSigned formats an amount with an explicit sign, e.g. "+$1.00".
func FormatSigned(d decimal.Decimal) string {
	if d.Round(2).IsPositive() {
		return "+" + FormatPrice(d)
	}
	return FormatPrice(d)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// DifferenceText describes a single list's difference in plain words.
func DifferenceText(diff decimal.Decimal) string {
	switch {
	case diff.IsPositive():
		return "You are saving " + FormatPrice(diff)
	case diff.IsNegative():
		return "You are spending " + FormatPrice(diff.Abs()) + " more"
	default:
		return "Same cost as the starting list"
	}
}

// TotalSavingsText describes the cross-list total on the summary screen.
func TotalSavingsText(total decimal.Decimal) string {
	if !total.IsPositive() {
		return "We haven't saved anything yet, but we're just getting started."
	}
	return "Together we saved " + FormatPrice(total) + " across all lists!"
}
