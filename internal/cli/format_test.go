package cli

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"2.5", "$2.50"},
		{"1985", "$1,985.00"},
		{"1234567.891", "$1,234,567.89"},
		{"-9.5", "-$9.50"},
		{"-0.001", "$0.00"},
		{"-0.005", "-$0.01"},
	}
	for _, tt := range tests {
		if got := FormatPrice(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Errorf("FormatPrice(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatSigned(t *testing.T) {
	if got := FormatSigned(decimal.NewFromInt(1)); got != "+$1.00" {
		t.Errorf("FormatSigned(1) = %q", got)
	}
	if got := FormatSigned(decimal.RequireFromString("0.001")); got != "$0.00" {
		t.Errorf("FormatSigned(0.001) = %q, want $0.00", got)
	}
	if got := FormatSigned(decimal.NewFromInt(-2)); got != "-$2.00" {
		t.Errorf("FormatSigned(-2) = %q", got)
	}
	if got := FormatSigned(decimal.Zero); got != "$0.00" {
		t.Errorf("FormatSigned(0) = %q", got)
	}
}

func TestDifferenceText(t *testing.T) {
	tests := []struct {
		diff string
		want string
	}{
		{"5", "You are saving $5.00"},
		{"-3.25", "You are spending $3.25 more"},
		{"0", "Same cost as the starting list"},
	}
	for _, tt := range tests {
		if got := DifferenceText(decimal.RequireFromString(tt.diff)); got != tt.want {
			t.Errorf("DifferenceText(%s) = %q, want %q", tt.diff, got, tt.want)
		}
	}
}

func TestTotalSavingsText(t *testing.T) {
	if got := TotalSavingsText(decimal.NewFromInt(-4)); got != "We haven't saved anything yet, but we're just getting started." {
		t.Errorf("overspend text = %q", got)
	}
	if got := TotalSavingsText(decimal.NewFromInt(12)); got != "Together we saved $12.00 across all lists!" {
		t.Errorf("savings text = %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.425); got != "42%" && got != "43%" {
		t.Errorf("FormatPercent(0.425) = %q", got)
	}
	if got := FormatPercent(1); got != "100%" {
		t.Errorf("FormatPercent(1) = %q", got)
	}
}
