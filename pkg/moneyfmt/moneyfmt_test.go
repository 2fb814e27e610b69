package moneyfmt

import "testing"

func TestMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{1234.5, "$1234.50"},
		{0.155, "$0.15"},
		{-42.5, "-$42.50"},
	}

	for _, tt := range tests {
		if got := Money(tt.in); got != tt.want {
			t.Errorf("Money(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCompact(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{789.12, "$789.12"},
		{456_000, "$456.00K"},
		{1_230_000, "$1.23M"},
		{2_500_000_000, "$2.50B"},
		{-456_000, "-$456.00K"},
	}

	for _, tt := range tests {
		if got := Compact(tt.in); got != tt.want {
			t.Errorf("Compact(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{789, "789"},
		{456_000, "456.00K"},
		{1_230_000, "1.23M"},
		{2_500_000_000, "2.50B"},
		{-5, "-5"},
	}

	for _, tt := range tests {
		if got := Count(tt.in); got != tt.want {
			t.Errorf("Count(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
