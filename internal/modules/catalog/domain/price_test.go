package domain

import (
	"math"
	"testing"
)

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		name     string
		amount   float64
		expected string
	}{
		{name: "fraction", amount: 3.5, expected: "3,50 EUR"},
		{name: "integer", amount: 10, expected: "10,00 EUR"},
		{name: "zero", amount: 0, expected: "0,00 EUR"},
		{name: "cent rounding", amount: 4.995, expected: "5,00 EUR"},
		{name: "two decimals", amount: 7.25, expected: "7,25 EUR"},
		{name: "negative clamps", amount: -2.5, expected: "0,00 EUR"},
		{name: "nan clamps", amount: math.NaN(), expected: "0,00 EUR"},
		{name: "infinity clamps", amount: math.Inf(1), expected: "0,00 EUR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatPrice(tc.amount); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}
