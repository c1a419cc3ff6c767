package utils

import "testing"

func TestFormatINR(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "₹0"},
		{500, "₹500"},
		{5000, "₹5,000"},
		{10000, "₹10,000"},
		{125000, "₹1,25,000"},
		{12500000, "₹1,25,00,000"},
		{-18500, "-₹18,500"},
	}

	for _, tc := range cases {
		if got := FormatINR(tc.amount); got != tc.want {
			t.Errorf("FormatINR(%d) = %s, want %s", tc.amount, got, tc.want)
		}
	}
}

func TestRupeesToPaise(t *testing.T) {
	if got := RupeesToPaise(10000); got != 1000000 {
		t.Fatalf("RupeesToPaise(10000) = %d, want 1000000", got)
	}
}

func TestIsDigits(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"9876543210", true},
		{"0", true},
		{"", false},
		{"98765 4321", false},
		{"98765abc10", false},
		{"+919876543", false},
	}

	for _, tc := range cases {
		if got := IsDigits(tc.in); got != tc.want {
			t.Errorf("IsDigits(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
