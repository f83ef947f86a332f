package utils

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"AED 12,500", 12500},
		{"$800", 800},
		{"1,200", 1200},
		{"950.50", 950.50},
		{"", 0},
		{"call us", 0},
		{"N/A", 0},
	}
	for _, tc := range cases {
		if got := ParseAmount(tc.in); got != tc.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		currency string
		amount   float64
		want     string
	}{
		{"AED", 12500, "AED 12,500"},
		{"AED", 800, "AED 800"},
		{"", 1200, "1,200"},
		{"USD", 1234567, "USD 1,234,567"},
		{"AED", -120, "AED -120"},
		{"", -1200, "-1,200"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.currency, tc.amount); got != tc.want {
			t.Errorf("FormatAmount(%q, %v) = %q, want %q", tc.currency, tc.amount, got, tc.want)
		}
	}
}

func TestRentalPriceDaily(t *testing.T) {
	rates := RentalRates{Daily: 1200, Weekly: 7000, Monthly: 25000}

	if got := RentalPrice(3, RentalTypeDaily, rates); got != 3600 {
		t.Errorf("3 daily days: got %v, want 3600", got)
	}
	if got := RentalPrice(0, RentalTypeDaily, rates); got != 0 {
		t.Errorf("zero days must price to zero, got %v", got)
	}
	if got := RentalPrice(-2, RentalTypeMonthly, rates); got != 0 {
		t.Errorf("negative days must price to zero, got %v", got)
	}
}

func TestRentalPriceNeverProrates(t *testing.T) {
	rates := RentalRates{Daily: 1200, Weekly: 7000, Monthly: 25000}

	// A single day at the weekly rate still bills a full week
	if got := RentalPrice(1, RentalTypeWeekly, rates); got != 7000 {
		t.Errorf("1 weekly day: got %v, want 7000", got)
	}
	if got := RentalPrice(8, RentalTypeWeekly, rates); got != 14000 {
		t.Errorf("8 weekly days: got %v, want 14000", got)
	}
	if got := RentalPrice(14, RentalTypeWeekly, rates); got != 14000 {
		t.Errorf("14 weekly days: got %v, want 14000", got)
	}
	if got := RentalPrice(31, RentalTypeMonthly, rates); got != 50000 {
		t.Errorf("31 monthly days: got %v, want 50000", got)
	}
	if got := RentalPrice(30, RentalTypeMonthly, rates); got != 25000 {
		t.Errorf("30 monthly days: got %v, want 25000", got)
	}
}
