package utils

import (
	"math"
	"strconv"
	"strings"
)

const (
	RentalTypeDaily   = "daily"
	RentalTypeWeekly  = "weekly"
	RentalTypeMonthly = "monthly"
)

// RentalRates holds a car's per-unit prices as numbers.
type RentalRates struct {
	Daily   float64
	Weekly  float64
	Monthly float64
}

// ParseAmount extracts the numeric value from a display price string such as
// "AED 12,500" or "$800": every character that is not a digit or a dot is
// stripped before parsing. Values that still fail to parse count as zero so a
// single bad row never aborts an aggregation.
func ParseAmount(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatAmount renders an amount the way prices are stored and displayed:
// currency code, space, thousands separated by commas ("AED 12,500").
// Fractional amounts keep two decimals.
func FormatAmount(currency string, amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	whole := int64(amount)
	frac := amount - float64(whole)

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	out := b.String()
	if frac > 0 {
		out += strconv.FormatFloat(frac, 'f', 2, 64)[1:]
	}
	if negative {
		out = "-" + out
	}
	if currency == "" {
		return out
	}
	return currency + " " + out
}

// RentalPrice computes the total under the selected unit policy. Units never
// prorate: a one-day weekly booking still bills a full week.
func RentalPrice(days int, rentalType string, rates RentalRates) float64 {
	if days <= 0 {
		return 0
	}
	switch rentalType {
	case RentalTypeWeekly:
		return math.Ceil(float64(days)/7) * rates.Weekly
	case RentalTypeMonthly:
		return math.Ceil(float64(days)/30) * rates.Monthly
	default:
		return float64(days) * rates.Daily
	}
}
