package utils

import (
	"testing"
	"time"

	"github.com/mohamedbgr31/luxury-car-rental-sub001/models"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDay(s)
	if err != nil {
		t.Fatalf("ParseDay(%q): %v", s, err)
	}
	return d
}

func TestIsDateExcluded(t *testing.T) {
	ranges := []models.DateRange{{From: "2024-06-10", To: "2024-06-15"}}

	if !IsDateExcluded(day(t, "2024-06-12"), ranges) {
		t.Error("2024-06-12 should be excluded, it is inside the range")
	}
	if !IsDateExcluded(day(t, "2024-06-10"), ranges) {
		t.Error("range start should be excluded, bounds are inclusive")
	}
	if !IsDateExcluded(day(t, "2024-06-15"), ranges) {
		t.Error("range end should be excluded, bounds are inclusive")
	}
	if IsDateExcluded(day(t, "2024-06-16"), ranges) {
		t.Error("2024-06-16 is after the range, should not be excluded")
	}
	if IsDateExcluded(day(t, "2024-06-09"), ranges) {
		t.Error("2024-06-09 is before the range, should not be excluded")
	}
}

func TestIsDateExcludedSkipsMalformedEntries(t *testing.T) {
	ranges := []models.DateRange{
		{From: "", To: "2024-06-15"},
		{From: "not-a-date", To: "2024-06-15"},
		{From: "2024-06-20", To: "2024-06-21"},
	}

	if IsDateExcluded(day(t, "2024-06-12"), ranges) {
		t.Error("malformed entries must be skipped, not treated as matches")
	}
	if !IsDateExcluded(day(t, "2024-06-20"), ranges) {
		t.Error("well-formed entry after malformed ones must still match")
	}
}

func TestStrictlyBetween(t *testing.T) {
	start := day(t, "2024-06-10")
	end := day(t, "2024-06-15")

	if !StrictlyBetween(day(t, "2024-06-12"), start, end) {
		t.Error("2024-06-12 is strictly between")
	}
	if StrictlyBetween(start, start, end) {
		t.Error("start bound is not strictly between")
	}
	if StrictlyBetween(end, start, end) {
		t.Error("end bound is not strictly between")
	}
}

func TestInclusiveDayCount(t *testing.T) {
	start := day(t, "2024-06-10")

	cases := []struct {
		name string
		end  time.Time
		want int
	}{
		{"same instant", start, 0},
		{"one day", start.Add(24 * time.Hour), 1},
		{"partial day rounds up", start.Add(36 * time.Hour), 2},
		{"five days", day(t, "2024-06-15"), 5},
		{"end before start clamps to zero", start.Add(-48 * time.Hour), 0},
	}
	for _, tc := range cases {
		if got := InclusiveDayCount(start, tc.end); got != tc.want {
			t.Errorf("%s: got %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestDayOfNormalizesToRentalZone(t *testing.T) {
	// 22:00 UTC is already the next day in Dubai
	utc := time.Date(2024, 6, 10, 22, 0, 0, 0, time.UTC)
	got := DayOf(utc)
	want := day(t, "2024-06-11")
	if !got.Equal(want) {
		t.Errorf("DayOf(%v) = %v, want %v", utc, got, want)
	}
}
