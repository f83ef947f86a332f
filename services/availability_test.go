package services

import (
	"testing"
	"time"

	"github.com/mohamedbgr31/luxury-car-rental-sub001/models"
	"github.com/mohamedbgr31/luxury-car-rental-sub001/utils"
)

func carWithRanges(ranges []models.DateRange) *models.Car {
	car := &models.Car{Title: "Huracan"}
	car.SetUnavailableDateRanges(ranges)
	return car
}

func TestNearestAvailableDateSkipsBlockedDays(t *testing.T) {
	now := time.Date(2024, 6, 10, 14, 30, 0, 0, utils.RentalZone)
	today := utils.DayOf(now)

	// Block today through day 9; day 10 is the first free one
	car := carWithRanges([]models.DateRange{{
		From: today.Format(utils.DayFormat),
		To:   today.AddDate(0, 0, 9).Format(utils.DayFormat),
	}})

	date, ok := NearestAvailableDate(car, now)
	if !ok {
		t.Fatal("expected an available date inside the horizon")
	}
	want := today.AddDate(0, 0, 10)
	if !date.Equal(want) {
		t.Errorf("got %v, want %v", date, want)
	}
}

func TestNearestAvailableDateTodayWhenFree(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, utils.RentalZone)
	car := carWithRanges(nil)

	date, ok := NearestAvailableDate(car, now)
	if !ok {
		t.Fatal("unblocked car must have an available date")
	}
	if !date.Equal(utils.DayOf(now)) {
		t.Errorf("got %v, want today", date)
	}
}

func TestNearestAvailableDateHorizonExhausted(t *testing.T) {
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, utils.RentalZone)
	today := utils.DayOf(now)

	car := carWithRanges([]models.DateRange{{
		From: today.Format(utils.DayFormat),
		To:   today.AddDate(0, 0, AvailabilityHorizonDays+10).Format(utils.DayFormat),
	}})

	if _, ok := NearestAvailableDate(car, now); ok {
		t.Error("fully blocked horizon must report not found, not a date")
	}
}

func TestIsSelectable(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, utils.RentalZone)
	today := utils.DayOf(now)
	car := carWithRanges([]models.DateRange{{
		From: today.AddDate(0, 0, 3).Format(utils.DayFormat),
		To:   today.AddDate(0, 0, 5).Format(utils.DayFormat),
	}})

	if IsSelectable(today.AddDate(0, 0, -1), now, car, nil) {
		t.Error("yesterday must not be selectable")
	}
	if !IsSelectable(today, now, car, nil) {
		t.Error("today is free and must be selectable")
	}
	if IsSelectable(today.AddDate(0, 0, 4), now, car, nil) {
		t.Error("blocked day must not be selectable")
	}

	anchor := today.AddDate(0, 0, 1)
	if IsSelectable(anchor, now, car, &anchor) {
		t.Error("anchor day itself must not be selectable as the end date")
	}
	if !IsSelectable(today.AddDate(0, 0, 2), now, car, &anchor) {
		t.Error("free day after the anchor must be selectable")
	}
}

func TestRangeAvailable(t *testing.T) {
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, utils.RentalZone)
	today := utils.DayOf(now)
	car := carWithRanges([]models.DateRange{{
		From: today.AddDate(0, 0, 3).Format(utils.DayFormat),
		To:   today.AddDate(0, 0, 5).Format(utils.DayFormat),
	}})

	if !RangeAvailable(car, today, today.AddDate(0, 0, 2)) {
		t.Error("range ending before the block must be available")
	}
	if RangeAvailable(car, today, today.AddDate(0, 0, 3)) {
		t.Error("range touching the block's first day must be unavailable")
	}
	if RangeAvailable(car, today.AddDate(0, 0, 5), today.AddDate(0, 0, 7)) {
		t.Error("range starting on the block's last day must be unavailable")
	}
	if !RangeAvailable(car, today.AddDate(0, 0, 6), today.AddDate(0, 0, 8)) {
		t.Error("range after the block must be available")
	}
}
