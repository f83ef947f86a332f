package services

import (
	"time"

	"github.com/mohamedbgr31/luxury-car-rental-sub001/models"
	"github.com/mohamedbgr31/luxury-car-rental-sub001/utils"
)

// AvailabilityHorizonDays bounds the forward scan for the next bookable day.
// Two years covers every realistic blackout a fleet car accumulates.
const AvailabilityHorizonDays = 730

// IsCarAvailable reports whether the car can be rented on the given calendar day.
func IsCarAvailable(date time.Time, car *models.Car) bool {
	return !utils.IsDateExcluded(date, car.UnavailableDateRanges())
}

// IsSelectable decides whether a calendar day may be picked in the booking
// flow: not in the past, not blocked, and when an anchor start date is already
// chosen the day must fall strictly after it. Today is selectable when
// available.
func IsSelectable(date, now time.Time, car *models.Car, anchor *time.Time) bool {
	day := utils.DayOf(date)
	if day.Before(utils.DayOf(now)) {
		return false
	}
	if !IsCarAvailable(day, car) {
		return false
	}
	if anchor != nil && !day.After(utils.DayOf(*anchor)) {
		return false
	}
	return true
}

// NearestAvailableDate scans forward from today (inclusive) and returns the
// first bookable day. The second return is false when the horizon is
// exhausted; callers surface that as "unavailable", never as an error.
func NearestAvailableDate(car *models.Car, now time.Time) (time.Time, bool) {
	ranges := car.UnavailableDateRanges()
	day := utils.DayOf(now)
	for i := 0; i < AvailabilityHorizonDays; i++ {
		if !utils.IsDateExcluded(day, ranges) {
			return day, true
		}
		day = day.AddDate(0, 0, 1)
	}
	return time.Time{}, false
}

// RangeAvailable reports whether every day in [from, to] inclusive is free.
func RangeAvailable(car *models.Car, from, to time.Time) bool {
	ranges := car.UnavailableDateRanges()
	end := utils.DayOf(to)
	for day := utils.DayOf(from); !day.After(end); day = day.AddDate(0, 0, 1) {
		if utils.IsDateExcluded(day, ranges) {
			return false
		}
	}
	return true
}
