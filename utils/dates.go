package utils

import (
	"math"
	"time"

	"github.com/mohamedbgr31/luxury-car-rental-sub001/models"
)

// DayFormat is the wire format for calendar days and unavailable-range bounds.
const DayFormat = "2006-01-02"

// RentalZone is the single time zone all calendar-day math happens in. The
// fleet operates out of Dubai, so a "day" is a Gulf Standard Time day no
// matter where the viewer is.
var RentalZone = loadRentalZone()

func loadRentalZone() *time.Location {
	if loc, err := time.LoadLocation("Asia/Dubai"); err == nil {
		return loc
	}
	return time.FixedZone("GST", 4*60*60)
}

// DayOf strips the time of day: midnight in RentalZone.
func DayOf(t time.Time) time.Time {
	t = t.In(RentalZone)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, RentalZone)
}

// ParseDay parses a "2006-01-02" string as midnight in RentalZone.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DayFormat, s, RentalZone)
}

// StrictlyBetween reports whether date falls strictly between start and end,
// comparing calendar days only.
func StrictlyBetween(date, start, end time.Time) bool {
	d, s, e := DayOf(date), DayOf(start), DayOf(end)
	return d.After(s) && d.Before(e)
}

// IsDateExcluded reports whether date falls inside any [from, to] range,
// bounds inclusive. Entries with a missing or unparseable bound are skipped.
func IsDateExcluded(date time.Time, ranges []models.DateRange) bool {
	d := DayOf(date)
	for _, r := range ranges {
		if r.From == "" || r.To == "" {
			continue
		}
		from, errFrom := ParseDay(r.From)
		if errFrom != nil {
			continue
		}
		to, errTo := ParseDay(r.To)
		if errTo != nil {
			continue
		}
		if !d.Before(from) && !d.After(to) {
			return true
		}
	}
	return false
}

// InclusiveDayCount returns ceil((end-start)/24h), clamped to zero. Partial
// days round up: a 36 hour span bills as 2 days.
func InclusiveDayCount(start, end time.Time) int {
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}
