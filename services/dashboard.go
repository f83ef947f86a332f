package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/mohamedbgr31/luxury-car-rental-sub001/models"
	"github.com/mohamedbgr31/luxury-car-rental-sub001/utils"

	"golang.org/x/exp/slices"
)

const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
	PeriodAll   = "all"
)

// ValidPeriod reports whether the period selector is one of the known values.
func ValidPeriod(period string) bool {
	switch period {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodYear, PeriodAll:
		return true
	}
	return false
}

type SeriesPoint struct {
	Bucket   string  `json:"bucket"`
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
}

type TopCar struct {
	CarID    string `json:"carID"`
	CarName  string `json:"carName"`
	Accepted int    `json:"accepted"`
}

type FleetCar struct {
	CarID uint   `json:"carID"`
	Title string `json:"title"`
	State string `json:"state"` // Available | Booked
}

type DashboardSnapshot struct {
	Period        string        `json:"period"`
	TotalBookings int64         `json:"totalBookings"`
	BookingGrowth int           `json:"bookingGrowth"`
	ActiveRentals int           `json:"activeRentals"`
	TotalRevenue  float64       `json:"totalRevenue"`
	RevenueGrowth int           `json:"revenueGrowth"`
	Series        []SeriesPoint `json:"series"`
	TopCars       []TopCar      `json:"topCars"`
	Fleet         []FleetCar    `json:"fleet"`
	AvailableCars int           `json:"availableCars"`
}

// periodWindow resolves [start, now) plus the equal-length window immediately
// preceding it. For "all" both windows start at the epoch, which makes growth
// meaningless; the zero-baseline convention in growthPercent turns that into
// a flat 100%.
func periodWindow(period string, now time.Time) (start, prevStart time.Time) {
	switch period {
	case PeriodToday:
		start = utils.DayOf(now)
	case PeriodWeek:
		start = now.AddDate(0, 0, -7)
	case PeriodMonth:
		start = now.AddDate(0, -1, 0)
	case PeriodYear:
		start = now.AddDate(-1, 0, 0)
	default: // all
		start = time.Unix(0, 0)
		return start, start
	}
	prevStart = start.Add(-now.Sub(start))
	return start, prevStart
}

// growthPercent keeps the zero-baseline convention: any current value against
// an empty previous window reads as 100% growth, including 0 vs 0.
func growthPercent(current, previous float64) int {
	if previous == 0 {
		return 100
	}
	return int(math.Round((current - previous) / previous * 100))
}

// bucketKey groups a booking into the chart series: hour of day for "today",
// month for "year", calendar day otherwise. All three formats sort
// chronologically under a plain lexical sort.
func bucketKey(period string, t time.Time) string {
	t = t.In(utils.RentalZone)
	switch period {
	case PeriodToday:
		return fmt.Sprintf("%02d:00", t.Hour())
	case PeriodYear:
		return t.Format("2006-01")
	default:
		return t.Format("2006-01-02")
	}
}

// requestCarKey groups requests per car: by id when one is stored, by the
// display name for legacy rows that never carried an id.
func requestCarKey(r *models.RentalRequest) string {
	if r.CarID != nil && *r.CarID != 0 {
		return "#" + strconv.FormatUint(uint64(*r.CarID), 10)
	}
	return r.CarName
}

func requestMatchesCar(r *models.RentalRequest, car *models.Car) bool {
	if r.CarID != nil && *r.CarID == car.ID {
		return true
	}
	return r.CarName != "" && r.CarName == car.Title
}

// isActiveRental reports whether the accepted request's [DateFrom, DateTo]
// range covers today, both ends inclusive.
func isActiveRental(r *models.RentalRequest, now time.Time) bool {
	if r.DateFrom.IsZero() || r.DateTo.IsZero() {
		return false
	}
	day := utils.DayOf(now)
	return !day.Before(utils.DayOf(r.DateFrom)) && !day.After(utils.DayOf(r.DateTo))
}

// BuildDashboard computes the admin dashboard snapshot from loaded rows. It is
// pure: "now" is injected so the window math is deterministic and testable.
func BuildDashboard(period string, now time.Time, requests []models.RentalRequest, cars []models.Car) *DashboardSnapshot {
	start, prevStart := periodWindow(period, now)

	snapshot := &DashboardSnapshot{Period: period}

	var prevBookings int64
	var revenue, prevRevenue float64

	buckets := map[string]*SeriesPoint{}

	type carGroup struct {
		key   string
		name  string
		count int
	}
	var groups []*carGroup
	groupIndex := map[string]*carGroup{}

	for i := range requests {
		r := &requests[i]
		ts := r.CreatedAt

		inWindow := !ts.Before(start)
		if inWindow {
			snapshot.TotalBookings++
		} else if !ts.Before(prevStart) {
			prevBookings++
		}

		if r.Status != models.RequestStatusAccepted {
			continue
		}

		if isActiveRental(r, now) {
			snapshot.ActiveRentals++
		}

		amount := utils.ParseAmount(r.TotalPrice)
		if !inWindow {
			if !ts.Before(prevStart) {
				prevRevenue += amount
			}
			continue
		}
		revenue += amount

		key := bucketKey(period, ts)
		point, ok := buckets[key]
		if !ok {
			point = &SeriesPoint{Bucket: key}
			buckets[key] = point
		}
		point.Revenue += amount
		point.Bookings++

		ck := requestCarKey(r)
		group, ok := groupIndex[ck]
		if !ok {
			name := r.CarName
			if name == "" && r.Car != nil {
				name = r.Car.Title
			}
			group = &carGroup{key: ck, name: name}
			groupIndex[ck] = group
			groups = append(groups, group)
		}
		group.count++
	}

	snapshot.TotalRevenue = revenue
	snapshot.BookingGrowth = growthPercent(float64(snapshot.TotalBookings), float64(prevBookings))
	snapshot.RevenueGrowth = growthPercent(revenue, prevRevenue)

	series := make([]SeriesPoint, 0, len(buckets))
	for _, p := range buckets {
		series = append(series, *p)
	}
	slices.SortFunc(series, func(a, b SeriesPoint) int {
		return strings.Compare(a.Bucket, b.Bucket)
	})
	snapshot.Series = series

	// Stable sort keeps first-encounter order between cars with equal counts
	slices.SortStableFunc(groups, func(a, b *carGroup) int {
		return b.count - a.count
	})
	if len(groups) > 5 {
		groups = groups[:5]
	}
	snapshot.TopCars = make([]TopCar, 0, len(groups))
	for _, g := range groups {
		snapshot.TopCars = append(snapshot.TopCars, TopCar{CarID: g.key, CarName: g.name, Accepted: g.count})
	}

	snapshot.Fleet = make([]FleetCar, 0, len(cars))
	for i := range cars {
		car := &cars[i]
		state := "Available"
		for j := range requests {
			r := &requests[j]
			if r.Status != models.RequestStatusAccepted || !isActiveRental(r, now) {
				continue
			}
			if requestMatchesCar(r, car) {
				state = "Booked"
				break
			}
		}
		if state == "Available" {
			snapshot.AvailableCars++
		}
		snapshot.Fleet = append(snapshot.Fleet, FleetCar{CarID: car.ID, Title: car.Title, State: state})
	}

	return snapshot
}
