package services

import (
	"github.com/mohamedbgr31/luxury-car-rental-sub001/models"
	"github.com/mohamedbgr31/luxury-car-rental-sub001/utils"
)

// ApplyDecision applies an admin accept/reject to the request and, on
// acceptance, blocks the requested date range on the car. It returns whether
// the car was mutated so the caller knows to persist it (inside the same
// transaction as the request).
//
// A non-pending request is overwritten rather than rejected; the back office
// has always behaved that way and some admins rely on it to fix mis-clicks.
func ApplyDecision(request *models.RentalRequest, car *models.Car, status string) bool {
	request.Status = status

	if status != models.RequestStatusAccepted {
		return false
	}
	if car == nil || request.DateFrom.IsZero() || request.DateTo.IsZero() {
		return false
	}

	ranges := car.UnavailableDateRanges()
	ranges = append(ranges, models.DateRange{
		From: utils.DayOf(request.DateFrom).Format(utils.DayFormat),
		To:   utils.DayOf(request.DateTo).Format(utils.DayFormat),
	})
	car.SetUnavailableDateRanges(ranges)
	return true
}
