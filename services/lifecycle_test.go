package services

import (
	"testing"
	"time"

	"github.com/mohamedbgr31/luxury-car-rental-sub001/models"
	"github.com/mohamedbgr31/luxury-car-rental-sub001/utils"
)

func TestApplyDecisionAcceptBlocksRange(t *testing.T) {
	car := carWithRanges([]models.DateRange{{From: "2024-01-01", To: "2024-01-05"}})
	carID := uint(7)
	request := &models.RentalRequest{
		CarID:    &carID,
		DateFrom: time.Date(2024, 6, 10, 0, 0, 0, 0, utils.RentalZone),
		DateTo:   time.Date(2024, 6, 15, 0, 0, 0, 0, utils.RentalZone),
		Status:   models.RequestStatusPending,
	}

	mutated := ApplyDecision(request, car, models.RequestStatusAccepted)

	if !mutated {
		t.Fatal("acceptance with a car and dates must mutate the car")
	}
	if request.Status != models.RequestStatusAccepted {
		t.Errorf("status = %q, want accepted", request.Status)
	}

	ranges := car.UnavailableDateRanges()
	if len(ranges) != 2 {
		t.Fatalf("expected exactly one appended range, got %d total", len(ranges))
	}
	appended := ranges[1]
	if appended.From != "2024-06-10" || appended.To != "2024-06-15" {
		t.Errorf("appended range = %+v, want 2024-06-10 .. 2024-06-15", appended)
	}
}

func TestApplyDecisionRejectNeverTouchesCar(t *testing.T) {
	car := carWithRanges([]models.DateRange{{From: "2024-01-01", To: "2024-01-05"}})
	request := &models.RentalRequest{
		DateFrom: time.Date(2024, 6, 10, 0, 0, 0, 0, utils.RentalZone),
		DateTo:   time.Date(2024, 6, 15, 0, 0, 0, 0, utils.RentalZone),
		Status:   models.RequestStatusPending,
	}

	if ApplyDecision(request, car, models.RequestStatusRejected) {
		t.Error("rejection must not mutate the car")
	}
	if request.Status != models.RequestStatusRejected {
		t.Errorf("status = %q, want rejected", request.Status)
	}
	if got := len(car.UnavailableDateRanges()); got != 1 {
		t.Errorf("car ranges changed on rejection, got %d", got)
	}
}

func TestApplyDecisionAcceptWithoutCar(t *testing.T) {
	request := &models.RentalRequest{
		DateFrom: time.Date(2024, 6, 10, 0, 0, 0, 0, utils.RentalZone),
		DateTo:   time.Date(2024, 6, 15, 0, 0, 0, 0, utils.RentalZone),
	}

	if ApplyDecision(request, nil, models.RequestStatusAccepted) {
		t.Error("acceptance without a car must not report a car mutation")
	}
	if request.Status != models.RequestStatusAccepted {
		t.Error("the request itself is still accepted")
	}
}

func TestApplyDecisionAcceptsAccumulate(t *testing.T) {
	// Decisions on the same car serialize (the route takes a row lock), so
	// each accept must see and keep every previously blocked range
	car := carWithRanges(nil)
	carID := uint(7)

	first := &models.RentalRequest{
		CarID:    &carID,
		DateFrom: time.Date(2024, 6, 10, 0, 0, 0, 0, utils.RentalZone),
		DateTo:   time.Date(2024, 6, 12, 0, 0, 0, 0, utils.RentalZone),
	}
	second := &models.RentalRequest{
		CarID:    &carID,
		DateFrom: time.Date(2024, 6, 20, 0, 0, 0, 0, utils.RentalZone),
		DateTo:   time.Date(2024, 6, 22, 0, 0, 0, 0, utils.RentalZone),
	}

	ApplyDecision(first, car, models.RequestStatusAccepted)
	ApplyDecision(second, car, models.RequestStatusAccepted)

	ranges := car.UnavailableDateRanges()
	if len(ranges) != 2 {
		t.Fatalf("expected both accepted ranges on the car, got %d", len(ranges))
	}
	if ranges[0].From != "2024-06-10" || ranges[1].From != "2024-06-20" {
		t.Errorf("ranges = %+v, want both accepts preserved in order", ranges)
	}
}

func TestApplyDecisionOverwritesEarlierDecision(t *testing.T) {
	request := &models.RentalRequest{Status: models.RequestStatusAccepted}

	ApplyDecision(request, nil, models.RequestStatusRejected)
	if request.Status != models.RequestStatusRejected {
		t.Error("an earlier decision must be overwritable")
	}
}
