package routes

import (
	"time"

	"github.com/mohamedbgr31/luxury-car-rental-sub001/models"
	"github.com/mohamedbgr31/luxury-car-rental-sub001/services"
	"github.com/mohamedbgr31/luxury-car-rental-sub001/storage"
	"github.com/mohamedbgr31/luxury-car-rental-sub001/utils"

	"github.com/kataras/iris/v12"
)

// Public catalog endpoints. Only active cars are visible here; the admin
// catalog in admin_cars.go sees everything.

func GetCars(ctx iris.Context) {
	brand := ctx.URLParamDefault("brand", "")
	category := ctx.URLParamDefault("category", "")
	featured := ctx.URLParamDefault("featured", "")

	query := storage.DB.Where("is_active = ?", true)
	if brand != "" {
		query = query.Where("brand = ?", brand)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if featured == "true" {
		query = query.Where("featured = ?", true)
	}

	var cars []models.Car
	if err := query.Order("created_at DESC").Find(&cars).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(cars)
}

func GetCar(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var car models.Car
	if err := storage.DB.First(&car, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Car not found", ctx)
		return
	}

	ctx.JSON(&car)
}

// GetNearestAvailableDate advertises the soonest bookable day for a car so the
// booking calendar can preselect it. A fully blocked horizon is a normal
// response, not an error.
func GetNearestAvailableDate(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var car models.Car
	if err := storage.DB.First(&car, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Car not found", ctx)
		return
	}

	date, ok := services.NearestAvailableDate(&car, time.Now())
	if !ok {
		ctx.JSON(iris.Map{"available": false})
		return
	}

	ctx.JSON(iris.Map{
		"available": true,
		"date":      date.Format(utils.DayFormat),
	})
}

// GetCarCalendar reports, for every day of a month, whether the booking flow
// may pick it. With an anchor start date already chosen, only free days after
// the anchor qualify as an end date.
func GetCarCalendar(ctx iris.Context) {
	id := ctx.Params().Get("id")

	now := time.Now()
	monthStr := ctx.URLParamDefault("month", now.In(utils.RentalZone).Format("2006-01"))
	month, err := time.ParseInLocation("2006-01", monthStr, utils.RentalZone)
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "month must be YYYY-MM", ctx)
		return
	}

	var anchor *time.Time
	if a := ctx.URLParamDefault("anchor", ""); a != "" {
		t, err := utils.ParseDay(a)
		if err != nil {
			utils.CreateError(iris.StatusBadRequest, "Validation Error", "anchor must be YYYY-MM-DD", ctx)
			return
		}
		anchor = &t
	}

	var car models.Car
	if err := storage.DB.First(&car, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Car not found", ctx)
		return
	}

	days := make([]iris.Map, 0, 31)
	for day := month; day.Month() == month.Month(); day = day.AddDate(0, 0, 1) {
		days = append(days, iris.Map{
			"date":       day.Format(utils.DayFormat),
			"selectable": services.IsSelectable(day, now, &car, anchor),
		})
	}

	ctx.JSON(iris.Map{"month": monthStr, "days": days})
}

type CheckAvailabilityInput struct {
	DateFrom string `json:"dateFrom" validate:"required"`
	DateTo   string `json:"dateTo" validate:"required"`
}

// CheckCarAvailability reports whether every day in the candidate range is
// free for the car.
func CheckCarAvailability(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var input CheckAvailabilityInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	from, err := utils.ParseDay(input.DateFrom)
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "dateFrom must be YYYY-MM-DD", ctx)
		return
	}
	to, err := utils.ParseDay(input.DateTo)
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "dateTo must be YYYY-MM-DD", ctx)
		return
	}
	if to.Before(from) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "dateFrom must not be after dateTo", ctx)
		return
	}

	var car models.Car
	if err := storage.DB.First(&car, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Car not found", ctx)
		return
	}

	ctx.JSON(iris.Map{"available": services.RangeAvailable(&car, from, to)})
}
