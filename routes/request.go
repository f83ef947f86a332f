package routes

import (
	"github.com/mohamedbgr31/luxury-car-rental-sub001/models"
	"github.com/mohamedbgr31/luxury-car-rental-sub001/services"
	"github.com/mohamedbgr31/luxury-car-rental-sub001/storage"
	"github.com/mohamedbgr31/luxury-car-rental-sub001/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

type CreateRentalRequestInput struct {
	Name       string `json:"name" validate:"required"`
	Contact    string `json:"contact" validate:"required"`
	CarID      uint   `json:"carID" validate:"required"`
	DateFrom   string `json:"dateFrom" validate:"required"`
	DateTo     string `json:"dateTo" validate:"required"`
	TotalDays  *int   `json:"totalDays" validate:"required"`
	RentalType string `json:"rentalType" validate:"required,oneof=daily weekly monthly"`
	TotalPrice string `json:"totalPrice" validate:"required"`
	Message    string `json:"message"`
	Urgent     bool   `json:"urgent"`
}

// CreateRentalRequest accepts a public booking submission. The day count is
// recomputed server side so the stored TotalDays always matches the dates;
// TotalPrice stays the display string the customer saw.
func CreateRentalRequest(ctx iris.Context) {
	var input CreateRentalRequestInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	dateFrom, err := utils.ParseDay(input.DateFrom)
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "dateFrom must be YYYY-MM-DD", ctx)
		return
	}
	dateTo, err := utils.ParseDay(input.DateTo)
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "dateTo must be YYYY-MM-DD", ctx)
		return
	}
	if dateTo.Before(dateFrom) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "dateFrom must not be after dateTo", ctx)
		return
	}

	var car models.Car
	if err := storage.DB.First(&car, input.CarID).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Car not found", ctx)
		return
	}

	contact := input.Contact
	if utils.LooksLikePhoneNumber(contact) {
		contact = utils.NormalizePhoneNumber(contact)
	}

	carID := car.ID
	request := models.RentalRequest{
		Name:       input.Name,
		Contact:    contact,
		CarID:      &carID,
		CarName:    car.Title,
		DateFrom:   dateFrom,
		DateTo:     dateTo,
		TotalDays:  utils.InclusiveDayCount(dateFrom, dateTo),
		RentalType: input.RentalType,
		TotalPrice: input.TotalPrice,
		Message:    input.Message,
		Status:     models.RequestStatusPending,
		Urgent:     input.Urgent,
	}

	// Attach the owning user when the submission came in authenticated
	request.UserID = requestOwner(ctx)

	if err := storage.DB.Create(&request).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	go services.NewNotificationService().NotifyAdminsNewRequest(&request)

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(&request)
}

// requestOwner returns the authenticated user's id, or nil for anonymous
// submissions. The requests party verifies a token only when one is offered.
func requestOwner(ctx iris.Context) *uint {
	if tok := jwt.Get(ctx); tok != nil {
		if claims, ok := tok.(*utils.AccessToken); ok {
			userID := claims.ID
			return &userID
		}
	}
	return nil
}

type QuoteInput struct {
	CarID      uint   `json:"carID" validate:"required"`
	DateFrom   string `json:"dateFrom" validate:"required"`
	DateTo     string `json:"dateTo" validate:"required"`
	RentalType string `json:"rentalType" validate:"required,oneof=daily weekly monthly"`
}

// QuoteRentalPrice prices a candidate booking so the site shows the exact
// total the request will carry.
func QuoteRentalPrice(ctx iris.Context) {
	var input QuoteInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	dateFrom, err := utils.ParseDay(input.DateFrom)
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "dateFrom must be YYYY-MM-DD", ctx)
		return
	}
	dateTo, err := utils.ParseDay(input.DateTo)
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "dateTo must be YYYY-MM-DD", ctx)
		return
	}
	if dateTo.Before(dateFrom) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "dateFrom must not be after dateTo", ctx)
		return
	}

	var car models.Car
	if err := storage.DB.First(&car, input.CarID).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Car not found", ctx)
		return
	}

	days := utils.InclusiveDayCount(dateFrom, dateTo)
	rates := utils.RentalRates{
		Daily:   utils.ParseAmount(car.PriceDaily),
		Weekly:  utils.ParseAmount(car.PriceWeekly),
		Monthly: utils.ParseAmount(car.PriceMonthly),
	}
	amount := utils.RentalPrice(days, input.RentalType, rates)

	ctx.JSON(iris.Map{
		"totalDays":  days,
		"amount":     amount,
		"totalPrice": utils.FormatAmount(car.Currency, amount),
		"available":  services.RangeAvailable(&car, dateFrom, dateTo),
	})
}

// GetMyRentalRequests lists the authenticated user's own submissions.
func GetMyRentalRequests(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var requests []models.RentalRequest
	res := storage.DB.Preload("Car").Where("user_id = ?", userID).Order("created_at DESC").Find(&requests)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(requests)
}
