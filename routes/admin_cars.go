package routes

import (
	"encoding/json"
	"net/http"

	"github.com/mohamedbgr31/luxury-car-rental-sub001/models"
	"github.com/mohamedbgr31/luxury-car-rental-sub001/storage"
	"github.com/mohamedbgr31/luxury-car-rental-sub001/utils"

	"github.com/kataras/iris/v12"
)

// GET /admin/cars?brand=&category=&active=&page=&per_page=
func AdminListCars(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	query := storage.DB.Model(&models.Car{})
	if brand := ctx.URLParamDefault("brand", ""); brand != "" {
		query = query.Where("brand = ?", brand)
	}
	if category := ctx.URLParamDefault("category", ""); category != "" {
		query = query.Where("category = ?", category)
	}
	if active := ctx.URLParamDefault("active", ""); active != "" {
		query = query.Where("is_active = ?", active == "true")
	}

	var total int64
	query.Count(&total)

	var cars []models.Car
	if err := query.Offset((page - 1) * perPage).Limit(perPage).Order("created_at DESC").Find(&cars).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.JSONPage(ctx, cars, page, perPage, total)
}

type CarInput struct {
	Brand        string             `json:"brand" validate:"required"`
	Model        string             `json:"model" validate:"required"`
	Title        string             `json:"title" validate:"required"`
	Description  string             `json:"description"`
	Category     string             `json:"category"`
	PriceDaily   string             `json:"priceDaily" validate:"required"`
	PriceWeekly  string             `json:"priceWeekly"`
	PriceMonthly string             `json:"priceMonthly"`
	Currency     string             `json:"currency"`
	Seats        int                `json:"seats"`
	Horsepower   int                `json:"horsepower"`
	Color        string             `json:"color"`
	Featured     bool               `json:"featured"`
	Images       []string           `json:"images"`
	Unavailable  []models.DateRange `json:"unavailableRanges"`
	IsActive     *bool              `json:"isActive"`
}

// POST /admin/cars
func AdminCreateCar(ctx iris.Context) {
	var input CarInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	images := input.Images
	if images == nil {
		images = []string{}
	}
	imagesJSON, _ := json.Marshal(images)

	currency := input.Currency
	if currency == "" {
		currency = "AED"
	}

	car := models.Car{
		Brand:        input.Brand,
		CarModel:     input.Model,
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		PriceDaily:   input.PriceDaily,
		PriceWeekly:  input.PriceWeekly,
		PriceMonthly: input.PriceMonthly,
		Currency:     currency,
		Seats:        input.Seats,
		Horsepower:   input.Horsepower,
		Color:        input.Color,
		Featured:     input.Featured,
		Images:       string(imagesJSON),
		IsActive:     input.IsActive,
	}
	car.SetUnavailableDateRanges(input.Unavailable)

	if err := storage.DB.Create(&car).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "create", "car", car.ID, nil, &car)
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(&car)
}

// PATCH /admin/cars/:id
func AdminUpdateCar(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid car ID", ctx)
		return
	}

	var car models.Car
	if err := storage.DB.First(&car, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Car not found", ctx)
		return
	}
	before := car

	var input CarInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	car.Brand = input.Brand
	car.CarModel = input.Model
	car.Title = input.Title
	car.Description = input.Description
	car.Category = input.Category
	car.PriceDaily = input.PriceDaily
	car.PriceWeekly = input.PriceWeekly
	car.PriceMonthly = input.PriceMonthly
	if input.Currency != "" {
		car.Currency = input.Currency
	}
	car.Seats = input.Seats
	car.Horsepower = input.Horsepower
	car.Color = input.Color
	car.Featured = input.Featured
	if input.Images != nil {
		imagesJSON, _ := json.Marshal(input.Images)
		car.Images = string(imagesJSON)
	}
	if input.Unavailable != nil {
		car.SetUnavailableDateRanges(input.Unavailable)
	}
	if input.IsActive != nil {
		car.IsActive = input.IsActive
	}

	if err := storage.DB.Save(&car).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "update", "car", car.ID, &before, &car)
	ctx.JSON(&car)
}

// POST /admin/cars/:id/deactivate. Cars are never deleted, only hidden.
func AdminDeactivateCar(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid car ID", ctx)
		return
	}

	var car models.Car
	if err := storage.DB.First(&car, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Car not found", ctx)
		return
	}

	inactive := false
	car.IsActive = &inactive
	if err := storage.DB.Save(&car).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "deactivate", "car", car.ID, nil, &car)
	ctx.JSON(&car)
}
