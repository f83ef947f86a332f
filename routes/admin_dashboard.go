package routes

import (
	"encoding/json"
	"time"

	"github.com/mohamedbgr31/luxury-car-rental-sub001/models"
	"github.com/mohamedbgr31/luxury-car-rental-sub001/services"
	"github.com/mohamedbgr31/luxury-car-rental-sub001/storage"
	"github.com/mohamedbgr31/luxury-car-rental-sub001/utils"

	"github.com/kataras/iris/v12"
)

const dashboardCacheTTL = 30 * time.Second

// GET /admin/dashboard?period=today|week|month|year|all
//
// Snapshots are cached per period for a few seconds; the dashboard polls and
// the aggregation walks every request row.
func AdminDashboard(ctx iris.Context) {
	period := ctx.URLParamDefault("period", services.PeriodWeek)
	if !services.ValidPeriod(period) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "period must be one of: today, week, month, year, all", ctx)
		return
	}

	cacheKey := "dashboard:" + period
	if cached, err := storage.Redis.Get(ctx.Request().Context(), cacheKey).Result(); err == nil {
		ctx.ContentType("application/json")
		ctx.WriteString(cached)
		return
	}

	var requests []models.RentalRequest
	if err := storage.DB.Preload("Car").Find(&requests).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	var cars []models.Car
	if err := storage.DB.Find(&cars).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	snapshot := services.BuildDashboard(period, time.Now(), requests, cars)

	if payload, err := json.Marshal(snapshot); err == nil {
		storage.Redis.Set(ctx.Request().Context(), cacheKey, payload, dashboardCacheTTL)
	}

	ctx.JSON(snapshot)
}
