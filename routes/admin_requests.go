package routes

import (
	"net/http"
	"time"

	"github.com/mohamedbgr31/luxury-car-rental-sub001/models"
	"github.com/mohamedbgr31/luxury-car-rental-sub001/services"
	"github.com/mohamedbgr31/luxury-car-rental-sub001/storage"
	"github.com/mohamedbgr31/luxury-car-rental-sub001/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GET /admin/requests?status=&urgent=&date_from=&date_to=&page=&per_page=
func AdminListRequests(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	q := storage.DB.Model(&models.RentalRequest{})
	if status := ctx.URLParamDefault("status", ""); status != "" {
		q = q.Where("status = ?", status)
	}
	if urgent := ctx.URLParamDefault("urgent", ""); urgent == "true" {
		q = q.Where("urgent = ?", true)
	}
	if dateFrom := ctx.URLParamDefault("date_from", ""); dateFrom != "" {
		if t, err := utils.ParseDay(dateFrom); err == nil {
			q = q.Where("date_from >= ?", t)
		}
	}
	if dateTo := ctx.URLParamDefault("date_to", ""); dateTo != "" {
		if t, err := utils.ParseDay(dateTo); err == nil {
			q = q.Where("date_to <= ?", t)
		}
	}

	var total int64
	q.Count(&total)

	var items []models.RentalRequest
	if err := q.Preload("Car").Preload("User").Offset((page - 1) * perPage).Limit(perPage).Order("created_at DESC").Find(&items).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.JSONPage(ctx, items, page, perPage, total)
}

// GET /admin/requests/:id
func AdminGetRequest(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var request models.RentalRequest
	if err := storage.DB.Preload("Car").Preload("User").First(&request, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "request not found")
		return
	}
	ctx.JSON(iris.Map{"data": request, "meta": iris.Map{}, "links": iris.Map{}})
}

type UpdateRequestStatusInput struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

// PATCH /admin/requests/:id/status accepts or rejects a request.
//
// Acceptance blocks the requested range on the car; the status write and the
// car write happen in one transaction so a failed car update never leaves a
// silently accepted request.
func AdminUpdateRequestStatus(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var input UpdateRequestStatusInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var request models.RentalRequest
	if err := storage.DB.First(&request, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Request not found", ctx)
		return
	}
	before := request

	err := storage.DB.Transaction(func(tx *gorm.DB) error {
		// The car row is locked for the duration so concurrent decisions on
		// the same car serialize instead of losing an appended range
		var car *models.Car
		if request.CarID != nil {
			var c models.Car
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&c, *request.CarID).Error; err == nil {
				car = &c
			}
		}

		carMutated := services.ApplyDecision(&request, car, input.Status)
		if err := tx.Save(&request).Error; err != nil {
			return err
		}
		if carMutated {
			if err := tx.Save(car).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, input.Status, "request", request.ID, &before, &request)
	go services.NewNotificationService().NotifyRequestStatus(&request)

	ctx.JSON(&request)
}

// GET /admin/stats returns quick back-office counters, the lightweight companion to
// the dashboard endpoint.
func AdminStats(ctx iris.Context) {
	var pendingRequests int64
	storage.DB.Model(&models.RentalRequest{}).Where("status = ?", models.RequestStatusPending).Count(&pendingRequests)
	var activeCars int64
	storage.DB.Model(&models.Car{}).Where("is_active = ?", true).Count(&activeCars)

	since7 := time.Now().AddDate(0, 0, -7)
	since30 := time.Now().AddDate(0, 0, -30)
	var newReq7, newReq30 int64
	storage.DB.Model(&models.RentalRequest{}).Where("created_at >= ?", since7).Count(&newReq7)
	storage.DB.Model(&models.RentalRequest{}).Where("created_at >= ?", since30).Count(&newReq30)

	ctx.JSON(iris.Map{
		"data": iris.Map{
			"pending_requests": pendingRequests,
			"active_cars":      activeCars,
			"new_requests_7d":  newReq7,
			"new_requests_30d": newReq30,
		},
		"meta":  iris.Map{},
		"links": iris.Map{},
	})
}

// GET /admin/activity
func AdminActivity(ctx iris.Context) {
	var logs []models.AuditLog
	storage.DB.Order("created_at DESC").Limit(100).Find(&logs)
	ctx.JSON(iris.Map{"data": logs, "meta": iris.Map{}, "links": iris.Map{}})
}
