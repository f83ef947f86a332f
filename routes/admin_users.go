package routes

import (
	"net/http"

	"github.com/mohamedbgr31/luxury-car-rental-sub001/models"
	"github.com/mohamedbgr31/luxury-car-rental-sub001/storage"
	"github.com/mohamedbgr31/luxury-car-rental-sub001/utils"

	"github.com/kataras/iris/v12"
)

// GET /admin/users?role=&q=&page=&per_page=
func AdminListUsers(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	query := storage.DB.Model(&models.User{})
	if role := ctx.URLParamDefault("role", ""); role != "" {
		query = query.Where("role = ?", role)
	}
	if q := ctx.URLParamDefault("q", ""); q != "" {
		like := "%" + q + "%"
		query = query.Where("email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?", like, like, like)
	}

	var total int64
	query.Count(&total)

	var users []models.User
	if err := query.Offset((page - 1) * perPage).Limit(perPage).Order("created_at DESC").Find(&users).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.JSONPage(ctx, users, page, perPage, total)
}

// GET /admin/users/:id
func AdminGetUser(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var user models.User
	if err := storage.DB.First(&user, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "user not found")
		return
	}
	ctx.JSON(iris.Map{"data": &user, "meta": iris.Map{}, "links": iris.Map{}})
}

type ChangeRoleInput struct {
	Role string `json:"role" validate:"required,oneof=user admin super_admin"`
}

// PATCH /admin/users/:id/role. Super admins only, wired in main.go.
func AdminChangeUserRole(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var input ChangeRoleInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var user models.User
	if err := storage.DB.First(&user, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "User not found", ctx)
		return
	}
	before := user

	user.Role = input.Role
	if err := storage.DB.Save(&user).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "change_role", "user", user.ID, &before, &user)
	ctx.JSON(&user)
}
