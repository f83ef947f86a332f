package routes

import (
	"strconv"
	"time"

	"github.com/mohamedbgr31/luxury-car-rental-sub001/storage"
	"github.com/mohamedbgr31/luxury-car-rental-sub001/utils"

	"github.com/kataras/iris/v12"
)

type UploadImageInput struct {
	Image  string `json:"image" validate:"required"` // base64 payload
	Folder string `json:"folder"`                    // cars, brands, gallery, hero
}

// POST /api/upload/image pushes a base64 image to Cloudinary and returns the
// hosted URL for use in car, brand, gallery and hero records.
func UploadImage(ctx iris.Context) {
	var input UploadImageInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	folder := input.Folder
	if folder == "" {
		folder = "uploads"
	}
	publicID := folder + "/" + strconv.FormatInt(time.Now().UnixNano(), 10)

	url := storage.UploadBase64Image(input.Image, publicID)
	if url == "" {
		utils.CreateError(iris.StatusBadGateway, "Upload Error", "Image upload failed, please try again.", ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"url": url})
}
