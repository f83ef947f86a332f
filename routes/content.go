package routes

import (
	"github.com/mohamedbgr31/luxury-car-rental-sub001/models"
	"github.com/mohamedbgr31/luxury-car-rental-sub001/storage"
	"github.com/mohamedbgr31/luxury-car-rental-sub001/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

// Public content reads. The admin write handlers live further down and are
// registered behind AdminOnlyMiddleware in main.go.

func GetContactInfo(ctx iris.Context) {
	var info models.ContactInfo
	if err := storage.DB.First(&info).Error; err != nil {
		// Singleton not seeded yet; an empty object keeps the page rendering
		ctx.JSON(iris.Map{})
		return
	}
	ctx.JSON(&info)
}

func ListFAQs(ctx iris.Context) {
	var faqs []models.FAQ
	if err := storage.DB.Where("published = ?", true).Order("sort_order, id").Find(&faqs).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(faqs)
}

func ListBrands(ctx iris.Context) {
	var brands []models.Brand
	if err := storage.DB.Where("is_active = ?", true).Order("sort_order, id").Find(&brands).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(brands)
}

func GetHeroSection(ctx iris.Context) {
	var hero models.HeroSection
	if err := storage.DB.Where("is_active = ?", true).Order("updated_at DESC").First(&hero).Error; err != nil {
		ctx.JSON(iris.Map{})
		return
	}
	ctx.JSON(&hero)
}

func ListGalleryImages(ctx iris.Context) {
	var images []models.GalleryImage
	if err := storage.DB.Order("sort_order, id").Find(&images).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(images)
}

type ContactInfoInput struct {
	Phone     string `json:"phone"`
	WhatsApp  string `json:"whatsapp"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	MapLink   string `json:"mapLink"`
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
}

// PUT /admin/content/contact upserts the singleton row.
func AdminUpsertContactInfo(ctx iris.Context) {
	var input ContactInfoInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var info models.ContactInfo
	err := storage.DB.First(&info).Error
	isNew := err == gorm.ErrRecordNotFound
	if err != nil && !isNew {
		utils.CreateInternalServerError(ctx)
		return
	}
	before := info

	info.Phone = input.Phone
	info.WhatsApp = input.WhatsApp
	info.Email = input.Email
	info.Address = input.Address
	info.MapLink = input.MapLink
	info.Instagram = input.Instagram
	info.Facebook = input.Facebook

	if err := storage.DB.Save(&info).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if isNew {
		utils.Audit(ctx, "create", "contact_info", info.ID, nil, &info)
	} else {
		utils.Audit(ctx, "update", "contact_info", info.ID, &before, &info)
	}
	ctx.JSON(&info)
}

type FAQInput struct {
	Question  string `json:"question" validate:"required"`
	Answer    string `json:"answer" validate:"required"`
	SortOrder int    `json:"sortOrder"`
	Published *bool  `json:"published"`
}

func AdminCreateFAQ(ctx iris.Context) {
	var input FAQInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	faq := models.FAQ{
		Question:  input.Question,
		Answer:    input.Answer,
		SortOrder: input.SortOrder,
		Published: input.Published,
	}
	if err := storage.DB.Create(&faq).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "create", "faq", faq.ID, nil, &faq)
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(&faq)
}

func AdminUpdateFAQ(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var faq models.FAQ
	if err := storage.DB.First(&faq, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "FAQ not found", ctx)
		return
	}
	before := faq

	var input FAQInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	faq.Question = input.Question
	faq.Answer = input.Answer
	faq.SortOrder = input.SortOrder
	if input.Published != nil {
		faq.Published = input.Published
	}
	if err := storage.DB.Save(&faq).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "update", "faq", faq.ID, &before, &faq)
	ctx.JSON(&faq)
}

func AdminDeleteFAQ(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var faq models.FAQ
	if err := storage.DB.First(&faq, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "FAQ not found", ctx)
		return
	}
	if err := storage.DB.Delete(&faq).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "delete", "faq", faq.ID, &faq, nil)
	ctx.StatusCode(iris.StatusNoContent)
}

type BrandInput struct {
	Name      string `json:"name" validate:"required"`
	LogoURL   string `json:"logoURL"`
	SortOrder int    `json:"sortOrder"`
	IsActive  *bool  `json:"isActive"`
}

func AdminCreateBrand(ctx iris.Context) {
	var input BrandInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	brand := models.Brand{
		Name:      input.Name,
		LogoURL:   input.LogoURL,
		SortOrder: input.SortOrder,
		IsActive:  input.IsActive,
	}
	if err := storage.DB.Create(&brand).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "create", "brand", brand.ID, nil, &brand)
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(&brand)
}

func AdminUpdateBrand(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var brand models.Brand
	if err := storage.DB.First(&brand, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Brand not found", ctx)
		return
	}
	before := brand

	var input BrandInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	brand.Name = input.Name
	brand.LogoURL = input.LogoURL
	brand.SortOrder = input.SortOrder
	if input.IsActive != nil {
		brand.IsActive = input.IsActive
	}
	if err := storage.DB.Save(&brand).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "update", "brand", brand.ID, &before, &brand)
	ctx.JSON(&brand)
}

func AdminDeleteBrand(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var brand models.Brand
	if err := storage.DB.First(&brand, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Brand not found", ctx)
		return
	}
	if err := storage.DB.Delete(&brand).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "delete", "brand", brand.ID, &brand, nil)
	ctx.StatusCode(iris.StatusNoContent)
}

type HeroSectionInput struct {
	Headline    string `json:"headline" validate:"required"`
	Subheadline string `json:"subheadline"`
	ImageURL    string `json:"imageURL"`
	CTALabel    string `json:"ctaLabel"`
	CTALink     string `json:"ctaLink"`
	IsActive    *bool  `json:"isActive"`
}

func AdminCreateHeroSection(ctx iris.Context) {
	var input HeroSectionInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	hero := models.HeroSection{
		Headline:    input.Headline,
		Subheadline: input.Subheadline,
		ImageURL:    input.ImageURL,
		CTALabel:    input.CTALabel,
		CTALink:     input.CTALink,
		IsActive:    input.IsActive,
	}
	if err := storage.DB.Create(&hero).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "create", "hero_section", hero.ID, nil, &hero)
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(&hero)
}

func AdminUpdateHeroSection(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var hero models.HeroSection
	if err := storage.DB.First(&hero, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Hero section not found", ctx)
		return
	}
	before := hero

	var input HeroSectionInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	hero.Headline = input.Headline
	hero.Subheadline = input.Subheadline
	hero.ImageURL = input.ImageURL
	hero.CTALabel = input.CTALabel
	hero.CTALink = input.CTALink
	if input.IsActive != nil {
		hero.IsActive = input.IsActive
		// Only one hero is live at a time
		if *input.IsActive {
			storage.DB.Model(&models.HeroSection{}).Where("id <> ?", hero.ID).Update("is_active", false)
		}
	}
	if err := storage.DB.Save(&hero).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "update", "hero_section", hero.ID, &before, &hero)
	ctx.JSON(&hero)
}

type GalleryImageInput struct {
	URL       string `json:"url" validate:"required"`
	Caption   string `json:"caption"`
	SortOrder int    `json:"sortOrder"`
}

func AdminCreateGalleryImage(ctx iris.Context) {
	var input GalleryImageInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	image := models.GalleryImage{
		URL:       input.URL,
		Caption:   input.Caption,
		SortOrder: input.SortOrder,
	}
	if err := storage.DB.Create(&image).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "create", "gallery_image", image.ID, nil, &image)
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(&image)
}

func AdminDeleteGalleryImage(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var image models.GalleryImage
	if err := storage.DB.First(&image, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Gallery image not found", ctx)
		return
	}
	if err := storage.DB.Delete(&image).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	// Remote asset cleanup is best effort
	go storage.DeleteImage(image.URL)

	utils.Audit(ctx, "delete", "gallery_image", image.ID, &image, nil)
	ctx.StatusCode(iris.StatusNoContent)
}
