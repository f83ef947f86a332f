package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mohamedbgr31/luxury-car-rental-sub001/routes"
	"github.com/mohamedbgr31/luxury-car-rental-sub001/storage"
	"github.com/mohamedbgr31/luxury-car-rental-sub001/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func main() {
	// Only load .env in development
	if os.Getenv("RENDER") == "" {
		godotenv.Load()
	}

	storage.InitializeDB()
	storage.InitializeRedis()

	app := iris.New()
	app.Validator = validator.New()

	// CORS for the public site and the admin dashboard
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifier.WithDefaultBlocklist()
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(jwt.Claims)
	})

	refreshTokenVerifier.Extractors = append(refreshTokenVerifier.Extractors, func(ctx iris.Context) string {
		var tokenInput utils.RefreshTokenInput
		err := ctx.ReadJSON(&tokenInput)
		if err != nil {
			return ""
		}
		return tokenInput.RefreshToken
	})

	app.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"status": "ok"})
	})

	user := app.Party("/api/user")
	{
		user.Post("/register", routes.Register)
		user.Post("/login", routes.Login)
		user.Get("/requests", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.GetMyRentalRequests)
		user.Get("/notifications", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.GetMyNotifications)
		user.Patch("/notifications/{id:uint}/read", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.MarkNotificationRead)
	}

	cars := app.Party("/api/cars")
	{
		cars.Get("/", routes.GetCars)
		cars.Get("/{id:uint}", routes.GetCar)
		cars.Get("/{id:uint}/nearest-available", routes.GetNearestAvailableDate)
		cars.Get("/{id:uint}/calendar", routes.GetCarCalendar)
		cars.Post("/{id:uint}/check-availability", routes.CheckCarAvailability)
	}

	requests := app.Party("/api/requests", utils.OptionalTokenVerifier(accessTokenVerifierMiddleware))
	{
		requests.Post("/", routes.CreateRentalRequest)
		requests.Post("/quote", routes.QuoteRentalPrice)
	}

	content := app.Party("/api/content")
	{
		content.Get("/contact", routes.GetContactInfo)
		content.Get("/faqs", routes.ListFAQs)
		content.Get("/brands", routes.ListBrands)
		content.Get("/hero", routes.GetHeroSection)
		content.Get("/gallery", routes.ListGalleryImages)
	}

	admin := app.Party("/api/admin", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware)
	{
		admin.Get("/cars", routes.AdminListCars)
		admin.Post("/cars", routes.AdminCreateCar)
		admin.Patch("/cars/{id:uint}", routes.AdminUpdateCar)
		admin.Post("/cars/{id:uint}/deactivate", routes.AdminDeactivateCar)
		admin.Get("/requests", routes.AdminListRequests)
		admin.Get("/requests/{id:uint}", routes.AdminGetRequest)
		admin.Patch("/requests/{id:uint}/status", routes.AdminUpdateRequestStatus)
		admin.Get("/users", routes.AdminListUsers)
		admin.Get("/users/{id:uint}", routes.AdminGetUser)
		admin.Patch("/users/{id:uint}/role", utils.SuperAdminOnlyMiddleware, routes.AdminChangeUserRole)
		admin.Get("/dashboard", routes.AdminDashboard)
		admin.Get("/stats", routes.AdminStats)
		admin.Get("/activity", routes.AdminActivity)
		admin.Put("/content/contact", routes.AdminUpsertContactInfo)
		admin.Post("/content/faqs", routes.AdminCreateFAQ)
		admin.Patch("/content/faqs/{id:uint}", routes.AdminUpdateFAQ)
		admin.Delete("/content/faqs/{id:uint}", routes.AdminDeleteFAQ)
		admin.Post("/content/brands", routes.AdminCreateBrand)
		admin.Patch("/content/brands/{id:uint}", routes.AdminUpdateBrand)
		admin.Delete("/content/brands/{id:uint}", routes.AdminDeleteBrand)
		admin.Post("/content/hero", routes.AdminCreateHeroSection)
		admin.Patch("/content/hero/{id:uint}", routes.AdminUpdateHeroSection)
		admin.Post("/content/gallery", routes.AdminCreateGalleryImage)
		admin.Delete("/content/gallery/{id:uint}", routes.AdminDeleteGalleryImage)
		admin.Post("/export", routes.AdminCreateExport)
		admin.Get("/export/{id:string}", routes.AdminGetExport)
		admin.Get("/export/{id:string}/download", routes.AdminDownloadExport)
	}

	upload := app.Party("/api/upload", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware)
	{
		upload.Post("/image", routes.UploadImage)
	}

	app.Post("/api/refresh", refreshTokenVerifierMiddleware, utils.RefreshToken)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	addr := "0.0.0.0:" + port

	fmt.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
