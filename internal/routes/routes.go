package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/BruksfildServices01/barbershop-api/docs"
	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/auth"
	"github.com/BruksfildServices01/barbershop-api/internal/config"
	"github.com/BruksfildServices01/barbershop-api/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barbershop-api/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-api/internal/middleware"
	"github.com/BruksfildServices01/barbershop-api/internal/storage"
	ucBarber "github.com/BruksfildServices01/barbershop-api/internal/usecase/barber"
	ucShop "github.com/BruksfildServices01/barbershop-api/internal/usecase/barbershop"
	ucHair "github.com/BruksfildServices01/barbershop-api/internal/usecase/hair"
	ucReview "github.com/BruksfildServices01/barbershop-api/internal/usecase/review"
	ucSchedule "github.com/BruksfildServices01/barbershop-api/internal/usecase/schedule"
	"github.com/BruksfildServices01/barbershop-api/internal/validators"
)

// Deps are the process-wide singletons the routes are built from. Redis and
// Photos are optional; Audit may be nil.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Log    *zap.Logger
	Redis  *redis.Client
	Photos storage.PhotoStore
	Audit  *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}

	validators.Setup()

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	metrics := middleware.NewMetrics()

	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.Use(metrics.Middleware())
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	shopRepo := infraRepo.NewBarbershopGormRepository(d.DB)
	barberRepo := infraRepo.NewBarberGormRepository(d.DB)
	hairRepo := infraRepo.NewHairGormRepository(d.DB)
	reviewRepo := infraRepo.NewReviewGormRepository(d.DB)
	scheduleRepo := infraRepo.NewScheduleGormRepository(d.DB)
	auditRepo := infraRepo.NewAuditLogGormRepository(d.DB)

	tokens := auth.NewTokens(cfg.JWTSecret, auth.DefaultTTL)
	dispatcher := d.Audit

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(d.DB, log)

	barbershopHandler := handlers.NewBarbershopHandler(
		ucShop.NewList(shopRepo),
		ucShop.NewCreate(shopRepo, dispatcher),
		ucShop.NewUpdate(shopRepo, dispatcher),
		ucShop.NewDelete(shopRepo, dispatcher),
		ucShop.NewAuthenticate(shopRepo, tokens),
		log,
	)

	barberHandler := handlers.NewBarberHandler(
		ucBarber.NewList(barberRepo),
		ucBarber.NewCreate(barberRepo, shopRepo, dispatcher),
		ucBarber.NewUpdate(barberRepo, shopRepo, dispatcher),
		ucBarber.NewDelete(barberRepo, dispatcher),
		log,
	)

	hairHandler := handlers.NewHairHandler(
		ucHair.NewList(hairRepo),
		ucHair.NewCreate(hairRepo, shopRepo, dispatcher),
		ucHair.NewUpdate(hairRepo, shopRepo, dispatcher),
		ucHair.NewDelete(hairRepo, dispatcher),
		ucHair.NewUploadPhoto(hairRepo, d.Photos, dispatcher),
		log,
	)

	reviewHandler := handlers.NewReviewHandler(
		ucReview.NewList(reviewRepo),
		ucReview.NewCreate(reviewRepo, shopRepo, dispatcher),
		ucReview.NewUpdate(reviewRepo, shopRepo, dispatcher),
		ucReview.NewDelete(reviewRepo, dispatcher),
		log,
	)

	scheduleHandler := handlers.NewScheduleHandler(
		ucSchedule.NewList(scheduleRepo),
		ucSchedule.NewCreate(scheduleRepo, shopRepo, dispatcher),
		ucSchedule.NewUpdate(scheduleRepo, shopRepo, dispatcher),
		ucSchedule.NewDelete(scheduleRepo, dispatcher),
		log,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(auditRepo, log)

	secured := middleware.AuthMiddleware(tokens)
	authLimit := middleware.RateLimit(d.Redis, "auth", cfg.RateLimit.Limit, cfg.RateLimit.Window, log)

	// ======================================================
	// SYSTEM
	// ======================================================
	r.GET("/", publicHandler.Root)
	r.GET("/health", publicHandler.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ======================================================
	// RESOURCES
	// ======================================================
	shops := r.Group("/barbershop")
	{
		shops.GET("", barbershopHandler.List)
		shops.GET("/", barbershopHandler.List)
		shops.POST("/create", barbershopHandler.Create)
		shops.POST("/auth", authLimit, barbershopHandler.Auth)
		shops.PATCH("/:id", secured, barbershopHandler.Update)
		shops.DELETE("/:id", secured, barbershopHandler.Delete)
	}

	barbers := r.Group("/barber")
	{
		barbers.GET("", barberHandler.List)
		barbers.GET("/", barberHandler.List)
		barbers.POST("/create", secured, barberHandler.Create)
		barbers.PATCH("/:id", secured, barberHandler.Update)
		barbers.DELETE("/:id", secured, barberHandler.Delete)
	}

	hairs := r.Group("/hair")
	{
		hairs.GET("", hairHandler.List)
		hairs.GET("/", hairHandler.List)
		hairs.POST("/create", secured, hairHandler.Create)
		hairs.PATCH("/:id", secured, hairHandler.Update)
		hairs.DELETE("/:id", secured, hairHandler.Delete)
		hairs.POST("/:id/photo", secured, hairHandler.UploadPhoto)
	}

	reviews := r.Group("/avaliations")
	{
		reviews.GET("", reviewHandler.List)
		reviews.GET("/", reviewHandler.List)
		reviews.POST("/create", secured, reviewHandler.Create)
		reviews.PATCH("/:id", secured, reviewHandler.Update)
		reviews.DELETE("/:id", secured, reviewHandler.Delete)
	}

	schedules := r.Group("/schedule")
	{
		schedules.GET("", scheduleHandler.List)
		schedules.GET("/", scheduleHandler.List)
		schedules.POST("/create", secured, scheduleHandler.Create)
		schedules.PATCH("/:id", secured, scheduleHandler.Update)
		schedules.DELETE("/:id", secured, scheduleHandler.Delete)
	}

	r.GET("/audit-logs", secured, auditLogsHandler.List)
}
