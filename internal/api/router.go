package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/comunidadlocatarios/rental-platform/docs"
	"github.com/comunidadlocatarios/rental-platform/internal/api/handler"
	"github.com/comunidadlocatarios/rental-platform/internal/api/middleware"
	"github.com/comunidadlocatarios/rental-platform/internal/core/domain"
	"github.com/comunidadlocatarios/rental-platform/internal/core/ports"
	"github.com/comunidadlocatarios/rental-platform/internal/core/service"
	mongodb "github.com/comunidadlocatarios/rental-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/comunidadlocatarios/rental-platform/internal/infrastructure/db/redis"
	"github.com/comunidadlocatarios/rental-platform/internal/infrastructure/realtime"
	"github.com/comunidadlocatarios/rental-platform/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, store ports.ObjectStorage, hub *realtime.Hub, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("rental"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	listingRepo := mongodb.NewListingRepository(db)
	messageRepo := mongodb.NewMessageRepository(db)
	verificationRepo := mongodb.NewVerificationRepository(db)
	inquiryRepo := mongodb.NewInquiryRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour)
	listingService := service.NewListingService(listingRepo, store, cfg.Storage.ImagesBucket, log)
	threadService := service.NewThreadService(
		messageRepo,
		redisdb.NewThreadLocker(rdb),
		realtime.NewPublisher(rdb),
		log,
	)
	verificationService := service.NewVerificationService(verificationRepo, userRepo, store, cfg.Storage.DocsBucket, log)
	adminService := service.NewAdminService(userRepo, log)
	inquiryService := service.NewInquiryService(inquiryRepo, listingRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	listingHandler := handler.NewListingHandler(listingService)
	messageHandler := handler.NewMessageHandler(threadService, hub, log)
	verificationHandler := handler.NewVerificationHandler(verificationService)
	adminHandler := handler.NewAdminHandler(adminService, verificationService)
	inquiryHandler := handler.NewInquiryHandler(inquiryService)

	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/propiedades", listingHandler.Search)
	e.GET("/propiedades/:id", listingHandler.Get)

	// --- Authenticated routes ---
	v1 := e.Group("/v1", authMiddleware)
	v1.GET("/perfil", authHandler.Me)

	v1.GET("/propiedades/mias", listingHandler.Mine)
	v1.POST("/propiedades", listingHandler.Create)
	v1.PUT("/propiedades/:id", listingHandler.Update)
	v1.DELETE("/propiedades/:id", listingHandler.Delete)
	v1.POST("/propiedades/:id/imagenes", listingHandler.UploadImages)
	v1.DELETE("/propiedades/:id/imagenes", listingHandler.RemoveImage)

	v1.POST("/mensajes/thread", messageHandler.Resolve)
	v1.GET("/mensajes", messageHandler.History)
	v1.POST("/mensajes", messageHandler.Send)
	v1.GET("/mensajes/stream", messageHandler.Stream)

	v1.POST("/consultas", inquiryHandler.Create)
	v1.GET("/propiedades/:id/consultas", inquiryHandler.ListForListing)

	v1.POST("/verificacion", verificationHandler.Submit)
	v1.GET("/verificacion", verificationHandler.List)

	// --- Admin routes ---
	admin := v1.Group("/admin", middleware.RBAC(domain.RoleAdmin))
	admin.GET("/usuarios", adminHandler.ListUsers)
	admin.PUT("/usuarios/:id", adminHandler.UpdateUser)
	admin.GET("/verificaciones", adminHandler.PendingVerifications)
	admin.PUT("/verificaciones/:id", adminHandler.ReviewVerification)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
