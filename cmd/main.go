package main

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"meroprofile/internal/handler"
	"meroprofile/internal/middleware"
	"meroprofile/internal/model"
	"meroprofile/pkg/config"
	"meroprofile/pkg/database"
	"meroprofile/pkg/jwtutil"
	"meroprofile/pkg/logger"
	"meroprofile/pkg/oauth"
	"meroprofile/pkg/storage"
	"meroprofile/prometheus"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	if err := logger.InitLogger(cfg); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	log.Info("Starting directory service...", zap.String("environment", cfg.Server.Env))

	// Initialize database
	if _, err := database.InitDB(&cfg.DB); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	if err := database.MigrateModels(
		&model.User{},
		&model.Category{},
		&model.Business{},
		&model.Professional{},
		&model.Tag{},
		&model.BusinessTag{},
		&model.Image{},
		&model.Service{},
		&model.PasswordReset{},
	); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	if err := model.SeedCategories(database.GetDB()); err != nil {
		log.Fatal("Failed to seed categories", zap.Error(err))
	}
	log.Info("Category vocabulary seeded")

	// Initialize object storage
	store, err := storage.NewStore(&cfg.Storage)
	if err != nil {
		log.Fatal("Failed to initialize storage", zap.Error(err))
	}
	log.Info("Storage initialized", zap.String("bucket", cfg.Storage.Bucket))

	// Initialize JWT utility and OAuth provider client
	jwtUtil := jwtutil.NewJWTUtil(&cfg.JWT)
	oauthClient := oauth.NewClient(&cfg.OAuth, log)

	authHandler := handler.NewAuthHandler(jwtUtil)
	oauthHandler := handler.NewOAuthHandler(jwtUtil, oauthClient)
	businessHandler := handler.NewBusinessHandler(store)
	professionalHandler := handler.NewProfessionalHandler(store)

	// Initialize Echo framework
	e := echo.New()

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware())
	e.Use(prometheus.MetricsMiddleware())

	// Public routes - no authentication required
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", handler.MetricsHandler)

	// Uploaded images are served straight from the bucket directory
	e.Static("/storage", store.Root())

	// Authentication routes
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/oauth/:provider", oauthHandler.SignIn)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.POST("/reset-password", authHandler.ResetPassword)

	// Public directory routes
	api := e.Group("/api")
	api.GET("/meta", handler.Meta)
	api.GET("/stats", handler.Stats)
	api.GET("/search", handler.SearchListings)
	api.GET("/featured", handler.FeaturedBusinesses)
	api.GET("/categories", handler.ListCategories)
	api.GET("/tags/popular", handler.PopularTags)
	api.GET("/businesses/recent", handler.RecentBusinesses)
	api.GET("/businesses/nearby", handler.NearbyBusinesses)
	api.GET("/businesses/:id", handler.GetBusiness)

	// Authenticated routes
	authed := api.Group("")
	authed.Use(middleware.JWTAuthMiddleware(jwtUtil))
	authed.POST("/businesses", businessHandler.Create)
	authed.POST("/professionals", professionalHandler.Create)
	authed.POST("/logout", authHandler.Logout)
	authed.GET("/users/profile", authHandler.GetProfile)
	authed.PATCH("/users/profile", authHandler.UpdateProfile)
	authed.POST("/users/change-password", authHandler.ChangePassword)

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
