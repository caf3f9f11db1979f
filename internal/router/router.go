package router

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/pinrest/backend/internal/handlers"
	"github.com/pinrest/backend/internal/middleware"
	"github.com/pinrest/backend/internal/models"
	"github.com/pinrest/backend/internal/repositories"
	"github.com/pinrest/backend/pkg/config"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config) {
	// AutoMigrate PostgreSQL models
	err := db.AutoMigrate(
		&models.User{},
		&models.Board{},
		&models.Pin{},
		&models.Like{},
		&models.SavedPin{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	pinRepo := repositories.NewPostgresPinRepository(db)
	boardRepo := repositories.NewPostgresBoardRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	savedPinRepo := repositories.NewPostgresSavedPinRepository(db)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/auth")
	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// Public reads resolve the caller when a token is present; mutations
	// always require one.
	pub := e.Group("/api", middleware.OptionalJWTAuth(cfg.JWTSecret))
	priv := e.Group("/api", middleware.JWTAuth(cfg.JWTSecret))
	log.Println("JWT authentication middleware applied to /api groups.")

	// User profile routes
	userHandler := handlers.NewUserHandler(userRepo, pinRepo, boardRepo, likeRepo)
	userHandler.RegisterUserRoutes(pub, priv)
	log.Println("User profile routes configured.")

	// Pin routes
	pinHandler := handlers.NewPinHandler(pinRepo, boardRepo, likeRepo, savedPinRepo)
	pinHandler.RegisterPinRoutes(pub, priv)
	log.Println("Pin routes configured.")

	// Board routes
	boardHandler := handlers.NewBoardHandler(boardRepo, likeRepo)
	boardHandler.RegisterBoardRoutes(pub, priv)
	log.Println("Board routes configured.")

	log.Println("All routes configured.")
}
