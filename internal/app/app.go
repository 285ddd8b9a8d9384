// Package app wires repositories, use cases, handlers and middleware into one
// gin engine.
package app

import (
	"context"
	"net/http"

	"catalog_service/internal/auth"
	"catalog_service/internal/delivery"
	"catalog_service/internal/domain"
	"catalog_service/internal/middleware"
	"catalog_service/internal/repository"
	"catalog_service/internal/usecase"
	"catalog_service/pkg/db"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AdminRoles may call the write endpoints. ADMIN accounts only read.
var AdminRoles = []domain.Role{domain.RoleSuperAdmin}

type App struct {
	Router *gin.Engine
	Auth   usecase.AuthUseCase
}

func New(database *gorm.DB, tokens *auth.TokenManager, logger *logrus.Logger) *App {
	// Repository Layer
	categoryRepo := repository.NewCategoryRepository(database, logger)
	productRepo := repository.NewProductRepository(database, logger)
	userRepo := repository.NewUserRepository(database, logger)
	logger.Info("Repositories initialized.")

	// Usecase Layer
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, productRepo, logger)
	productUseCase := usecase.NewProductUseCase(productRepo, categoryRepo, logger)
	authUseCase := usecase.NewAuthUseCase(userRepo, tokens, logger)
	logger.Info("Use cases initialized.")

	categoryHandler := delivery.NewCategoryHandler(categoryUseCase, logger)
	productHandler := delivery.NewProductHandler(productUseCase, logger)
	authHandler := delivery.NewAuthHandler(authUseCase, logger)
	healthHandler := delivery.NewHealthHandler(func(ctx context.Context) error {
		return db.Ping(ctx, database)
	}, logger)
	logger.Info("Handlers initialized.")

	router := gin.New()
	router.RedirectTrailingSlash = false
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))

	authHandler.RegisterRoutes(router)
	healthHandler.RegisterRoutes(router)

	authenticated := router.Group("", middleware.Authenticate(tokens, logger))
	admin := middleware.RequireRoles(logger, AdminRoles...)
	categoryHandler.RegisterRoutes(authenticated, admin)
	productHandler.RegisterRoutes(authenticated, admin)
	router.NoRoute(func(c *gin.Context) {
		delivery.ErrorResponse(c, http.StatusNotFound, "Resource not found")
	})
	logger.Info("API Routes registered.")

	return &App{
		Router: router,
		Auth:   authUseCase,
	}
}
