package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"catalog_service/config"
	"catalog_service/internal/app"
	"catalog_service/internal/auth"
	grpcdelivery "catalog_service/internal/delivery/grpc"
	"catalog_service/internal/domain"
	"catalog_service/internal/repository"
	"catalog_service/internal/seed"
	"catalog_service/pkg/db"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadConfig(logger)
	if err != nil {
		logger.Fatalf("FATAL: %v", err)
	}

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
		logger.Warnf("Invalid LOG_LEVEL '%s', using default: %s", cfg.LogLevel, logLevel.String())
	}
	logger.SetLevel(logLevel)
	if logLevel < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	logger.Info("Starting Catalog Service...")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Database Connection ---
	database, err := db.Connect(cfg.DatabaseURL, db.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	}, logger)
	if err != nil {
		logger.Fatalf("FATAL: Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(database); err != nil {
			logger.Errorf("Failed to close database pool: %v", err)
			return
		}
		logger.Info("Database connection closed.")
	}()
	logger.Info("Database connection established.")

	if cfg.AutoMigrate {
		if err := repository.Migrate(database); err != nil {
			logger.Fatalf("FATAL: %v", err)
		}
		logger.Info("Database schema migrated.")
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL, cfg.JWTIssuer)
	application := app.New(database, tokens, logger)

	err = seed.Users(ctx, application.Auth, []seed.Account{
		{Name: "Super", Lastname: "Admin", Email: cfg.SeedSuperAdminEmail, Password: cfg.SeedSuperAdminPassword, Role: domain.RoleSuperAdmin},
		{Name: "User", Lastname: "Client", Email: cfg.SeedUserEmail, Password: cfg.SeedUserPassword, Role: domain.RoleUser},
	}, logger)
	if err != nil {
		logger.Fatalf("FATAL: %v", err)
	}

	// --- gRPC health ---
	grpcListener, err := net.Listen("tcp", cfg.GrpcPort)
	if err != nil {
		logger.Fatalf("FATAL: Failed to listen on gRPC port %s: %v", cfg.GrpcPort, err)
	}
	healthServer := grpcdelivery.NewHealthServer(logger)
	go func() {
		if err := healthServer.Serve(grpcListener); err != nil {
			logger.Errorf("gRPC health server stopped with error: %v", err)
		}
	}()

	// --- Start Server ---
	server := &http.Server{
		Addr:    cfg.HTTPPort,
		Handler: application.Router,
	}
	go func() {
		logger.Infof("Starting server on port %s", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("Failed to start server: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received, draining connections...")
	healthServer.MarkNotServing()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("HTTP server shutdown failed: %v", err)
	}
	healthServer.Stop()
	logger.Info("Catalog Service stopped.")
}
