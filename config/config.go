package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	HTTPPort    string `envconfig:"HTTP_PORT"    default:":8081"`
	GrpcPort    string `envconfig:"GRPC_PORT"    default:":50051"` // gRPC health endpoint
	LogLevel    string `envconfig:"LOG_LEVEL"    default:"info"`

	JWTSecret string        `envconfig:"JWT_SECRET" required:"true"`
	JWTTTL    time.Duration `envconfig:"JWT_TTL"    default:"24h"`
	JWTIssuer string        `envconfig:"JWT_ISSUER" default:"catalog_service"`

	DBMaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS"    default:"25"`
	DBMaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS"    default:"5"`
	DBConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"30m"`

	AutoMigrate     bool          `envconfig:"AUTO_MIGRATE"     default:"true"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	SeedSuperAdminEmail    string `envconfig:"SEED_SUPER_ADMIN_EMAIL"`
	SeedSuperAdminPassword string `envconfig:"SEED_SUPER_ADMIN_PASSWORD"`
	SeedUserEmail          string `envconfig:"SEED_USER_EMAIL"`
	SeedUserPassword       string `envconfig:"SEED_USER_PASSWORD"`
}

// LoadConfig reads an optional .env file, then the environment.
func LoadConfig(logger *logrus.Logger) (*Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warnf("Error loading .env file (but continuing): %v", err)
	} else if err == nil {
		logger.Info("Loaded configuration from .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration from environment variables: %w", err)
	}

	logger.Infof("Configuration loaded: HTTP Port=%s, GRPC Port=%s, LogLevel=%s", cfg.HTTPPort, cfg.GrpcPort, cfg.LogLevel)
	return &cfg, nil
}
