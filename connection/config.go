package connection

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	MongoURI        string
	DBName          string
	JWTSecret       string
	JWTExpiry       time.Duration
	StripeSecretKey string
	LegacyRoleCheck bool
}

// LoadConfig reads the environment once at startup. A missing .env file is
// fine; missing secrets are not.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: No .env file found or failed to load") // Use only in dev
	}

	cfg := &Config{
		Port:            os.Getenv("PORT"),
		MongoURI:        os.Getenv("MONGODB_URI"),
		DBName:          os.Getenv("DB_NAME"),
		JWTSecret:       os.Getenv("JWT_ACCESS_TOKEN"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		LegacyRoleCheck: os.Getenv("LEGACY_ROLE_CHECK") == "1",
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.MongoURI == "" {
		return nil, errors.New("environment variable MONGODB_URI is not set")
	}
	if cfg.DBName == "" {
		cfg.DBName = "oldCarHat"
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("environment variable JWT_ACCESS_TOKEN is not set")
	}

	cfg.JWTExpiry = time.Hour
	if raw := os.Getenv("JWT_SECRET_EXPIRESIN"); raw != "" {
		expiry, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_SECRET_EXPIRESIN: %w", err)
		}
		cfg.JWTExpiry = expiry
	}

	return cfg, nil
}
