package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/passforge/passforge-go/internal/passgen"
)

type Config struct {
	Port              string
	Env               string
	DatabaseDSN       string
	JWTSecret         string
	JWTExpiry         time.Duration
	MaxPasswordLength int
}

func Load() Config {
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("ENV", "development"),
		DatabaseDSN:       getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/passforge?parseTime=true"),
		JWTSecret:         getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		JWTExpiry:         24 * time.Hour,
		MaxPasswordLength: getEnvInt("MAX_PASSWORD_LENGTH", passgen.DefaultMaxLength),
	}

	if cfg.Env == "production" && cfg.JWTSecret == "dev-secret-change-in-production" {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	if cfg.MaxPasswordLength < 1 {
		slog.Warn("invalid MAX_PASSWORD_LENGTH, using default", "value", cfg.MaxPasswordLength)
		cfg.MaxPasswordLength = passgen.DefaultMaxLength
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer environment variable, using default", "key", key, "value", v)
		return fallback
	}
	return n
}
