// Package config builds runtime settings from the environment with
// development defaults. Callers load a .env file first (godotenv) if
// they want one; this package only reads the process environment.
package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the API server.
//
// RefreshSecret falls back to AccessSecret when JWT_REFRESH_SECRET is
// unset. That keeps single-secret deployments working; it is a
// documented operational default, not a hidden global.
type Config struct {
	Port            string
	Env             string
	AccessSecret    string
	RefreshSecret   string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	PostgresDB       string
	PostgresUser     string
	PostgresPassword string
	PostgresHost     string
	PostgresPort     string

	// RedisAddr selects the redis-backed refresh registry when set;
	// empty means the in-process registry.
	RedisAddr string
}

func Load() *Config {
	cfg := &Config{
		Port:             "8080",
		Env:              "development",
		AccessSecret:     "dev-jwt-secret-change-in-production",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  7 * 24 * time.Hour,
		PostgresDB:       "vendio",
		PostgresUser:     "postgres",
		PostgresPassword: "postgres",
		PostgresHost:     "localhost",
		PostgresPort:     "5432",
	}

	overlayString(&cfg.Port, "PORT")
	overlayString(&cfg.Env, "APP_ENV")
	overlayString(&cfg.AccessSecret, "JWT_SECRET")
	cfg.RefreshSecret = cfg.AccessSecret
	overlayString(&cfg.RefreshSecret, "JWT_REFRESH_SECRET")
	overlayDuration(&cfg.AccessTokenTTL, "ACCESS_TOKEN_TTL")
	overlayDuration(&cfg.RefreshTokenTTL, "REFRESH_TOKEN_TTL")
	overlayString(&cfg.PostgresDB, "POSTGRES_DB")
	overlayString(&cfg.PostgresUser, "POSTGRES_USER")
	overlayString(&cfg.PostgresPassword, "POSTGRES_PASSWORD")
	overlayString(&cfg.PostgresHost, "POSTGRES_HOST")
	overlayString(&cfg.PostgresPort, "POSTGRES_PORT")
	overlayString(&cfg.RedisAddr, "REDIS_ADDR")

	return cfg
}

func (c *Config) Production() bool {
	return c.Env == "production"
}

func (c *Config) DBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.PostgresUser, c.PostgresPassword, c.PostgresHost, c.PostgresPort, c.PostgresDB)
}

func overlayString(dst *string, key string) {
	if value := os.Getenv(key); value != "" {
		*dst = value
	}
}

func overlayDuration(dst *time.Duration, key string) {
	value := os.Getenv(key)
	if value == "" {
		return
	}
	if parsed, err := time.ParseDuration(value); err == nil {
		*dst = parsed
	}
}
