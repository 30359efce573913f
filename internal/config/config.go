package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	AppPort    string
	AppEnv     string
	AppDebug   bool

	SessionSecret string
	SessionTTL    time.Duration
	CSRFSecret    string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:        os.Getenv("DB_HOST"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBPort:        os.Getenv("DB_PORT"),
		AppPort:       getenv("APP_PORT", "8080"),
		AppEnv:        os.Getenv("APP_ENV"),
		AppDebug:      cast.ToBool(os.Getenv("APP_DEBUG")),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionTTL:    cast.ToDuration(getenv("SESSION_TTL", "8h")),
		CSRFSecret:    os.Getenv("CSRF_SECRET"),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET must be set")
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 8 * time.Hour
	}
	if cfg.CSRFSecret == "" {
		cfg.CSRFSecret = cfg.SessionSecret
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
