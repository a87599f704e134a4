package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath            string
	SessionSecret     string
	Addr              string
	GinMode           string
	LogLevel          string
	SeedAdminPassword string
}

func Load() *Config {
	// A local .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		DBPath:            getEnv("DB_PATH", "db.sqlite"),
		SessionSecret:     getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		Addr:              getEnv("ADDR", ":8080"),
		GinMode:           getEnv("GIN_MODE", "debug"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", "admin"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
