package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	YouTubeAPIKey string
	RedisURL      string
	LogLevel      string
	Environment   string
	CORSOrigins   string
}

func Load() *Config {
	// Optional .env for local development; deployments set real env vars.
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "5000"),
		YouTubeAPIKey: getEnv("YOUTUBE_API_KEY", ""),
		RedisURL:      getEnv("REDIS_URL", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		CORSOrigins:   getEnv("CORS_ORIGINS", "*"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
