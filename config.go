package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the storefront backend.
type Config struct {
	Port string
	Env  string

	// Snapshot persistence: Redis when an address is set, otherwise
	// JSON files under DataDir.
	RedisAddr     string
	RedisPassword string
	DataDir       string

	// Generative image API
	GeminiAPIKey string
	GeminiModel  string
	// Delay between calls when regenerating the whole catalog.
	ImageGenDelay time.Duration
}

// LoadConfig reads configuration from the environment, with a local
// .env file as an optional source.
func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		DataDir:       getEnv("DATA_DIR", "./data"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-flash-image"),
		ImageGenDelay: time.Second,
	}

	if raw := os.Getenv("IMAGE_GEN_DELAY"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			cfg.ImageGenDelay = d
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
