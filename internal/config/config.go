package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DBUrl        string
	GeminiAPIKey string
	GeminiModel  string
	WebhookToken string
	AppEnv       string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	apiKey, exists := os.LookupEnv("GEMINI_API_KEY")
	if !exists || apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	return &Config{
		Port:         getEnv("PORT", "8080"),
		DBUrl:        getEnv("DB_URL", ""),
		GeminiAPIKey: apiKey,
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		WebhookToken: getEnv("WEBHOOK_TOKEN", ""),
		AppEnv:       normalizeEnv(getEnv("APP_ENV", "production")),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}
