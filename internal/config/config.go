// Package config centralises environment parsing for the API.
package config

import (
	"os"
	"strings"
)

// Config captures the runtime configuration. DatabaseURL may be empty: the
// API then runs on in-memory repositories (nothing survives a restart),
// which is enough for local development.
type Config struct {
	HTTPAddress       string
	DatabaseURL       string
	CatalogPath       string
	JWTSecret         string
	HouseholdEmail    string
	HouseholdPassword string
	AllowOrigins      []string
}

// Load reads environment variables, applying defaults for local dev.
func Load() Config {
	return Config{
		HTTPAddress:       getEnv("HTTP_ADDRESS", ":8000"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		CatalogPath:       getEnv("CATALOG_PATH", "roadmap.csv"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		HouseholdEmail:    os.Getenv("HOUSEHOLD_EMAIL"),
		HouseholdPassword: os.Getenv("HOUSEHOLD_PASSWORD"),
		AllowOrigins:      splitAndTrim(getEnv("ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173")),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
