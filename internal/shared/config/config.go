package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Listings source backends.
const (
	ListingsSourceXLSX     = "xlsx"
	ListingsSourcePostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	Env             string

	// CredentialFile points at the local TOML credential table, see LoadAPIKey.
	CredentialFile string

	// ListingsSource selects where job listings are read from: xlsx or postgres.
	ListingsSource string
	ListingsFile   string
	ListingsSheet  string
	DatabaseURL    string

	// ArtifactTTL bounds how long generated PDFs stay downloadable.
	ArtifactTTL time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	return Config{
		Port:            getEnv("PORT", "8080"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		CredentialFile:  getEnv("CREDENTIAL_FILE", "credential"),
		ListingsSource:  normalizeListingsSource(getEnv("LISTINGS_SOURCE", "xlsx")),
		ListingsFile:    getEnv("LISTINGS_FILE", "listings.xlsx"),
		ListingsSheet:   getEnv("LISTINGS_SHEET", "Sheet1"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		ArtifactTTL:     getEnvMinutes("ARTIFACT_TTL_MINUTES", 15*time.Minute),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvMinutes(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		return def
	}
	return time.Duration(minutes) * time.Minute
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeListingsSource(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "postgres", "pg":
		return ListingsSourcePostgres
	default:
		return ListingsSourceXLSX
	}
}
