package config

import (
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv             string
	HTTPPort           int
	DataDir            string
	OpeningSurveyFile  string
	ClosingSurveyFile  string
	StaticDir          string
	CORSAllowedOrigins []string
	HeaderAnchors      []string
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() *Config {
	portStr := getEnv("HTTP_PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		port = 8080
	}

	return &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		HTTPPort:           port,
		DataDir:            getEnv("DATA_DIR", "./data"),
		OpeningSurveyFile:  getEnv("OPENING_SURVEY_FILE", "opening_survey.csv"),
		ClosingSurveyFile:  getEnv("CLOSING_SURVEY_FILE", "closing_survey.csv"),
		StaticDir:          getEnv("STATIC_DIR", ""),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		HeaderAnchors:      getEnvList("HEADER_ANCHORS", "Submitted Date,First Name"),
	}
}

// NewLogger creates a new Zap logger based on the config.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.AppEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvList(key, fallback string) []string {
	raw := getEnv(key, fallback)

	var values []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
