package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/citypermits/permits-api/internal/helpers"
)

// Config holds all process configuration, loaded from the environment.
type Config struct {
	Stage       string `validate:"required"`
	Port        string `validate:"required"`
	DatabaseURL string `validate:"required"`

	JWTSecret string `validate:"required"`

	TraficomAPIURL string `validate:"omitempty,url"`
	TraficomAPIKey string
	DVVAPIURL      string `validate:"omitempty,url"`
	DVVAPIKey      string
	TalpaAPIURL    string `validate:"omitempty,url"`
	TalpaAPIKey    string
	TalpaNamespace string

	ResendAPIKey string
	EmailFrom    string `validate:"omitempty,email"`

	RunMigrations bool
}

// Load reads configuration from the environment and validates it.
// Callers are expected to have loaded a .env file first if one exists.
func Load() (*Config, error) {
	cfg := &Config{
		Stage:          getEnv("STAGE", "dev"),
		Port:           getEnv("PORT", "8000"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		TraficomAPIURL: os.Getenv("TRAFICOM_API_URL"),
		TraficomAPIKey: os.Getenv("TRAFICOM_API_KEY"),
		DVVAPIURL:      os.Getenv("DVV_API_URL"),
		DVVAPIKey:      os.Getenv("DVV_API_KEY"),
		TalpaAPIURL:    os.Getenv("TALPA_API_URL"),
		TalpaAPIKey:    os.Getenv("TALPA_API_KEY"),
		TalpaNamespace: getEnv("TALPA_NAMESPACE", "asukaspysakointi"),
		ResendAPIKey:   os.Getenv("RESEND_API_KEY"),
		EmailFrom:      getEnv("EMAIL_FROM", "noreply@parking.example.com"),
		RunMigrations:  getEnvBool("RUN_MIGRATIONS", true),
	}

	if !helpers.IsValidStage(cfg.Stage) {
		return nil, fmt.Errorf("invalid stage %q", cfg.Stage)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
