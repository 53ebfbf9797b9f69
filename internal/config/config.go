// Package config loads application configuration from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/octoscout/octoscout/internal/domain"
)

// Config holds the environment-sourced settings of a run.
type Config struct {
	// Token is the GitHub API bearer token. Required.
	Token string

	// OutputDir is the directory export files are written to.
	OutputDir string
}

// Load reads configuration from a .env file (if present) and environment
// variables. A missing token is fatal and reported before any network
// activity.
func Load() (*Config, error) {
	// Ignore a missing .env file; plain environment variables are fine.
	_ = godotenv.Load()

	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return nil, domain.ErrMissingCredential
	}

	return &Config{
		Token:     token,
		OutputDir: getEnv("OUTPUT_DIR", "output"),
	}, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
