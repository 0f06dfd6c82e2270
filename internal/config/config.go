package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all adapter configuration
type Config struct {
	Gateway Gateway
	Secrets Secrets
	Logger  Logger
}

// Gateway holds TotalApps transaction API configuration
type Gateway struct {
	Endpoint    string        // Transaction API endpoint
	Environment string        // "sandbox" or "production"
	Username    string        // Gateway username (may come from the secrets backend instead)
	Password    string        // Gateway password (may come from the secrets backend instead)
	Timeout     time.Duration // Request timeout
}

// Secrets selects and configures the credential backend
type Secrets struct {
	Backend    string // "env", "aws", "vault"
	SecretPath string // Path of the gateway password secret
	AWSRegion  string
	VaultAddr  string
	VaultToken string
}

// Logger holds logging configuration
type Logger struct {
	Level       string // debug, info, warn, error
	Development bool
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Gateway: Gateway{
			Endpoint:    getEnv("TOTALAPPS_ENDPOINT", ""),
			Environment: getEnv("TOTALAPPS_ENV", "sandbox"),
			Username:    getEnv("TOTALAPPS_USERNAME", ""),
			Password:    getEnv("TOTALAPPS_PASSWORD", ""),
			Timeout:     time.Duration(getEnvAsInt("TOTALAPPS_TIMEOUT", 30)) * time.Second,
		},
		Secrets: Secrets{
			Backend:    getEnv("SECRETS_BACKEND", "env"),
			SecretPath: getEnv("SECRETS_PATH", "TOTALAPPS_PASSWORD"),
			AWSRegion:  getEnv("AWS_REGION", "us-east-1"),
			VaultAddr:  getEnv("VAULT_ADDR", ""),
			VaultToken: getEnv("VAULT_TOKEN", ""),
		},
		Logger: Logger{
			Level:       getEnv("LOG_LEVEL", "info"),
			Development: getEnvAsBool("LOG_DEVELOPMENT", false),
		},
	}

	if cfg.Gateway.Username == "" {
		return nil, fmt.Errorf("TOTALAPPS_USERNAME is required")
	}
	if cfg.Gateway.Environment != "sandbox" && cfg.Gateway.Environment != "production" {
		return nil, fmt.Errorf("TOTALAPPS_ENV must be sandbox or production")
	}

	return cfg, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
