package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DatabasePath     string
	MarketHistoryDir string
	OracleServiceURL string
	OracleAPIKey     string
	LogLevel         string
	Port             int
	DevMode          bool
	JobsEnabled      bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnvAsInt("EMPIRE_PORT", 8080),
		DevMode:          getEnvAsBool("DEV_MODE", false),
		DatabasePath:     getEnv("DATABASE_PATH", "./data/empire.db"),
		MarketHistoryDir: getEnv("MARKET_HISTORY_DIR", "./data/history"),
		OracleServiceURL: getEnv("ORACLE_SERVICE_URL", "http://localhost:9100"),
		OracleAPIKey:     getEnv("ORACLE_API_KEY", ""),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		JobsEnabled:      getEnvAsBool("JOBS_ENABLED", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	if c.MarketHistoryDir == "" {
		return fmt.Errorf("MARKET_HISTORY_DIR is required")
	}

	// Oracle credentials are optional: narrative generation degrades to
	// unavailable rather than blocking the economy engine.

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
