package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	Environment string
	ServiceName string
	Version     string
	LogLevel    string
	LogFormat   string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	APIKey string // API key for authentication

	// Watering status cache in front of the ledger
	StatusCacheSize int
	StatusCacheTTL  time.Duration

	// Ledger retention sweep
	RetentionDays          int
	RetentionSweepInterval time.Duration

	// Dead letter file for events that exhausted publish retries
	DeadLetterPath string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "dev"),
		ServiceName: getEnv("SERVICE_NAME", "garden-api"),
		Version:     getEnv("VERSION", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBName:      getEnv("DB_NAME", "garden"),
		APIKey:      getEnv("API_KEY", ""),

		DeadLetterPath: getEnv("DEAD_LETTER_PATH", "deadletter.jsonl"),
	}

	port, err := getEnvInt("PORT", DefaultPort)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	cfg.StatusCacheSize, err = getEnvInt("STATUS_CACHE_SIZE", DefaultStatusCacheSize)
	if err != nil {
		return nil, err
	}

	cacheTTLSeconds, err := getEnvInt("STATUS_CACHE_TTL_SECONDS", DefaultStatusCacheTTLSeconds)
	if err != nil {
		return nil, err
	}
	cfg.StatusCacheTTL = time.Duration(cacheTTLSeconds) * time.Second

	cfg.RetentionDays, err = getEnvInt("RETENTION_DAYS", DefaultRetentionDays)
	if err != nil {
		return nil, err
	}
	if cfg.RetentionDays < MinRetentionDays {
		return nil, fmt.Errorf("RETENTION_DAYS must be at least %d to keep current-day checks clear of the sweep", MinRetentionDays)
	}

	sweepHours, err := getEnvInt("RETENTION_SWEEP_HOURS", DefaultRetentionSweepHours)
	if err != nil {
		return nil, err
	}
	cfg.RetentionSweepInterval = time.Duration(sweepHours) * time.Hour

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return parsed, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
