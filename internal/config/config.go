// Package config provides configuration loading from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/usestring/boredq/pkg/client"
)

// Defaults
const (
	DefaultHTTPClientTimeoutMs = 10000
	DefaultResultCacheMaxItems = 256
	DefaultEnvFile             = ".env"
)

// Config holds all configuration for boredq.
type Config struct {
	BaseURL             string        // BORED_BASE_URL, default client.DefaultBaseURL
	HTTPClientTimeout   time.Duration // HTTP_CLIENT_TIMEOUT_MS, default 10000ms; 0 disables the timeout
	ResultCacheMaxItems int           // RESULT_CACHE_MAX_ITEMS, default 256; 0 disables caching
	RandomWorkers       int           // RANDOM_WORKERS, default 4

	// Logging configuration
	LogLevel      string // LOG_LEVEL, default "warn"
	LogFormat     string // LOG_FORMAT, "text" or "json", default "text"
	LogFile       string // LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // LOG_MAX_BACKUPS, default 3
	LogMaxAgeDays int    // LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // LOG_COMPRESS, default true
}

// LoadDotEnv loads variables from path into the process environment without
// overriding ones already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = DefaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		BaseURL:             getEnvString("BORED_BASE_URL", client.DefaultBaseURL),
		HTTPClientTimeout:   getEnvDurationMs("HTTP_CLIENT_TIMEOUT_MS", DefaultHTTPClientTimeoutMs),
		ResultCacheMaxItems: getEnvInt("RESULT_CACHE_MAX_ITEMS", DefaultResultCacheMaxItems),
		RandomWorkers:       getEnvInt("RANDOM_WORKERS", client.DefaultRandomWorkers),

		LogLevel:      getEnvString("LOG_LEVEL", "warn"),
		LogFormat:     getEnvString("LOG_FORMAT", "text"),
		LogFile:       getEnvString("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 28),
		LogCompress:   getEnvBool("LOG_COMPRESS", true),
	}
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i >= 0 {
			return i
		}
	}
	return defaultVal
}

func getEnvDurationMs(key string, defaultMs int) time.Duration {
	ms := getEnvInt(key, defaultMs)
	return time.Duration(ms) * time.Millisecond
}
