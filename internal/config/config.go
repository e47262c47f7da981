// Package config loads process configuration from the environment, with a
// .env file honored when present.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries every runtime setting. All values have working defaults
// so the binaries run with no environment at all.
type Config struct {
	// HTTP server
	Port int

	// Path of the registry's backing CSV file.
	StorageFile string

	// Optional log file sink; empty means stdout only.
	LogFilePath string

	// Bound of each playlist's recently-played history.
	RecentLimit int
}

// Load reads the environment. A missing .env file is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getEnvInt("PORT", 8080),
		StorageFile: getEnvString("STORAGE_FILE", "employees.csv"),
		LogFilePath: getEnvString("LOG_FILE_PATH", ""),
		RecentLimit: getEnvInt("PLAYLIST_RECENT_LIMIT", 10),
	}
}

func getEnvString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}
