package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with values from the environment, loading a .env
// file first when one exists. Missing variables leave the current values
// untouched.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("TODOVAULT_STORAGE_BACKEND"); v != "" {
		cfg.StorageBackend = Backend(v)
	}
	if v := os.Getenv("TODOVAULT_STORAGE_PATH"); v != "" {
		cfg.StoragePath = v
	}
	if v := os.Getenv("TODOVAULT_SESSION_SECRET"); v != "" {
		cfg.SessionSecret = v
	}
}
