package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads .env into the process environment. A missing file is not an
// error; env vars can be set by other means. Reports whether a file was loaded.
func LoadEnv() bool {
	return godotenv.Load() == nil
}

// GetEnv returns the value of key, or def when it is unset or empty.
func GetEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
