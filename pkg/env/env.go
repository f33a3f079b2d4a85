// Package env holds tiny raw-environment helpers for knobs that are read
// before the typed config is loaded (log format, dotenv path).
package env

import (
	"os"
	"strings"
)

// Get returns the value of the given environment variable or a fallback.
func Get(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// Enabled reports whether the variable is set to a truthy value.
func Enabled(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	}
	return false
}
