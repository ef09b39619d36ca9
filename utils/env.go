package utils

import "os"

// EnvOrDefault reads an environment variable with a fallback.
func EnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
