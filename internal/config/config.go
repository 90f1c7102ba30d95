package config

import "os"

// Get returns the environment value for key, or fallback when unset
// or empty. Secrets without sensible defaults are read with os.Getenv
// and validated at the composition root.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
