package config

import "os"

// Getenv returns the variable's value or fallback when unset or empty.
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// AdminPassword is the shared admin secret. The default is the password the
// original site shipped with; deployments override it via ADMIN_PASSWORD.
func AdminPassword() string {
	return Getenv("ADMIN_PASSWORD", "cedarcreek")
}

// DataDir is where the file-backed store keeps its JSON blobs.
func DataDir() string {
	return Getenv("DATA_DIR", "data")
}
