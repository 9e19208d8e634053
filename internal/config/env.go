package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// loadEnvFiles loads .env files in order of precedence.
// godotenv never overrides a variable that is already set, so the first file
// to define a key wins and real environment variables beat every file.
func loadEnvFiles() {
	envFiles := []string{
		".env.local", // Local overrides (highest precedence)
		".env",
	}

	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			_ = godotenv.Load(file)
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return
	}
	homeEnvFile := filepath.Join(homeDir, ".githours", ".env")
	if _, err := os.Stat(homeEnvFile); err == nil {
		_ = godotenv.Load(homeEnvFile)
	}
}
