// Package config provides configuration management for the ledger tool.
// It loads configuration from environment variables and .env files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config represents the application configuration.
type Config struct {
	// DataDir is the root directory for application data.
	DataDir string
	// DBPath is the SQLite database file; defaults to {DataDir}/ledger.db.
	DBPath string
	// BucketMapping is an optional YAML file overriding the account
	// bucket keywords used in reports.
	BucketMapping string
	Debug         bool
}

// Load loads configuration from environment variables.
// It automatically loads a .env file from the current directory if available.
// You can optionally specify a custom .env file path.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Try to load .env from current directory (ignore error if not found)
		_ = godotenv.Load()
	}

	dataDir := getEnvOrDefault("LEDGER_DATA_DIR", defaultDataDir())

	config := &Config{
		DataDir:       dataDir,
		DBPath:        getEnvOrDefault("LEDGER_DB_PATH", filepath.Join(dataDir, "ledger.db")),
		BucketMapping: os.Getenv("LEDGER_BUCKET_MAPPING"),
		Debug:         os.Getenv("DEBUG") == "true",
	}

	return config, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("missing required configuration: LEDGER_DATA_DIR\nPlease check your .env file or environment variables")
	}
	if c.BucketMapping != "" {
		if _, err := os.Stat(c.BucketMapping); err != nil {
			return fmt.Errorf("bucket mapping file not found: %s", c.BucketMapping)
		}
	}
	return nil
}

// EnsureDataDir creates the data directory if it doesn't exist.
func (c *Config) EnsureDataDir() error {
	if err := os.MkdirAll(c.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", c.DataDir, err)
	}
	return nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ledger"
	}
	return filepath.Join(home, ".ledger")
}

// getEnvOrDefault returns the value of the environment variable or a default value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
