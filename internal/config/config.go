// Package config contains everything related to configuration
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/j-veylop/bikeshare-explorer/internal/dataset"
)

// Config holds the application configuration.
type Config struct {
	DataDir     string
	CatalogPath string
	LogLevel    string
	LogFile     string
	PageSize    int
	Catalog     *Catalog
}

// Default values
const (
	defaultDataDir  = "."
	defaultLogLevel = "warn"
	defaultPageSize = 5
)

// Load reads configuration from .env files and environment variables.
func Load() (*Config, error) {
	// Try loading .env from multiple locations
	envPaths := getEnvPaths()
	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}

	cfg := &Config{
		DataDir:     getEnvString("BIKESHARE_DATA_DIR", defaultDataDir),
		CatalogPath: getEnvString("BIKESHARE_CATALOG", ""),
		LogLevel:    getEnvString("BIKESHARE_LOG_LEVEL", defaultLogLevel),
		LogFile:     getEnvString("BIKESHARE_LOG_FILE", ""),
		PageSize:    getEnvInt("BIKESHARE_PAGE_SIZE", defaultPageSize),
	}

	if cfg.PageSize <= 0 {
		return nil, fmt.Errorf("BIKESHARE_PAGE_SIZE must be positive, got %d", cfg.PageSize)
	}

	catalog := DefaultCatalog()
	if cfg.CatalogPath != "" {
		override, err := LoadCatalog(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load city catalog: %w", err)
		}
		catalog = catalog.Merge(override)
	}
	cfg.Catalog = catalog

	return cfg, nil
}

// Sources resolves the catalog against the data directory.
func (c *Config) Sources() dataset.Sources {
	return c.Catalog.Sources(c.DataDir)
}

// getEnvPaths returns a list of paths to check for .env files.
func getEnvPaths() []string {
	var paths []string

	// Current directory
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}

	// Home directory locations
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "bikeshare", ".env"),
			filepath.Join(home, ".bikeshare", ".env"),
		)
	}

	return paths
}

// getEnvString retrieves a string environment variable or returns the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns the default.
// Unparseable values fall back to the default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
