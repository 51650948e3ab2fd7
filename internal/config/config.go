package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tripspend/internal/export"
	"tripspend/internal/storage"
)

// Supported values for the enumerated settings.
var (
	validBackends = []string{"sqlite", "file", "memory"}
	validLocales  = []string{"en", "zh-TW"}
	validLevels   = []string{"debug", "info", "warn", "error"}
)

type Config struct {
	// Storage
	DataBackend  string
	SQLiteDBPath string
	DataDir      string
	StorageKey   string

	// Presentation
	Locale     string
	ExportPath string

	// Logging
	LogLevel string
}

func Load() *Config {
	return &Config{
		DataBackend:  getEnv("LEDGER_BACKEND", "sqlite"),
		SQLiteDBPath: getEnv("LEDGER_SQLITE_PATH", "./data/tripspend.db"),
		DataDir:      getEnv("LEDGER_DATA_DIR", "./data"),
		StorageKey:   getEnv("LEDGER_STORAGE_KEY", storage.DefaultKey),

		Locale:     getEnv("LEDGER_LOCALE", "en"),
		ExportPath: getEnv("LEDGER_EXPORT_PATH", export.DefaultFileName),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if !contains(validBackends, c.DataBackend) {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	switch c.DataBackend {
	case "sqlite":
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		}
	case "file":
		if c.DataDir == "" {
			errors = append(errors, "data directory cannot be empty when using file backend")
		}
	}

	if strings.TrimSpace(c.StorageKey) == "" {
		errors = append(errors, "storage key cannot be empty")
	} else if strings.ContainsAny(c.StorageKey, `/\`) {
		errors = append(errors, fmt.Sprintf("invalid storage key '%s': must not contain path separators", c.StorageKey))
	}

	if !contains(validLocales, c.Locale) {
		errors = append(errors, fmt.Sprintf("invalid locale '%s': must be one of %v", c.Locale, validLocales))
	}

	if c.ExportPath == "" {
		errors = append(errors, "export path cannot be empty")
	} else if info, err := os.Stat(c.ExportPath); err == nil && info.IsDir() {
		errors = append(errors, fmt.Sprintf("export path '%s' is a directory", c.ExportPath))
	}

	if !contains(validLevels, strings.ToLower(c.LogLevel)) {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of %v", c.LogLevel, validLevels))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// StoreLocation describes where the selected backend keeps its data.
func (c *Config) StoreLocation() string {
	switch c.DataBackend {
	case "sqlite":
		return filepath.Clean(c.SQLiteDBPath)
	case "file":
		return filepath.Join(c.DataDir, c.StorageKey+".json")
	default:
		return "memory"
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
