package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func validConfig() Config {
	return Config{
		DataBackend:  "sqlite",
		SQLiteDBPath: "./test.db",
		DataDir:      "./data",
		StorageKey:   "cal-trip-spend-v1",
		Locale:       "en",
		ExportPath:   "trip-expenses.csv",
		LogLevel:     "info",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		wantErr     bool
		errorString string
	}{
		{
			name:   "valid sqlite backend config",
			mutate: func(c *Config) {},
		},
		{
			name:   "valid file backend config",
			mutate: func(c *Config) { c.DataBackend = "file" },
		},
		{
			name:   "valid memory backend with zh-TW locale",
			mutate: func(c *Config) { c.DataBackend = "memory"; c.Locale = "zh-TW"; c.LogLevel = "DEBUG" },
		},
		{
			name:        "invalid data backend",
			mutate:      func(c *Config) { c.DataBackend = "sheets" },
			wantErr:     true,
			errorString: "invalid data backend 'sheets': must be one of [sqlite file memory]",
		},
		{
			name:        "sqlite backend missing database path",
			mutate:      func(c *Config) { c.SQLiteDBPath = "" },
			wantErr:     true,
			errorString: "SQLite database path cannot be empty when using sqlite backend",
		},
		{
			name:        "file backend missing directory",
			mutate:      func(c *Config) { c.DataBackend = "file"; c.DataDir = "" },
			wantErr:     true,
			errorString: "data directory cannot be empty when using file backend",
		},
		{
			name:        "empty storage key",
			mutate:      func(c *Config) { c.StorageKey = "  " },
			wantErr:     true,
			errorString: "storage key cannot be empty",
		},
		{
			name:        "storage key with separator",
			mutate:      func(c *Config) { c.StorageKey = "a/b" },
			wantErr:     true,
			errorString: "invalid storage key 'a/b'",
		},
		{
			name:        "unknown locale",
			mutate:      func(c *Config) { c.Locale = "fr" },
			wantErr:     true,
			errorString: "invalid locale 'fr'",
		},
		{
			name:        "empty export path",
			mutate:      func(c *Config) { c.ExportPath = "" },
			wantErr:     true,
			errorString: "export path cannot be empty",
		},
		{
			name:        "invalid log level",
			mutate:      func(c *Config) { c.LogLevel = "verbose" },
			wantErr:     true,
			errorString: "invalid log level 'verbose'",
		},
		{
			name: "multiple errors are combined",
			mutate: func(c *Config) {
				c.DataBackend = "nope"
				c.Locale = "xx"
			},
			wantErr:     true,
			errorString: "invalid locale 'xx'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error but got none")
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("expected error to contain %q, got %q", tt.errorString, err.Error())
				}
			} else if err != nil {
				t.Errorf("expected no error but got: %v", err)
			}
		})
	}
}

func TestConfig_ValidateExportPathIsDirectory(t *testing.T) {
	cfg := validConfig()
	cfg.ExportPath = t.TempDir()

	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "is a directory") {
		t.Fatalf("expected directory error, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		for _, key := range []string{"LEDGER_BACKEND", "LEDGER_SQLITE_PATH", "LEDGER_DATA_DIR", "LEDGER_STORAGE_KEY", "LEDGER_LOCALE", "LEDGER_EXPORT_PATH", "LOG_LEVEL"} {
			t.Setenv(key, "")
		}

		cfg := Load()

		if cfg.DataBackend != "sqlite" {
			t.Errorf("expected default backend sqlite, got %s", cfg.DataBackend)
		}
		if cfg.SQLiteDBPath != "./data/tripspend.db" {
			t.Errorf("unexpected default sqlite path %s", cfg.SQLiteDBPath)
		}
		if cfg.StorageKey != "cal-trip-spend-v1" {
			t.Errorf("unexpected default storage key %s", cfg.StorageKey)
		}
		if cfg.Locale != "en" || cfg.ExportPath != "trip-expenses.csv" || cfg.LogLevel != "info" {
			t.Errorf("unexpected defaults: %+v", cfg)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("defaults should validate: %v", err)
		}
	})

	t.Run("environment variables", func(t *testing.T) {
		t.Setenv("LEDGER_BACKEND", "file")
		t.Setenv("LEDGER_DATA_DIR", "/tmp/ledger")
		t.Setenv("LEDGER_STORAGE_KEY", "trip-2026")
		t.Setenv("LEDGER_LOCALE", "zh-TW")
		t.Setenv("LOG_LEVEL", "debug")

		cfg := Load()

		if cfg.DataBackend != "file" || cfg.DataDir != "/tmp/ledger" || cfg.StorageKey != "trip-2026" {
			t.Errorf("env not applied: %+v", cfg)
		}
		if cfg.Locale != "zh-TW" || cfg.LogLevel != "debug" {
			t.Errorf("env not applied: %+v", cfg)
		}
		if got, want := cfg.StoreLocation(), filepath.Join("/tmp/ledger", "trip-2026.json"); got != want {
			t.Errorf("expected location %s, got %s", want, got)
		}
	})
}

func TestStoreLocation(t *testing.T) {
	cfg := validConfig()
	if got := cfg.StoreLocation(); got != "test.db" {
		t.Errorf("expected test.db, got %s", got)
	}
	cfg.DataBackend = "memory"
	if got := cfg.StoreLocation(); got != "memory" {
		t.Errorf("expected memory, got %s", got)
	}
}
