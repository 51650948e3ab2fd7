// Package cli provides common CLI initialization utilities shared by the
// tripspend commands: environment loading, configuration, logging and
// opening the ledger on the configured backend.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/joho/godotenv"

	"tripspend/internal/backend"
	"tripspend/internal/config"
	applog "tripspend/internal/log"
	"tripspend/internal/services"
)

// SetupLogger initializes structured logging at the given level, writing
// to w, and installs it as the default logger.
func SetupLogger(level string, w io.Writer) *applog.Logger {
	cfg := applog.DefaultConfig()
	cfg.Level = applog.ParseLevel(level)
	cfg.Component = applog.ComponentCLI
	if w != nil {
		cfg.Output = w
	}
	logger := applog.New(cfg)
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local use.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration from the environment, lets
// overrides adjust it (command-line flags) and validates the result.
func LoadAndValidateConfig(overrides ...func(*config.Config)) (*config.Config, error) {
	cfg := config.Load()
	for _, apply := range overrides {
		apply(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// OpenLedger creates the configured store and loads the ledger from it.
// Only store creation can fail; a missing or unreadable document yields
// the default ledger.
func OpenLedger(ctx context.Context, cfg *config.Config, logger *applog.Logger) (*services.LedgerService, error) {
	bcfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		return nil, err
	}

	res, err := backend.NewFactory(logger).CreateStore(ctx, bcfg)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to open store",
			applog.NewFields().
				WithErrorType(applog.ErrorTypeConfiguration).
				WithError(err).
				ToSlice()...)
		return nil, fmt.Errorf("open %s store at %s: %w", bcfg.Type, cfg.StoreLocation(), err)
	}

	return services.Open(ctx, res.Store, cfg.StorageKey, logger), nil
}
