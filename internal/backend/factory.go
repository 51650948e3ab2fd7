package backend

import (
	"context"
	"fmt"

	applog "tripspend/internal/log"
	"tripspend/internal/storage"
	"tripspend/internal/storage/memory"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *applog.Logger
}

// NewFactory creates a new store factory
func NewFactory(logger *applog.Logger) Factory {
	if logger == nil {
		logger = applog.FromContext(context.Background())
	}
	return &DefaultFactory{
		logger: logger.WithComponent(applog.ComponentBackend),
	}
}

// CreateStore implements Factory.CreateStore
func (f *DefaultFactory) CreateStore(ctx context.Context, config Config) (*StoreResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case SQLiteBackend:
		return f.createSQLiteStore(ctx, config)
	case FileBackend:
		return f.createFileStore(ctx, config)
	case MemoryBackend:
		return f.createMemoryStore(ctx)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createSQLiteStore(ctx context.Context, config Config) (*StoreResult, error) {
	s, err := storage.NewSQLiteStore(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite store: %w", err)
	}

	f.logger.DebugContext(ctx, "Initialized SQLite backend", applog.FieldBackend, config.Type, applog.FieldPath, config.SQLiteDBPath)

	return &StoreResult{Store: s, Cleanup: s.Close}, nil
}

func (f *DefaultFactory) createFileStore(ctx context.Context, config Config) (*StoreResult, error) {
	s, err := storage.NewFileStore(config.DataDirectory)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file store: %w", err)
	}

	f.logger.DebugContext(ctx, "Initialized file backend", applog.FieldBackend, config.Type, applog.FieldPath, config.DataDirectory)

	return &StoreResult{Store: s, Cleanup: s.Close}, nil
}

func (f *DefaultFactory) createMemoryStore(ctx context.Context) (*StoreResult, error) {
	f.logger.DebugContext(ctx, "Initialized memory backend", applog.FieldBackend, MemoryBackend)

	return &StoreResult{
		Store:   memory.New(),
		Cleanup: nil, // nothing to release
	}, nil
}
