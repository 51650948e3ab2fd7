package backend

import (
	"context"

	"tripspend/internal/storage"
)

// CleanupFunc represents a cleanup function for resources
type CleanupFunc func() error

// StoreResult contains the store instance and optional cleanup function
type StoreResult struct {
	Store   storage.KV
	Cleanup CleanupFunc
}

// Factory creates key-value stores based on configuration
type Factory interface {
	// CreateStore creates a store instance based on the provided config
	CreateStore(ctx context.Context, config Config) (*StoreResult, error)
}

// Config holds configuration for store creation
type Config struct {
	Type BackendType

	// SQLite specific
	SQLiteDBPath string

	// File backend specific
	DataDirectory string
}

// BackendType represents the type of backend
type BackendType string

const (
	SQLiteBackend BackendType = "sqlite"
	FileBackend   BackendType = "file"
	MemoryBackend BackendType = "memory"
)

// String implements fmt.Stringer
func (bt BackendType) String() string {
	return string(bt)
}

// IsValid returns true if the backend type is valid
func (bt BackendType) IsValid() bool {
	switch bt {
	case SQLiteBackend, FileBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
