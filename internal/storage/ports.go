package storage

import (
	"context"
	"errors"
)

// DefaultKey is the key the ledger document is stored under.
const DefaultKey = "cal-trip-spend-v1"

var ErrEmptyKey = errors.New("empty storage key")

// Ports for the persistence collaborators.
type (
	// KV is a synchronous key-value store holding opaque blobs.
	KV interface {
		// Get returns the blob for key; ok is false when the key is absent.
		Get(ctx context.Context, key string) (value []byte, ok bool, err error)
		Put(ctx context.Context, key string, value []byte) error
		Close() error
	}
)
