package memory

import (
	"context"
	"sync"

	"tripspend/internal/storage"
)

// Store is a map-backed KV. Values are copied on the way in and out.
type Store struct {
	mu    sync.Mutex
	items map[string][]byte
}

var _ storage.KV = (*Store)(nil)

func New() *Store {
	return &Store{items: make(map[string][]byte)}
}

// Get returns a copy of the stored blob.
func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, storage.ErrEmptyKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.items[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (s *Store) Put(_ context.Context, key string, value []byte) error {
	if key == "" {
		return storage.ErrEmptyKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = append([]byte(nil), value...)
	return nil
}

func (s *Store) Close() error { return nil }
