// Package storage persists answer records in a local string-keyed store.
//
// Backends implement Store. Adapter sits on top and turns structured values
// into JSON text and back, absorbing every storage failure: a load that
// cannot produce a valid value returns the caller's fallback, and a save
// that fails is logged and dropped.
package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrUnavailable is returned by a backend that has no persistent storage
// in the current environment.
var ErrUnavailable = errors.New("persistent store unavailable")

// Store is a synchronous string-keyed persistent store.
type Store interface {
	// Get returns the value stored under key. ok is false when the key
	// is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Kinds of backends accepted by Open.
const (
	KindSQLite = "sqlite"
	KindMemory = "memory"
	KindNone   = "none"
)

// Open creates the backend named by kind. path is only used by sqlite.
func Open(kind, path string) (Store, error) {
	switch kind {
	case KindSQLite, "":
		return OpenSQLite(path)
	case KindMemory:
		return NewMemoryStore(), nil
	case KindNone:
		return Unavailable{}, nil
	}
	return nil, fmt.Errorf("unknown store kind %q", kind)
}

// MemoryStore keeps values in process memory.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

// Get implements Store.
func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set implements Store.
func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	return nil
}

// Unavailable is a Store for environments without persistent storage.
type Unavailable struct{}

// Get implements Store.
func (Unavailable) Get(context.Context, string) (string, bool, error) {
	return "", false, ErrUnavailable
}

// Set implements Store.
func (Unavailable) Set(context.Context, string, string) error {
	return ErrUnavailable
}

// Close implements Store.
func (Unavailable) Close() error {
	return nil
}
