package session

import (
	"context"
	"fmt"
	"sync"
)

// Keys used in the store. Credentials live under userKeyPrefix+username.
const (
	quizKey        = "quiz"
	currentUserKey = "loggedInUser"
	userKeyPrefix  = "user:"
)

// KV is the client's local key-value storage. Writes are synchronous and the last
// write for a key wins.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// Driver names accepted by Open.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Open returns the KV backend for driver, rooted at path when the driver needs one.
func Open(ctx context.Context, driver, path string) (KV, error) {
	switch driver {
	case DriverMemory:
		return NewMemoryKV(), nil
	case DriverFile, "":
		return OpenFileKV(path)
	case DriverSQLite:
		return OpenSQLiteKV(ctx, path)
	default:
		return nil, fmt.Errorf("unsupported store driver: %s", driver)
	}
}

// MemoryKV keeps entries in process memory.
type MemoryKV struct {
	mu      sync.Mutex
	entries map[string]string
}

var _ KV = (*MemoryKV)(nil)

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{entries: map[string]string{}}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *MemoryKV) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *MemoryKV) Close() error { return nil }
