package adapter

import (
	"context"
	"sync"

	"careerpath/internal/domain"
)

// MemoryStoreAdapter keeps values in process memory. It backs the default
// "memory" store backend and the service tests.
type MemoryStoreAdapter struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStoreAdapter creates an empty in-memory store.
func NewMemoryStoreAdapter() *MemoryStoreAdapter {
	return &MemoryStoreAdapter{values: make(map[string]string)}
}

func (m *MemoryStoreAdapter) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.values[key]
	if !ok {
		return "", domain.ErrKeyNotFound
	}
	return val, nil
}

func (m *MemoryStoreAdapter) Set(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStoreAdapter) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *MemoryStoreAdapter) Ping(ctx context.Context) error {
	return ctx.Err()
}
