package service_test

import (
	"context"
	"time"

	"careerpath/internal/adapter"
	"careerpath/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockKeyValueStore ---
type MockKeyValueStore struct {
	mock.Mock
}

func (m *MockKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockKeyValueStore) Set(ctx context.Context, key string, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockKeyValueStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockKeyValueStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// failingSetStore wraps a memory store and rejects writes to one key.
type failingSetStore struct {
	*adapter.MemoryStoreAdapter
	key string
	err error
}

func (f *failingSetStore) Set(ctx context.Context, key string, value string) error {
	if key == f.key {
		return f.err
	}
	return f.MemoryStoreAdapter.Set(ctx, key, value)
}

var _ domain.KeyValueStore = (*failingSetStore)(nil)

// fixedNow is the reference instant of the service tests.
var fixedNow = time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }
