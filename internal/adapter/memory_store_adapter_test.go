package adapter

import (
	"context"
	"testing"

	"careerpath/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreAdapter(t *testing.T) {
	store := NewMemoryStoreAdapter()
	ctx := context.Background()

	_, err := store.Get(ctx, domain.KeyRoadmap)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, domain.KeyRoadmap, `{"jobRole":"a"}`))
	require.NoError(t, store.Set(ctx, domain.KeyRoadmap, `{"jobRole":"b"}`))

	val, err := store.Get(ctx, domain.KeyRoadmap)
	require.NoError(t, err)
	assert.Equal(t, `{"jobRole":"b"}`, val, "last write wins")

	require.NoError(t, store.Delete(ctx, domain.KeyRoadmap))
	require.NoError(t, store.Delete(ctx, domain.KeyRoadmap), "deleting a missing key is not an error")
	_, err = store.Get(ctx, domain.KeyRoadmap)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	assert.NoError(t, store.Ping(ctx))
}

func TestMemoryStoreAdapter_CanceledContext(t *testing.T) {
	store := NewMemoryStoreAdapter()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Set(ctx, "k", "v"), context.Canceled)
	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Ping(ctx), context.Canceled)
}
