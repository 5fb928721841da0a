package adapter_test

import (
	"context"
	"os"
	"testing"
	"time"

	"careerpath/internal/adapter"
	"careerpath/internal/cache"
	"careerpath/internal/config"
	"careerpath/internal/domain"
	"careerpath/internal/service"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real server when REDIS_TEST_ADDRESS is set, e.g. localhost:6379.
func newIntegrationRedis(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("REDIS_TEST_ADDRESS")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDRESS not set")
	}

	client, err := cache.NewRedisClient(config.RedisConfig{Address: addr, DB: 15})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.FlushDB(context.Background()).Err()
		_ = client.Close()
	})
	require.NoError(t, client.FlushDB(context.Background()).Err())
	return client
}

func TestRedisStore_Integration(t *testing.T) {
	client := newIntegrationRedis(t)
	ctx := context.Background()
	store := adapter.NewNamespacedStore(adapter.NewRedisStoreAdapter(client), "careerpath-it")

	_, err := store.Get(ctx, domain.KeyRoadmap)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	now := time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)
	clock := service.WithClock(func() time.Time { return now })
	activity := service.NewActivityService(store, clock)
	quizzes := service.NewQuizService(store, activity, clock)

	_, err = quizzes.SubmitQuiz(ctx, "JavaScript", []int{2, 0, 2, 2, 1})
	require.NoError(t, err)

	history, err := quizzes.GetQuizHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 100, history[0].Score)

	raw, err := client.Get(ctx, "careerpath-it:lastActivity").Result()
	require.NoError(t, err)
	assert.Equal(t, "2026-10-18T12:00:00Z", raw)
	assert.NoError(t, store.Ping(ctx))
}
