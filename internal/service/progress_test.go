package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"careerpath/internal/adapter"
	"careerpath/internal/domain"
	"careerpath/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type progressFixture struct {
	store    domain.KeyValueStore
	quizzes  service.QuizService
	roadmaps service.RoadmapService
	activity service.ActivityService
	progress service.ProgressService
}

func newProgressFixture(store domain.KeyValueStore, recentLimit int) *progressFixture {
	clock := service.WithClock(fixedClock)
	activity := service.NewActivityService(store, clock)
	quizzes := service.NewQuizService(store, activity, clock)
	roadmaps := service.NewRoadmapService(store, clock)
	formatter := service.NewRelativeTimeFormatter("1/2/2006", time.UTC)
	return &progressFixture{
		store:    store,
		quizzes:  quizzes,
		roadmaps: roadmaps,
		activity: activity,
		progress: service.NewProgressService(quizzes, roadmaps, activity, formatter, recentLimit, clock),
	}
}

func TestProgressService_Empty(t *testing.T) {
	f := newProgressFixture(adapter.NewMemoryStoreAdapter(), 5)

	stats, err := f.progress.GetProgressStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &domain.ProgressStats{
		RoadmapCompletion: 0,
		QuizzesTaken:      0,
		LastActivity:      service.NeverLabel,
		RecentQuizzes:     []domain.RecentQuiz{},
	}, stats)
}

func TestProgressService_RoadmapCompletion(t *testing.T) {
	ctx := context.Background()
	f := newProgressFixture(adapter.NewMemoryStoreAdapter(), 5)

	roadmap := f.roadmaps.GenerateRoadmap("Full Stack Developer")
	roadmap.Topics[0].Status = domain.StatusCompleted
	roadmap.Topics[2].Status = domain.StatusCompleted
	roadmap.Topics[3].Status = domain.StatusInProgress
	require.NoError(t, f.roadmaps.SaveRoadmapProgress(ctx, roadmap))

	stats, err := f.progress.GetProgressStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, stats.RoadmapCompletion)

	// 1 of 3 rounds to 33.
	require.NoError(t, f.roadmaps.SaveRoadmapProgress(ctx, f.roadmaps.GenerateRoadmap("Astronaut")))
	_, err = f.roadmaps.UpdateTopicStatus(ctx, "Core Skills", domain.StatusCompleted)
	require.NoError(t, err)

	stats, err = f.progress.GetProgressStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 33, stats.RoadmapCompletion)
}

func TestProgressService_EmptyTopicListIsZero(t *testing.T) {
	ctx := context.Background()
	f := newProgressFixture(adapter.NewMemoryStoreAdapter(), 5)
	require.NoError(t, f.roadmaps.SaveRoadmapProgress(ctx, &domain.Roadmap{JobRole: "Nothing"}))

	stats, err := f.progress.GetProgressStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.RoadmapCompletion)
}

func TestProgressService_RecentQuizzes(t *testing.T) {
	ctx := context.Background()

	for _, n := range []int{1, 5, 7} {
		t.Run(fmt.Sprintf("%d results", n), func(t *testing.T) {
			f := newProgressFixture(adapter.NewMemoryStoreAdapter(), 5)
			for i := 0; i < n; i++ {
				require.NoError(t, f.quizzes.SaveQuizResult(ctx, domain.QuizResult{
					Topic: fmt.Sprintf("topic-%d", i),
					Score: i * 10,
					Date:  fixedNow.Add(-time.Duration(n-i) * time.Hour),
				}))
			}

			stats, err := f.progress.GetProgressStats(ctx)
			require.NoError(t, err)
			assert.Equal(t, n, stats.QuizzesTaken)

			want := n
			if want > 5 {
				want = 5
			}
			require.Len(t, stats.RecentQuizzes, want)
			for i, recent := range stats.RecentQuizzes {
				// most recent first
				assert.Equal(t, fmt.Sprintf("topic-%d", n-1-i), recent.Topic)
				assert.Equal(t, (n-1-i)*10, recent.Score)
			}
			assert.Equal(t, "1 hour ago", stats.RecentQuizzes[0].Date)
		})
	}
}

func TestProgressService_RecentLimitFromConfig(t *testing.T) {
	ctx := context.Background()
	f := newProgressFixture(adapter.NewMemoryStoreAdapter(), 2)
	for i := 0; i < 4; i++ {
		require.NoError(t, f.quizzes.SaveQuizResult(ctx, domain.QuizResult{Topic: fmt.Sprint(i), Date: fixedNow}))
	}

	stats, err := f.progress.GetProgressStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats.RecentQuizzes, 2)
	assert.Equal(t, "3", stats.RecentQuizzes[0].Topic)
	assert.Equal(t, "2", stats.RecentQuizzes[1].Topic)
	assert.Equal(t, "Just now", stats.RecentQuizzes[0].Date)
}

func TestProgressService_LastActivity(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"ThreeDaysAgo", fixedNow.Add(-72 * time.Hour).Format(time.RFC3339), "3 days ago"},
		{"TenDaysAgo", fixedNow.Add(-10 * 24 * time.Hour).Format(time.RFC3339), "10/8/2026"},
		{"QuotedJSONString", `"` + fixedNow.Add(-90*time.Minute).Format(time.RFC3339) + `"`, "1 hour ago"},
		{"Unparseable", "yesterday-ish", service.NeverLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newProgressFixture(adapter.NewMemoryStoreAdapter(), 5)
			require.NoError(t, f.store.Set(ctx, domain.KeyLastActivity, tt.value))

			stats, err := f.progress.GetProgressStats(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stats.LastActivity)
		})
	}
}

func TestProgressService_StoreError(t *testing.T) {
	store := new(MockKeyValueStore)
	storeErr := errors.New("backend down")
	store.On("Get", mock.Anything, domain.KeyQuizHistory).Return("", storeErr)
	store.On("Get", mock.Anything, domain.KeyRoadmap).Return("", domain.ErrKeyNotFound)
	store.On("Get", mock.Anything, domain.KeyLastActivity).Return("", domain.ErrKeyNotFound)
	f := newProgressFixture(store, 5)

	_, err := f.progress.GetProgressStats(context.Background())
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeStoreError, domainErr.Code)
	assert.ErrorIs(t, err, storeErr)
}

func TestProgressService_CorruptHistory(t *testing.T) {
	ctx := context.Background()
	f := newProgressFixture(adapter.NewMemoryStoreAdapter(), 5)
	require.NoError(t, f.store.Set(ctx, domain.KeyQuizHistory, "[{]"))

	_, err := f.progress.GetProgressStats(ctx)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeCorruptData, domainErr.Code)
}
