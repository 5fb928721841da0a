package service

import (
	"context"
	"time"

	"careerpath/internal/domain"

	"golang.org/x/sync/errgroup"
)

const defaultRecentLimit = 5

// ProgressService derives dashboard statistics from the roadmap, the quiz
// history and the last activity timestamp.
type ProgressService interface {
	GetProgressStats(ctx context.Context) (*domain.ProgressStats, error)
}

type progressServiceImpl struct {
	quizzes     QuizService
	roadmaps    RoadmapService
	activity    ActivityService
	formatter   RelativeTimeFormatter
	recentLimit int
	now         func() time.Time
}

func NewProgressService(
	quizzes QuizService,
	roadmaps RoadmapService,
	activity ActivityService,
	formatter RelativeTimeFormatter,
	recentLimit int,
	opts ...Option,
) ProgressService {
	if recentLimit <= 0 {
		recentLimit = defaultRecentLimit
	}
	o := applyOptions(opts)
	return &progressServiceImpl{
		quizzes:     quizzes,
		roadmaps:    roadmaps,
		activity:    activity,
		formatter:   formatter,
		recentLimit: recentLimit,
		now:         o.now,
	}
}

func (s *progressServiceImpl) GetProgressStats(ctx context.Context) (*domain.ProgressStats, error) {
	var (
		roadmap      *domain.Roadmap
		history      []domain.QuizResult
		lastActivity *time.Time
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		roadmap, err = s.roadmaps.LoadRoadmapProgress(gctx)
		return err
	})
	g.Go(func() (err error) {
		history, err = s.quizzes.GetQuizHistory(gctx)
		return err
	})
	g.Go(func() (err error) {
		lastActivity, err = s.activity.LastActivity(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := s.now()
	return &domain.ProgressStats{
		RoadmapCompletion: roadmap.Completion(),
		QuizzesTaken:      len(history),
		LastActivity:      s.formatter.FormatOptional(lastActivity, now),
		RecentQuizzes:     s.recentQuizzes(history, now),
	}, nil
}

// recentQuizzes takes the last recentLimit results, most recent first.
func (s *progressServiceImpl) recentQuizzes(history []domain.QuizResult, now time.Time) []domain.RecentQuiz {
	start := len(history) - s.recentLimit
	if start < 0 {
		start = 0
	}
	tail := history[start:]

	recent := make([]domain.RecentQuiz, 0, len(tail))
	for i := len(tail) - 1; i >= 0; i-- {
		recent = append(recent, domain.RecentQuiz{
			Topic: tail[i].Topic,
			Score: tail[i].Score,
			Date:  s.formatter.Format(tail[i].Date, now),
		})
	}
	return recent
}
