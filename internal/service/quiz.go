package service

import (
	"context"
	"sync"
	"time"

	"careerpath/internal/domain"
	"careerpath/internal/logger"

	"go.uber.org/zap"
)

// QuizService generates template quizzes and keeps the append-only history
// of results.
type QuizService interface {
	// GenerateQuiz returns the fixed question set for topic.
	GenerateQuiz(topic string) *domain.Quiz

	// SaveQuizResult appends result to the history. Results are neither
	// deduplicated nor range-checked.
	SaveQuizResult(ctx context.Context, result domain.QuizResult) error

	// GetQuizHistory returns every saved result in insertion order.
	GetQuizHistory(ctx context.Context) ([]domain.QuizResult, error)

	// SubmitQuiz grades answers against the quiz for topic, saves the result
	// and records activity.
	SubmitQuiz(ctx context.Context, topic string, answers []int) (*domain.QuizSubmission, error)
}

type quizServiceImpl struct {
	store    domain.KeyValueStore
	activity ActivityService
	now      func() time.Time

	// serializes the read-modify-write of the history within this process
	mu sync.Mutex
}

// NewQuizService creates a new quiz service backed by store.
func NewQuizService(store domain.KeyValueStore, activity ActivityService, opts ...Option) QuizService {
	o := applyOptions(opts)
	return &quizServiceImpl{
		store:    store,
		activity: activity,
		now:      o.now,
	}
}

func (s *quizServiceImpl) GenerateQuiz(topic string) *domain.Quiz {
	return &domain.Quiz{
		Topic:     topic,
		Questions: lookupQuizTemplate(topic)(topic),
	}
}

func (s *quizServiceImpl) SaveQuizResult(ctx context.Context, result domain.QuizResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.GetQuizHistory(ctx)
	if err != nil {
		return err
	}
	history = append(history, result)

	if err := saveJSON(ctx, s.store, domain.KeyQuizHistory, history); err != nil {
		return err
	}
	logger.Get().Debug("Saved quiz result",
		zap.String("topic", result.Topic),
		zap.Int("score", result.Score),
		zap.Int("history_size", len(history)))
	return nil
}

func (s *quizServiceImpl) GetQuizHistory(ctx context.Context) ([]domain.QuizResult, error) {
	history := []domain.QuizResult{}
	if _, err := loadJSON(ctx, s.store, domain.KeyQuizHistory, &history); err != nil {
		return nil, err
	}
	if history == nil {
		history = []domain.QuizResult{}
	}
	return history, nil
}

func (s *quizServiceImpl) SubmitQuiz(ctx context.Context, topic string, answers []int) (*domain.QuizSubmission, error) {
	if topic == "" {
		return nil, domain.NewInvalidInputError("topic is required")
	}

	quiz := s.GenerateQuiz(topic)
	correct, score := quiz.Grade(answers)
	result := domain.QuizResult{
		Topic: topic,
		Score: score,
		Date:  s.now().UTC(),
	}

	if err := s.SaveQuizResult(ctx, result); err != nil {
		return nil, err
	}

	// The result is already persisted; a failed activity write must not make
	// the caller retry and append a duplicate.
	if s.activity != nil {
		if _, err := s.activity.Touch(ctx); err != nil {
			logger.Get().Warn("Quiz saved but last activity was not updated", zap.Error(err), zap.String("topic", topic))
		}
	}

	logger.Get().Info("Quiz submitted",
		zap.String("topic", topic),
		zap.Int("correct", correct),
		zap.Int("total", len(quiz.Questions)),
		zap.Int("score", score))

	return &domain.QuizSubmission{
		Result:  result,
		Correct: correct,
		Total:   len(quiz.Questions),
	}, nil
}
