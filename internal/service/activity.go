package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"careerpath/internal/domain"
	"careerpath/internal/logger"

	"go.uber.org/zap"
)

// ActivityService records when the user last did something meaningful
// (finished a quiz, a mock interview, a resume upload).
type ActivityService interface {
	Touch(ctx context.Context) (time.Time, error)
	LastActivity(ctx context.Context) (*time.Time, error)
}

type activityServiceImpl struct {
	store domain.KeyValueStore
	now   func() time.Time
}

func NewActivityService(store domain.KeyValueStore, opts ...Option) ActivityService {
	o := applyOptions(opts)
	return &activityServiceImpl{store: store, now: o.now}
}

// Touch stores the current time as a bare RFC 3339 string.
func (s *activityServiceImpl) Touch(ctx context.Context) (time.Time, error) {
	now := s.now().UTC()
	if err := s.store.Set(ctx, domain.KeyLastActivity, now.Format(time.RFC3339Nano)); err != nil {
		logger.Get().Error("Failed to update last activity", zap.Error(err))
		return time.Time{}, domain.NewStoreError("set", domain.KeyLastActivity, err)
	}
	return now, nil
}

// LastActivity returns nil when nothing was recorded or the stored value is
// not a timestamp.
func (s *activityServiceImpl) LastActivity(ctx context.Context) (*time.Time, error) {
	raw, err := s.store.Get(ctx, domain.KeyLastActivity)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return nil, nil
		}
		logger.Get().Error("Failed to read last activity", zap.Error(err))
		return nil, domain.NewStoreError("get", domain.KeyLastActivity, err)
	}

	raw = strings.Trim(strings.TrimSpace(raw), `"`)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		logger.Get().Warn("Ignoring unparseable last activity", zap.String("value", raw), zap.Error(err))
		return nil, nil
	}
	return &t, nil
}
