package service

import (
	"context"
	"sync"
	"time"

	"careerpath/internal/domain"
	"careerpath/internal/logger"

	"go.uber.org/zap"
)

// RoadmapService generates template roadmaps and persists the single active one.
type RoadmapService interface {
	GenerateRoadmap(jobRole string) *domain.Roadmap
	// SaveRoadmapProgress replaces whatever roadmap was saved before,
	// whatever its job role.
	SaveRoadmapProgress(ctx context.Context, roadmap *domain.Roadmap) error
	// LoadRoadmapProgress returns nil when no roadmap has been saved.
	LoadRoadmapProgress(ctx context.Context) (*domain.Roadmap, error)
	UpdateTopicStatus(ctx context.Context, topicName string, status domain.TopicStatus) (*domain.Roadmap, error)
}

type roadmapServiceImpl struct {
	store domain.KeyValueStore
	now   func() time.Time
	mu    sync.Mutex
}

func NewRoadmapService(store domain.KeyValueStore, opts ...Option) RoadmapService {
	o := applyOptions(opts)
	return &roadmapServiceImpl{store: store, now: o.now}
}

func (s *roadmapServiceImpl) GenerateRoadmap(jobRole string) *domain.Roadmap {
	return &domain.Roadmap{
		JobRole:   jobRole,
		Topics:    lookupRoadmapTemplate(jobRole)(),
		CreatedAt: s.now().UTC(),
	}
}

func (s *roadmapServiceImpl) SaveRoadmapProgress(ctx context.Context, roadmap *domain.Roadmap) error {
	if roadmap == nil {
		return domain.NewInvalidInputError("cannot save nil roadmap")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, roadmap)
}

func (s *roadmapServiceImpl) save(ctx context.Context, roadmap *domain.Roadmap) error {
	if err := saveJSON(ctx, s.store, domain.KeyRoadmap, roadmap); err != nil {
		return err
	}
	logger.Get().Debug("Saved roadmap",
		zap.String("job_role", roadmap.JobRole),
		zap.Int("topics", len(roadmap.Topics)),
		zap.Int("completion", roadmap.Completion()))
	return nil
}

func (s *roadmapServiceImpl) LoadRoadmapProgress(ctx context.Context) (*domain.Roadmap, error) {
	var roadmap domain.Roadmap
	found, err := loadJSON(ctx, s.store, domain.KeyRoadmap, &roadmap)
	if err != nil || !found {
		return nil, err
	}
	return &roadmap, nil
}

func (s *roadmapServiceImpl) UpdateTopicStatus(ctx context.Context, topicName string, status domain.TopicStatus) (*domain.Roadmap, error) {
	if _, err := domain.ParseTopicStatus(string(status)); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	roadmap, err := s.LoadRoadmapProgress(ctx)
	if err != nil {
		return nil, err
	}
	if roadmap == nil {
		return nil, domain.NewNotFoundError("no roadmap has been saved")
	}

	if err := roadmap.SetTopicStatus(topicName, status); err != nil {
		return nil, err
	}
	if err := s.save(ctx, roadmap); err != nil {
		return nil, err
	}

	logger.Get().Info("Topic status updated",
		zap.String("topic", topicName),
		zap.String("status", string(status)))
	return roadmap, nil
}
