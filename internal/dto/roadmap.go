package dto

import (
	"time"

	"careerpath/internal/domain"
)

// GenerateRoadmapRequest asks for a fresh roadmap for a job role.
// @Description Request body for generating a roadmap
type GenerateRoadmapRequest struct {
	JobRole string `json:"job_role"`
}

// TopicDTO is a roadmap topic. Status is one of "not started", "in progress", "completed".
type TopicDTO struct {
	Name      string   `json:"name"`
	Status    string   `json:"status"`
	Subtopics []string `json:"subtopics"`
}

// RoadmapResponse represents the saved roadmap
// @Description Learning roadmap with per-topic status
type RoadmapResponse struct {
	JobRole    string     `json:"job_role"`
	Topics     []TopicDTO `json:"topics"`
	CreatedAt  time.Time  `json:"created_at"`
	Completion int        `json:"completion"`
}

// SaveRoadmapRequest replaces the saved roadmap.
// @Description Request body for saving roadmap progress
type SaveRoadmapRequest struct {
	JobRole   string     `json:"job_role"`
	Topics    []TopicDTO `json:"topics"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// UpdateTopicStatusRequest changes the status of one topic.
type UpdateTopicStatusRequest struct {
	Status string `json:"status"`
}

func ToRoadmapResponse(r *domain.Roadmap) RoadmapResponse {
	topics := make([]TopicDTO, 0, len(r.Topics))
	for _, t := range r.Topics {
		topics = append(topics, TopicDTO{
			Name:      t.Name,
			Status:    string(t.Status),
			Subtopics: t.Subtopics,
		})
	}
	return RoadmapResponse{
		JobRole:    r.JobRole,
		Topics:     topics,
		CreatedAt:  r.CreatedAt,
		Completion: r.Completion(),
	}
}

// ToDomain converts the request. Statuses must already be validated; a missing
// CreatedAt is filled with now.
func (r SaveRoadmapRequest) ToDomain(now time.Time) *domain.Roadmap {
	topics := make([]domain.Topic, 0, len(r.Topics))
	for _, t := range r.Topics {
		subtopics := t.Subtopics
		if subtopics == nil {
			subtopics = []string{}
		}
		topics = append(topics, domain.Topic{
			Name:      t.Name,
			Status:    domain.TopicStatus(t.Status),
			Subtopics: subtopics,
		})
	}
	createdAt := now
	if r.CreatedAt != nil {
		createdAt = *r.CreatedAt
	}
	return &domain.Roadmap{
		JobRole:   r.JobRole,
		Topics:    topics,
		CreatedAt: createdAt.UTC(),
	}
}
