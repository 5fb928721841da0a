package domain

import (
	"fmt"
	"time"
)

// TopicStatus is the learning state of a roadmap topic.
type TopicStatus string

const (
	StatusNotStarted TopicStatus = "not started"
	StatusInProgress TopicStatus = "in progress"
	StatusCompleted  TopicStatus = "completed"
)

// ParseTopicStatus accepts the persisted spelling of a status.
func ParseTopicStatus(s string) (TopicStatus, error) {
	switch TopicStatus(s) {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return TopicStatus(s), nil
	default:
		return "", NewInvalidInputError(fmt.Sprintf("unknown topic status: %q", s))
	}
}

// Topic is a named unit of a roadmap.
type Topic struct {
	Name      string      `json:"name"`
	Status    TopicStatus `json:"status"`
	Subtopics []string    `json:"subtopics"`
}

// Roadmap is the learning plan generated for one job role. Only one roadmap
// is persisted at a time.
type Roadmap struct {
	JobRole   string    `json:"jobRole"`
	Topics    []Topic   `json:"topics"`
	CreatedAt time.Time `json:"createdAt"`
}

// CompletedTopics counts topics whose status is completed.
func (r *Roadmap) CompletedTopics() int {
	n := 0
	for _, t := range r.Topics {
		if t.Status == StatusCompleted {
			n++
		}
	}
	return n
}

// Completion is the rounded percentage of completed topics. A nil roadmap or
// one without topics is 0% complete.
func (r *Roadmap) Completion() int {
	if r == nil {
		return 0
	}
	return Percent(r.CompletedTopics(), len(r.Topics))
}

// SetTopicStatus changes the status of the named topic in place.
func (r *Roadmap) SetTopicStatus(name string, status TopicStatus) error {
	for i := range r.Topics {
		if r.Topics[i].Name == name {
			r.Topics[i].Status = status
			return nil
		}
	}
	return NewNotFoundError(fmt.Sprintf("topic not found in roadmap: %s", name))
}
