package dto

import (
	"time"

	"careerpath/internal/domain"
)

// RecentQuizResponse is a recent result with a human readable date.
type RecentQuizResponse struct {
	Topic string `json:"topic"`
	Score int    `json:"score"`
	Date  string `json:"date"`
}

// ProgressResponse represents the dashboard statistics
// @Description Progress statistics derived from the roadmap and quiz history
type ProgressResponse struct {
	RoadmapCompletion int                  `json:"roadmap_completion"`
	QuizzesTaken      int                  `json:"quizzes_taken"`
	LastActivity      string               `json:"last_activity"`
	RecentQuizzes     []RecentQuizResponse `json:"recent_quizzes"`
}

// InterviewQuestionsResponse lists the mock interview questions.
type InterviewQuestionsResponse struct {
	Questions []string `json:"questions"`
	Count     int      `json:"count"`
}

// ActivityResponse reports the recorded activity time.
type ActivityResponse struct {
	LastActivity time.Time `json:"last_activity"`
}

// HealthResponse is returned by the health check.
type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

func ToProgressResponse(s *domain.ProgressStats) ProgressResponse {
	recent := make([]RecentQuizResponse, 0, len(s.RecentQuizzes))
	for _, q := range s.RecentQuizzes {
		recent = append(recent, RecentQuizResponse{Topic: q.Topic, Score: q.Score, Date: q.Date})
	}
	return ProgressResponse{
		RoadmapCompletion: s.RoadmapCompletion,
		QuizzesTaken:      s.QuizzesTaken,
		LastActivity:      s.LastActivity,
		RecentQuizzes:     recent,
	}
}
