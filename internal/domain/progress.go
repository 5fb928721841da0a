package domain

// RecentQuiz is a quiz result whose date has been rendered for display.
type RecentQuiz struct {
	Topic string `json:"topic"`
	Score int    `json:"score"`
	Date  string `json:"date"`
}

// ProgressStats is derived on every read and never stored.
type ProgressStats struct {
	RoadmapCompletion int          `json:"roadmapCompletion"`
	QuizzesTaken      int          `json:"quizzesTaken"`
	LastActivity      string       `json:"lastActivity"`
	RecentQuizzes     []RecentQuiz `json:"recentQuizzes"`
}
