package dto

import (
	"time"

	"careerpath/internal/domain"
)

// QuestionResponse is one multiple-choice question.
type QuestionResponse struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
}

// QuizResponse represents a generated quiz in the API response
// @Description Quiz generated from the topic templates
type QuizResponse struct {
	Topic     string             `json:"topic"`
	Questions []QuestionResponse `json:"questions"`
}

// SubmitQuizRequest carries the selected option index for each question, in order.
// @Description Request body for grading a quiz
type SubmitQuizRequest struct {
	Topic   string `json:"topic"`
	Answers []int  `json:"answers"`
}

// SubmitQuizResponse represents the graded submission
type SubmitQuizResponse struct {
	Topic   string    `json:"topic"`
	Score   int       `json:"score"`
	Correct int       `json:"correct"`
	Total   int       `json:"total"`
	Date    time.Time `json:"date"`
}

// SaveQuizResultRequest stores an externally graded result.
// @Description Request body for appending a quiz result
type SaveQuizResultRequest struct {
	Topic string     `json:"topic"`
	Score *int       `json:"score"`
	Date  *time.Time `json:"date,omitempty"` // defaults to now
}

// QuizResultResponse is one entry of the history.
type QuizResultResponse struct {
	Topic string    `json:"topic"`
	Score int       `json:"score"`
	Date  time.Time `json:"date"`
}

// QuizHistoryResponse lists results in the order they were saved.
type QuizHistoryResponse struct {
	Results []QuizResultResponse `json:"results"`
	Count   int                  `json:"count"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}

func ToQuizResponse(q *domain.Quiz) QuizResponse {
	questions := make([]QuestionResponse, 0, len(q.Questions))
	for _, question := range q.Questions {
		questions = append(questions, QuestionResponse{
			Question:      question.Question,
			Options:       question.Options,
			CorrectAnswer: question.CorrectAnswer,
		})
	}
	return QuizResponse{Topic: q.Topic, Questions: questions}
}

func ToSubmitQuizResponse(s *domain.QuizSubmission) SubmitQuizResponse {
	return SubmitQuizResponse{
		Topic:   s.Result.Topic,
		Score:   s.Result.Score,
		Correct: s.Correct,
		Total:   s.Total,
		Date:    s.Result.Date,
	}
}

func ToQuizResultResponse(r domain.QuizResult) QuizResultResponse {
	return QuizResultResponse{Topic: r.Topic, Score: r.Score, Date: r.Date}
}

func ToQuizHistoryResponse(history []domain.QuizResult) QuizHistoryResponse {
	results := make([]QuizResultResponse, 0, len(history))
	for _, r := range history {
		results = append(results, ToQuizResultResponse(r))
	}
	return QuizHistoryResponse{Results: results, Count: len(results)}
}
