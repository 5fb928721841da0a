package domain

import (
	"math"
	"time"
)

// Question is a single multiple-choice question.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"` // index into Options
}

// Validate checks that the correct answer points at one of the options.
func (q Question) Validate() error {
	if q.Question == "" {
		return NewInvalidInputError("question text is required")
	}
	if len(q.Options) == 0 {
		return NewInvalidInputError("at least one option is required")
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return NewInvalidInputError("correct answer index is out of range")
	}
	return nil
}

// Quiz is the fixed question set generated for a topic.
type Quiz struct {
	Topic     string     `json:"topic"`
	Questions []Question `json:"questions"`
}

// Grade counts answers matching the correct option and returns the score as
// a rounded percentage. Missing or out-of-range answers count as wrong.
func (q *Quiz) Grade(answers []int) (correct int, score int) {
	if len(q.Questions) == 0 {
		return 0, 0
	}
	for i, question := range q.Questions {
		if i < len(answers) && answers[i] == question.CorrectAnswer {
			correct++
		}
	}
	return correct, Percent(correct, len(q.Questions))
}

// QuizResult is one completed quiz attempt. Results are never edited after
// they are appended to the history.
type QuizResult struct {
	Topic string    `json:"topic"`
	Score int       `json:"score"`
	Date  time.Time `json:"date"`
}

// NewQuizResult creates a result stamped with the current time.
func NewQuizResult(topic string, score int) QuizResult {
	return QuizResult{
		Topic: topic,
		Score: score,
		Date:  time.Now().UTC(),
	}
}

// Percent returns round(100 * part / total), or 0 when total is 0.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// QuizSubmission is the graded outcome of answering a generated quiz.
type QuizSubmission struct {
	Result  QuizResult `json:"result"`
	Correct int        `json:"correct"`
	Total   int        `json:"total"`
}
