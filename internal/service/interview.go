package service

import (
	"context"

	"careerpath/internal/logger"
)

var mockInterviewQuestions = []string{
	"Tell me about yourself and your background.",
	"What are your greatest strengths and how do they apply to this role?",
	"Describe a challenging project you worked on and how you overcame obstacles.",
	"Where do you see yourself in 5 years?",
	"Why are you interested in this position and our company?",
	"How do you handle stress and pressure in the workplace?",
	"Describe a time when you had to work with a difficult team member.",
	"What is your approach to learning new technologies or skills?",
}

// InterviewService serves the mock interview question set.
type InterviewService interface {
	Questions() []string
	// Complete marks a finished interview as the latest activity.
	Complete(ctx context.Context) error
}

type interviewServiceImpl struct {
	activity ActivityService
}

func NewInterviewService(activity ActivityService) InterviewService {
	return &interviewServiceImpl{activity: activity}
}

func (s *interviewServiceImpl) Questions() []string {
	questions := make([]string, len(mockInterviewQuestions))
	copy(questions, mockInterviewQuestions)
	return questions
}

func (s *interviewServiceImpl) Complete(ctx context.Context) error {
	if _, err := s.activity.Touch(ctx); err != nil {
		return err
	}
	logger.Get().Info("Mock interview completed")
	return nil
}
