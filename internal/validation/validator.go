package validation

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"careerpath/internal/domain"
	"careerpath/internal/dto"
)

const (
	maxNameLength = 100
	maxAnswers    = 50
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateTopic validates a quiz topic. Any non-blank name is accepted since
// unknown topics fall back to the generic quiz.
func (v *Validator) ValidateTopic(topic string) domain.ValidationErrors {
	return validateName("topic", topic)
}

// ValidateJobRole validates a roadmap job role.
func (v *Validator) ValidateJobRole(jobRole string) domain.ValidationErrors {
	return validateName("job_role", jobRole)
}

// ValidateSubmitQuizRequest validates a quiz submission
func (v *Validator) ValidateSubmitQuizRequest(req *dto.SubmitQuizRequest) domain.ValidationErrors {
	errors := v.ValidateTopic(req.Topic)

	if req.Answers == nil {
		errors = append(errors, domain.NewMissingFieldError("answers"))
	} else if len(req.Answers) > maxAnswers {
		errors = append(errors, domain.NewOutOfRangeError("answers", len(req.Answers), 0, maxAnswers))
	}

	return errors
}

// ValidateSaveQuizResultRequest validates an externally graded result. The
// score range is not enforced.
func (v *Validator) ValidateSaveQuizResultRequest(req *dto.SaveQuizResultRequest) domain.ValidationErrors {
	errors := v.ValidateTopic(req.Topic)

	if req.Score == nil {
		errors = append(errors, domain.NewMissingFieldError("score"))
	}

	return errors
}

// ValidateTopicStatus validates a status value
func (v *Validator) ValidateTopicStatus(field, status string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(status) == "" {
		errors = append(errors, domain.NewMissingFieldError(field))
	} else if _, err := domain.ParseTopicStatus(status); err != nil {
		errors = append(errors, domain.NewInvalidFormatError(field, status))
	}

	return errors
}

// ValidateSaveRoadmapRequest validates a full roadmap replacement
func (v *Validator) ValidateSaveRoadmapRequest(req *dto.SaveRoadmapRequest) domain.ValidationErrors {
	errors := v.ValidateJobRole(req.JobRole)

	if req.Topics == nil {
		errors = append(errors, domain.NewMissingFieldError("topics"))
		return errors
	}

	seen := make(map[string]bool, len(req.Topics))
	for i, topic := range req.Topics {
		field := "topics[" + strconv.Itoa(i) + "]"
		if strings.TrimSpace(topic.Name) == "" {
			errors = append(errors, domain.NewMissingFieldError(field+".name"))
		} else if seen[topic.Name] {
			errors = append(errors, domain.NewInvalidFormatError(field+".name", topic.Name))
		}
		seen[topic.Name] = true
		errors = append(errors, v.ValidateTopicStatus(field+".status", topic.Status)...)
	}

	return errors
}

// Helper functions for validation

func validateName(field, value string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(value) == "" {
		errors = append(errors, domain.NewMissingFieldError(field))
		return errors
	}

	if n := utf8.RuneCountInString(value); n > maxNameLength {
		errors = append(errors, domain.NewOutOfRangeError(field, n, 1, maxNameLength))
	}

	return errors
}
