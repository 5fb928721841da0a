package handler

import (
	"careerpath/internal/domain"
	"careerpath/internal/dto"
	"careerpath/internal/logger"
	"careerpath/internal/middleware"
	"careerpath/internal/service"
	"careerpath/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// GetQuiz godoc
// @Summary Generate a quiz
// @Description Returns the five-question quiz for a topic. Unknown topics get a generic quiz.
// @Tags quiz
// @Produce json
// @Param topic query string true "Topic, e.g. JavaScript or React"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /quiz [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	topic, ok := c.Locals(middleware.LocalValidatedTopic).(string)
	if !ok {
		topic = c.Query("topic")
		if errs := h.validator.ValidateTopic(topic); len(errs) > 0 {
			return errs
		}
	}

	quiz := h.service.GenerateQuiz(topic)
	return c.JSON(dto.ToQuizResponse(quiz))
}

// SubmitQuiz godoc
// @Summary Submit quiz answers
// @Description Grades the answers, appends the result to the history and records activity
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.SubmitQuizRequest true "Selected option index per question"
// @Success 201 {object} dto.SubmitQuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /quiz/submit [post]
func (h *QuizHandler) SubmitQuiz(c *fiber.Ctx) error {
	var req dto.SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body is not valid JSON")
	}
	if errs := h.validator.ValidateSubmitQuizRequest(&req); len(errs) > 0 {
		return errs
	}

	submission, err := h.service.SubmitQuiz(c.UserContext(), req.Topic, req.Answers)
	if err != nil {
		logger.Get().Error("Failed to submit quiz", zap.Error(err), zap.String("topic", req.Topic))
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToSubmitQuizResponse(submission))
}

// SaveQuizResult godoc
// @Summary Save a quiz result
// @Description Appends an externally graded result to the history. The score is stored as given.
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.SaveQuizResultRequest true "Result"
// @Success 201 {object} dto.QuizResultResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /quiz/results [post]
func (h *QuizHandler) SaveQuizResult(c *fiber.Ctx) error {
	var req dto.SaveQuizResultRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body is not valid JSON")
	}
	if errs := h.validator.ValidateSaveQuizResultRequest(&req); len(errs) > 0 {
		return errs
	}

	result := domain.NewQuizResult(req.Topic, *req.Score)
	if req.Date != nil {
		result.Date = req.Date.UTC()
	}

	if err := h.service.SaveQuizResult(c.UserContext(), result); err != nil {
		logger.Get().Error("Failed to save quiz result", zap.Error(err), zap.String("topic", req.Topic))
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToQuizResultResponse(result))
}

// GetQuizHistory godoc
// @Summary Get quiz history
// @Description Returns every saved result in the order it was saved
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.QuizHistoryResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /quiz/history [get]
func (h *QuizHandler) GetQuizHistory(c *fiber.Ctx) error {
	history, err := h.service.GetQuizHistory(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.ToQuizHistoryResponse(history))
}

