package handler

import (
	"careerpath/internal/dto"
	"careerpath/internal/service"

	"github.com/gofiber/fiber/v2"
)

// InterviewHandler serves mock interview practice
type InterviewHandler struct {
	service service.InterviewService
}

func NewInterviewHandler(service service.InterviewService) *InterviewHandler {
	return &InterviewHandler{service: service}
}

// GetQuestions godoc
// @Summary Get mock interview questions
// @Tags interview
// @Produce json
// @Success 200 {object} dto.InterviewQuestionsResponse
// @Router /interview/questions [get]
func (h *InterviewHandler) GetQuestions(c *fiber.Ctx) error {
	questions := h.service.Questions()
	return c.JSON(dto.InterviewQuestionsResponse{
		Questions: questions,
		Count:     len(questions),
	})
}

// Complete godoc
// @Summary Finish a mock interview
// @Description Records the interview as the latest activity
// @Tags interview
// @Success 204
// @Failure 503 {object} middleware.ErrorResponse
// @Router /interview/complete [post]
func (h *InterviewHandler) Complete(c *fiber.Ctx) error {
	if err := h.service.Complete(c.UserContext()); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
