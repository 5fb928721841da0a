package handler

import (
	"careerpath/internal/dto"
	"careerpath/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ProgressHandler serves dashboard statistics
type ProgressHandler struct {
	service service.ProgressService
}

func NewProgressHandler(service service.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: service}
}

// GetProgress godoc
// @Summary Get progress statistics
// @Description Roadmap completion, quiz count, last activity and the five most recent quizzes
// @Tags progress
// @Produce json
// @Success 200 {object} dto.ProgressResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /progress [get]
func (h *ProgressHandler) GetProgress(c *fiber.Ctx) error {
	stats, err := h.service.GetProgressStats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.ToProgressResponse(stats))
}
