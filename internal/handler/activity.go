package handler

import (
	"careerpath/internal/dto"
	"careerpath/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ActivityHandler records user activity that has no dedicated endpoint, such
// as a resume upload in the web client.
type ActivityHandler struct {
	service service.ActivityService
}

func NewActivityHandler(service service.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// Touch godoc
// @Summary Record activity
// @Tags activity
// @Produce json
// @Success 200 {object} dto.ActivityResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /activity [post]
func (h *ActivityHandler) Touch(c *fiber.Ctx) error {
	at, err := h.service.Touch(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.ActivityResponse{LastActivity: at})
}
