package handler

import (
	"context"
	"time"

	"careerpath/internal/domain"
	"careerpath/internal/dto"
	"careerpath/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandler reports whether the key-value store answers.
type HealthHandler struct {
	store   domain.KeyValueStore
	backend string
}

func NewHealthHandler(store domain.KeyValueStore, backend string) *HealthHandler {
	return &HealthHandler{store: store, backend: backend}
}

// Check godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		logger.Get().Warn("Health check failed", zap.String("backend", h.backend), zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{
			Status: "unavailable",
			Store:  h.backend,
		})
	}
	return c.JSON(dto.HealthResponse{Status: "ok", Store: h.backend})
}
