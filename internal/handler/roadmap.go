package handler

import (
	"time"

	"careerpath/internal/domain"
	"careerpath/internal/dto"
	"careerpath/internal/logger"
	"careerpath/internal/service"
	"careerpath/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RoadmapHandler handles roadmap-related HTTP requests
type RoadmapHandler struct {
	service   service.RoadmapService
	validator *validation.Validator
}

// NewRoadmapHandler creates a new RoadmapHandler instance
func NewRoadmapHandler(service service.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// GenerateRoadmap godoc
// @Summary Generate a roadmap
// @Description Builds the roadmap for a job role and saves it, replacing any saved roadmap
// @Tags roadmap
// @Accept json
// @Produce json
// @Param request body dto.GenerateRoadmapRequest true "Job role"
// @Success 201 {object} dto.RoadmapResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /roadmap [post]
func (h *RoadmapHandler) GenerateRoadmap(c *fiber.Ctx) error {
	var req dto.GenerateRoadmapRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body is not valid JSON")
	}
	if errs := h.validator.ValidateJobRole(req.JobRole); len(errs) > 0 {
		return errs
	}

	roadmap := h.service.GenerateRoadmap(req.JobRole)
	if err := h.service.SaveRoadmapProgress(c.UserContext(), roadmap); err != nil {
		logger.Get().Error("Failed to save generated roadmap", zap.Error(err), zap.String("job_role", req.JobRole))
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToRoadmapResponse(roadmap))
}

// GetRoadmap godoc
// @Summary Get the saved roadmap
// @Tags roadmap
// @Produce json
// @Success 200 {object} dto.RoadmapResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /roadmap [get]
func (h *RoadmapHandler) GetRoadmap(c *fiber.Ctx) error {
	roadmap, err := h.service.LoadRoadmapProgress(c.UserContext())
	if err != nil {
		return err
	}
	if roadmap == nil {
		return domain.NewNotFoundError("no roadmap has been saved")
	}
	return c.JSON(dto.ToRoadmapResponse(roadmap))
}

// SaveRoadmap godoc
// @Summary Save roadmap progress
// @Description Replaces the saved roadmap with the one in the body
// @Tags roadmap
// @Accept json
// @Produce json
// @Param request body dto.SaveRoadmapRequest true "Roadmap"
// @Success 200 {object} dto.RoadmapResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /roadmap [put]
func (h *RoadmapHandler) SaveRoadmap(c *fiber.Ctx) error {
	var req dto.SaveRoadmapRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body is not valid JSON")
	}
	if errs := h.validator.ValidateSaveRoadmapRequest(&req); len(errs) > 0 {
		return errs
	}

	roadmap := req.ToDomain(time.Now())
	if err := h.service.SaveRoadmapProgress(c.UserContext(), roadmap); err != nil {
		return err
	}
	return c.JSON(dto.ToRoadmapResponse(roadmap))
}

// UpdateTopicStatus godoc
// @Summary Update a topic status
// @Tags roadmap
// @Accept json
// @Produce json
// @Param name path string true "Topic name"
// @Param request body dto.UpdateTopicStatusRequest true "New status"
// @Success 200 {object} dto.RoadmapResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /roadmap/topics/{name} [patch]
func (h *RoadmapHandler) UpdateTopicStatus(c *fiber.Ctx) error {
	name, err := decodeParam(c, "name")
	if err != nil {
		return err
	}

	var req dto.UpdateTopicStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body is not valid JSON")
	}
	if errs := h.validator.ValidateTopicStatus("status", req.Status); len(errs) > 0 {
		return errs
	}

	roadmap, err := h.service.UpdateTopicStatus(c.UserContext(), name, domain.TopicStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(dto.ToRoadmapResponse(roadmap))
}
