package handler

import (
	"careerpath/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups every API handler for route registration.
type Handlers struct {
	Quiz      *QuizHandler
	Roadmap   *RoadmapHandler
	Progress  *ProgressHandler
	Interview *InterviewHandler
	Activity  *ActivityHandler
}

// RegisterRoutes mounts the API under api.
func RegisterRoutes(api fiber.Router, h Handlers) {
	validationMiddleware := middleware.NewValidationMiddleware()

	// Quiz routes
	api.Get("/quiz", validationMiddleware.ValidateTopicQuery(), h.Quiz.GetQuiz)
	api.Post("/quiz/submit", h.Quiz.SubmitQuiz)
	api.Post("/quiz/results", h.Quiz.SaveQuizResult)
	api.Get("/quiz/history", h.Quiz.GetQuizHistory)

	// Roadmap routes
	api.Post("/roadmap", h.Roadmap.GenerateRoadmap)
	api.Get("/roadmap", h.Roadmap.GetRoadmap)
	api.Put("/roadmap", h.Roadmap.SaveRoadmap)
	api.Patch("/roadmap/topics/:name", h.Roadmap.UpdateTopicStatus)

	api.Get("/progress", h.Progress.GetProgress)

	api.Get("/interview/questions", h.Interview.GetQuestions)
	api.Post("/interview/complete", h.Interview.Complete)

	api.Post("/activity", h.Activity.Touch)
}
