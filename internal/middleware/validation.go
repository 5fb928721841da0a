package middleware

import (
	"careerpath/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the validation middleware.
const (
	LocalValidatedTopic = "validated_topic"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateTopicQuery validates the topic query parameter
func (vm *ValidationMiddleware) ValidateTopicQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		topic := c.Query("topic")

		if errors := vm.validator.ValidateTopic(topic); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}

		c.Locals(LocalValidatedTopic, topic)
		return c.Next()
	}
}
