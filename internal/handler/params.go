package handler

import (
	"net/url"

	"careerpath/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// decodeParam returns the unescaped path parameter. Topic names contain
// spaces and ampersands.
func decodeParam(c *fiber.Ctx, key string) (string, error) {
	value, err := url.PathUnescape(c.Params(key))
	if err != nil {
		return "", domain.ValidationErrors{domain.NewInvalidFormatError(key, c.Params(key))}
	}
	if value == "" {
		return "", domain.ValidationErrors{domain.NewMissingFieldError(key)}
	}
	return value, nil
}
