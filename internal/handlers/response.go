package handlers

import (
	"github.com/gofiber/fiber/v3"
)

// jsonError returns the uniform {error: message} shape used by every API
// endpoint.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}
