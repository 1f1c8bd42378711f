package controllers

import (
	"errors"

	service "collab-server/services"

	"github.com/gofiber/fiber/v2"
)

// respondError maps service error kinds onto HTTP statuses. Anything not
// typed by the service layer is an opaque transaction failure the client may
// retry.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	case errors.Is(err, service.ErrPermissionDenied):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Permission denied"})
	case errors.Is(err, service.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Conflict"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Operation failed"})
}

// callerID reads the user id the JWT middleware resolved for this request.
func callerID(c *fiber.Ctx) string {
	if id, ok := c.Locals("userID").(string); ok {
		return id
	}
	return ""
}
