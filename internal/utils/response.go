package utils

import (
	apperrors "grabbber/internal/errors"

	"github.com/gofiber/fiber/v2"
)

// Respond sends a JSON response with the specified status code.
func Respond(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}

// Success sends a successful JSON response.
func Success(c *fiber.Ctx, data interface{}) error {
	return Respond(c, fiber.StatusOK, data)
}

// Created sends a JSON response with status 201.
func Created(c *fiber.Ctx, data interface{}) error {
	return Respond(c, fiber.StatusCreated, data)
}

// BadRequest sends a JSON error response with status 400.
func BadRequest(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusBadRequest, fiber.Map{"error": message})
}

// InternalError sends a JSON error response with status 500.
func InternalError(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusInternalServerError, fiber.Map{"error": message})
}

// Error maps err onto its DomainError response, or a 500 when unmapped.
// extra is merged into the body.
func Error(c *fiber.Ctx, err error, extra fiber.Map) error {
	de, ok := apperrors.From(err)
	if !ok {
		return InternalError(c, "Internal server error")
	}

	body := fiber.Map{
		"error": de.Message,
		"code":  de.Code,
	}
	for k, v := range extra {
		body[k] = v
	}
	return Respond(c, de.Status, body)
}
