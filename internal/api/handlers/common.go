package handlers

import (
	"errors"

	"presupuesto/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, ok := c.Locals("userID").(string)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}

// isValidationError tells client-side mistakes apart from server faults.
func isValidationError(err error) bool {
	return errors.Is(err, service.ErrEmptyDescription) ||
		errors.Is(err, service.ErrInvalidAmount) ||
		errors.Is(err, service.ErrInvalidBudget) ||
		errors.Is(err, service.ErrInvalidCategory) ||
		errors.Is(err, service.ErrInvalidDate) ||
		errors.Is(err, service.ErrInvalidMonth)
}
