package handlers

import (
	"errors"

	"presupuesto/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	profileService *service.ProfileService
	logger         *zap.Logger
}

func NewProfileHandler(profileService *service.ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// GetProfile godoc
// @Summary Get the profile
// @Description Get the account aggregate: user, budget state, categories and fixed items
// @Tags profile
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/profile [get]
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.profileService.Get(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to load profile", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load profile",
		})
	}

	return c.JSON(resp)
}

// DeleteProfile godoc
// @Summary Delete the account
// @Description Remove the account and all owned data
// @Tags profile
// @Produce json
// @Security Bearer
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/profile [delete]
func (h *ProfileHandler) DeleteProfile(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	if err := h.profileService.Delete(c.Context(), userID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		h.logger.Error("Failed to delete account", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete account",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
