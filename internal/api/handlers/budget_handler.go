package handlers

import (
	"errors"

	"presupuesto/internal/dto"
	"presupuesto/internal/models"
	"presupuesto/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BudgetHandler struct {
	budgetService *service.BudgetService
	logger        *zap.Logger
}

func NewBudgetHandler(budgetService *service.BudgetService, logger *zap.Logger) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
		logger:        logger,
	}
}

// UpdateBudget godoc
// @Summary Set the monthly budget
// @Description Store a new monthly budget, resetting the spent counter
// @Tags budget
// @Accept json
// @Produce json
// @Param request body dto.UpdateBudgetRequest true "New monthly budget"
// @Security Bearer
// @Success 200 {object} dto.RemainingBudgetResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/budget [put]
func (h *BudgetHandler) UpdateBudget(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.UpdateBudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	user, err := h.budgetService.SetMonthlyBudget(c.Context(), userID, req.MonthlyBudget)
	if err != nil {
		if isValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to update budget", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update budget",
		})
	}

	return c.JSON(dto.RemainingBudgetResponse{
		MonthlyBudget:     user.MonthlyBudget,
		CurrentMonthSpent: user.CurrentMonthSpent,
		RemainingBudget:   user.MonthlyBudget - user.CurrentMonthSpent,
		BudgetMonth:       user.BudgetMonth,
	})
}

// RemainingBudget godoc
// @Summary Get the remaining budget
// @Description Get the budget left in the present month
// @Tags budget
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.RemainingBudgetResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/budget/remaining [get]
func (h *BudgetHandler) RemainingBudget(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.budgetService.Remaining(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to compute remaining budget", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute remaining budget",
		})
	}

	return c.JSON(resp)
}

// ListBudgetItems godoc
// @Summary List fixed budget items
// @Description Get the user's fixed monthly expenses
// @Tags budget
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.BudgetItemResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/budget/items [get]
func (h *BudgetHandler) ListBudgetItems(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	items, err := h.budgetService.ListItems(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list budget items", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list budget items",
		})
	}

	return c.JSON(budgetItemResponses(items))
}

// AddBudgetItem godoc
// @Summary Add a fixed budget item
// @Description Create a fixed monthly expense, folding it into the spent counter
// @Tags budget
// @Accept json
// @Produce json
// @Param request body dto.BudgetItemRequest true "Budget item"
// @Security Bearer
// @Success 201 {object} dto.BudgetItemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/budget/items [post]
func (h *BudgetHandler) AddBudgetItem(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.BudgetItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	item, err := h.budgetService.AddItem(c.Context(), userID, &req)
	if err != nil {
		if isValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to add budget item", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add budget item",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(budgetItemResponse(item))
}

// UpdateBudgetItem godoc
// @Summary Update a fixed budget item
// @Description Apply a partial edit to a fixed expense
// @Tags budget
// @Accept json
// @Produce json
// @Param id path string true "Budget item ID"
// @Param request body dto.BudgetItemUpdate true "Fields to change"
// @Security Bearer
// @Success 200 {object} dto.BudgetItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/budget/items/{id} [put]
func (h *BudgetHandler) UpdateBudgetItem(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid budget item ID",
		})
	}

	var update dto.BudgetItemUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	item, err := h.budgetService.UpdateItem(c.Context(), userID, itemID, &update)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Budget item not found",
			})
		}
		if isValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to update budget item", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update budget item",
		})
	}

	return c.JSON(budgetItemResponse(item))
}

// DeleteBudgetItem godoc
// @Summary Delete a fixed budget item
// @Tags budget
// @Produce json
// @Param id path string true "Budget item ID"
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/budget/items/{id} [delete]
func (h *BudgetHandler) DeleteBudgetItem(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid budget item ID",
		})
	}

	if err := h.budgetService.DeleteItem(c.Context(), userID, itemID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Budget item not found",
			})
		}
		h.logger.Error("Failed to delete budget item", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete budget item",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func budgetItemResponse(item *models.BudgetItem) dto.BudgetItemResponse {
	return dto.BudgetItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Amount:      item.Amount,
		Category:    string(item.Category),
		IsRecurring: item.IsRecurring,
	}
}

func budgetItemResponses(items []models.BudgetItem) []dto.BudgetItemResponse {
	resp := make([]dto.BudgetItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, budgetItemResponse(&items[i]))
	}
	return resp
}
