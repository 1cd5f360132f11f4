package handlers

import (
	"errors"
	"time"

	"presupuesto/internal/dto"
	"presupuesto/internal/models"
	"presupuesto/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	txService *service.TransactionService
	logger    *zap.Logger
}

func NewTransactionHandler(txService *service.TransactionService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		txService: txService,
		logger:    logger,
	}
}

// ListTransactions godoc
// @Summary List transactions
// @Description Get the user's transactions, optionally filtered to one month
// @Tags transactions
// @Produce json
// @Param month query string false "Month filter (YYYY-MM)"
// @Security Bearer
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) ListTransactions(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	transactions, err := h.txService.List(c.Context(), userID, c.Query("month"))
	if err != nil {
		if isValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to list transactions", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list transactions",
		})
	}

	resp := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		resp = append(resp, transactionResponse(&transactions[i], ""))
	}
	return c.JSON(resp)
}

// AddTransaction godoc
// @Summary Add a transaction
// @Description Record a variable expense; the category resolves from the
// @Description explicit choice, keyword detection, or the default bucket
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.TransactionRequest true "Transaction"
// @Security Bearer
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/transactions [post]
func (h *TransactionHandler) AddTransaction(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	tx, source, err := h.txService.Add(c.Context(), userID, &req)
	if err != nil {
		if isValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to add transaction", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add transaction",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(transactionResponse(tx, string(source)))
}

// UpdateTransaction godoc
// @Summary Update a transaction
// @Description Apply a partial edit to a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body dto.TransactionUpdate true "Fields to change"
// @Security Bearer
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	txID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid transaction ID",
		})
	}

	var update dto.TransactionUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	tx, err := h.txService.Update(c.Context(), userID, txID, &update)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Transaction not found",
			})
		}
		if isValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to update transaction", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update transaction",
		})
	}

	return c.JSON(transactionResponse(tx, ""))
}

// DeleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	txID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid transaction ID",
		})
	}

	if err := h.txService.Delete(c.Context(), userID, txID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Transaction not found",
			})
		}
		h.logger.Error("Failed to delete transaction", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete transaction",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ImportTransactions godoc
// @Summary Import transactions
// @Description Store a batch of transactions; invalid rows are skipped and reported
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.ImportTransactionsRequest true "Transactions to import"
// @Security Bearer
// @Success 200 {object} dto.ImportTransactionsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/transactions/import [post]
func (h *TransactionHandler) ImportTransactions(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.ImportTransactionsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	stored, skipped, err := h.txService.Import(c.Context(), userID, req.Transactions)
	if err != nil {
		h.logger.Error("Failed to import transactions", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to import transactions",
		})
	}

	resp := dto.ImportTransactionsResponse{
		Imported: len(stored),
		Skipped:  skipped,
		Stored:   make([]dto.TransactionResponse, 0, len(stored)),
	}
	for i := range stored {
		resp.Stored = append(resp.Stored, transactionResponse(&stored[i], ""))
	}
	return c.JSON(resp)
}

// ParseExpense godoc
// @Summary Parse a free-text expense
// @Description Preview the description, amount and category extracted from text like "Almuerzo 15000"
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.ParseExpenseRequest true "Free-text input"
// @Security Bearer
// @Success 200 {object} dto.ParseExpenseResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/transactions/parse [post]
func (h *TransactionHandler) ParseExpense(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.ParseExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.txService.Parse(c.Context(), userID, req.Input)
	if err != nil {
		if isValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "No amount found in input",
			})
		}
		h.logger.Error("Failed to parse expense", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to parse expense",
		})
	}

	return c.JSON(resp)
}

func transactionResponse(tx *models.Transaction, source string) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          tx.ID.String(),
		Description: tx.Description,
		Amount:      tx.Amount,
		Category:    tx.Category,
		Source:      source,
		Date:        tx.Date.Format("2006-01-02"),
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
}
