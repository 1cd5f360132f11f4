package handlers

import (
	"presupuesto/internal/dto"
	"presupuesto/internal/models"
	"presupuesto/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
	logger          *zap.Logger
}

func NewCategoryHandler(categoryService *service.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// ListCategories godoc
// @Summary List user's categories
// @Description Get the user's expense categories in their configured order
// @Tags categories
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.CategoryResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/categories [get]
func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	categories, err := h.categoryService.List(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list categories", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list categories",
		})
	}

	return c.JSON(categoryResponses(categories))
}

// PredefinedCategories godoc
// @Summary List predefined categories
// @Description Get the onboarding list of suggested categories
// @Tags categories
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.CategoryResponse
// @Router /api/v1/categories/predefined [get]
func (h *CategoryHandler) PredefinedCategories(c *fiber.Ctx) error {
	return c.JSON(categoryResponses(h.categoryService.Predefined()))
}

// ReplaceCategories godoc
// @Summary Replace user's categories
// @Description Replace the whole category set, keeping the given order
// @Tags categories
// @Accept json
// @Produce json
// @Param request body dto.ReplaceCategoriesRequest true "New category set"
// @Security Bearer
// @Success 200 {array} dto.CategoryResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/categories [put]
func (h *CategoryHandler) ReplaceCategories(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.ReplaceCategoriesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	categories, err := h.categoryService.Replace(c.Context(), userID, req.Categories)
	if err != nil {
		if isValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to replace categories", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to replace categories",
		})
	}

	return c.JSON(categoryResponses(categories))
}

// DetectCategory godoc
// @Summary Detect a category
// @Description Detect the category for a description using the keyword table
// @Tags categories
// @Produce json
// @Param description query string true "Expense description"
// @Security Bearer
// @Success 200 {object} dto.DetectCategoryResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/categories/detect [get]
func (h *CategoryHandler) DetectCategory(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	category, err := h.categoryService.Detect(c.Context(), userID, c.Query("description"))
	if err != nil {
		h.logger.Error("Failed to detect category", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to detect category",
		})
	}

	source := service.SourceDetected
	if category == "" {
		category = models.DefaultCategoryName
		source = service.SourceDefault
	}

	return c.JSON(dto.DetectCategoryResponse{
		Category: category,
		Source:   string(source),
	})
}

// SuggestCategories godoc
// @Summary Suggest categories
// @Description Get up to three category suggestions ordered by relevance
// @Tags categories
// @Produce json
// @Param description query string true "Expense description"
// @Security Bearer
// @Success 200 {object} dto.SuggestCategoriesResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/categories/suggest [get]
func (h *CategoryHandler) SuggestCategories(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	suggestions, err := h.categoryService.Suggest(c.Context(), userID, c.Query("description"))
	if err != nil {
		h.logger.Error("Failed to suggest categories", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to suggest categories",
		})
	}

	return c.JSON(dto.SuggestCategoriesResponse{Suggestions: suggestions})
}

// AddKeywords godoc
// @Summary Add keywords to a category
// @Description Register extra detection keywords under a category
// @Tags categories
// @Accept json
// @Produce json
// @Param name path string true "Category name"
// @Param request body dto.AddKeywordsRequest true "Keywords to add"
// @Security Bearer
// @Success 200 {object} dto.KeywordsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/categories/{name}/keywords [post]
func (h *CategoryHandler) AddKeywords(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	category := c.Params("name")
	if category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Category name is required",
		})
	}

	var req dto.AddKeywordsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.categoryService.AddKeywords(c.Context(), userID, category, req.Keywords); err != nil {
		h.logger.Error("Failed to add keywords", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add keywords",
		})
	}

	keywords, err := h.categoryService.Keywords(c.Context(), userID, category)
	if err != nil {
		h.logger.Error("Failed to list keywords", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list keywords",
		})
	}

	return c.JSON(dto.KeywordsResponse{Category: category, Keywords: keywords})
}

// ListKeywords godoc
// @Summary List a category's keywords
// @Description Get the effective keyword set for a category
// @Tags categories
// @Produce json
// @Param name path string true "Category name"
// @Security Bearer
// @Success 200 {object} dto.KeywordsResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/categories/{name}/keywords [get]
func (h *CategoryHandler) ListKeywords(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	category := c.Params("name")
	keywords, err := h.categoryService.Keywords(c.Context(), userID, category)
	if err != nil {
		h.logger.Error("Failed to list keywords", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list keywords",
		})
	}

	return c.JSON(dto.KeywordsResponse{Category: category, Keywords: keywords})
}

func categoryResponses(categories []models.Category) []dto.CategoryResponse {
	resp := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, dto.CategoryResponse{
			ID:    c.ID.String(),
			Name:  c.Name,
			Icon:  c.Icon,
			Color: c.Color,
		})
	}
	return resp
}
