package handlers

import (
	"presupuesto/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AnalysisHandler struct {
	analysisService *service.AnalysisService
	logger          *zap.Logger
}

func NewAnalysisHandler(analysisService *service.AnalysisService, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		logger:          logger,
	}
}

// MonthlyAnalysis godoc
// @Summary Get the monthly analysis
// @Description Get the financial report for a month: totals, savings rate, utilization, health, breakdown and trends
// @Tags analysis
// @Produce json
// @Param month query string false "Month (YYYY-MM), defaults to the present one"
// @Security Bearer
// @Success 200 {object} service.MonthlyAnalysis
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/analysis [get]
func (h *AnalysisHandler) MonthlyAnalysis(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	report, err := h.analysisService.Analyze(c.Context(), userID, c.Query("month"))
	if err != nil {
		if isValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to build analysis", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build analysis",
		})
	}

	return c.JSON(report)
}
