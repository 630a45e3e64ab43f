package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hrdash-api/internal/application/analytics"
	"github.com/jhoicas/hrdash-api/pkg/logger"
)

// AnalyticsHandler expone las series de rotación y la distribución salarial.
type AnalyticsHandler struct {
	uc  *analytics.DashboardUseCase
	log *logger.Logger
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.DashboardUseCase, log *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc, log: log}
}

// Turnover GET /api/analytics/turnover
func (h *AnalyticsHandler) Turnover(c *fiber.Ctx) error {
	data, err := h.uc.Turnover(c.UserContext())
	if err != nil {
		return respondStoreError(c, h.log, err, "turnover")
	}
	return c.JSON(data)
}

// SalaryDistribution GET /api/analytics/salary-distribution
func (h *AnalyticsHandler) SalaryDistribution(c *fiber.Ctx) error {
	data, err := h.uc.SalaryDistribution(c.UserContext())
	if err != nil {
		return respondStoreError(c, h.log, err, "salary distribution")
	}
	return c.JSON(data)
}
