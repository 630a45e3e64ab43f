package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hrdash-api/internal/application/analytics"
	"github.com/jhoicas/hrdash-api/pkg/logger"
)

// DashboardHandler expone los KPIs y la distribución por departamento.
type DashboardHandler struct {
	uc  *analytics.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// KPIs GET /api/dashboard/kpis
func (h *DashboardHandler) KPIs(c *fiber.Ctx) error {
	kpis, err := h.uc.KPIs(c.UserContext())
	if err != nil {
		return respondStoreError(c, h.log, err, "dashboard kpis")
	}
	return c.JSON(kpis)
}

// DepartmentBreakdown GET /api/dashboard/department-breakdown
func (h *DashboardHandler) DepartmentBreakdown(c *fiber.Ctx) error {
	breakdown, err := h.uc.DepartmentBreakdown(c.UserContext())
	if err != nil {
		return respondStoreError(c, h.log, err, "department breakdown")
	}
	return c.JSON(breakdown)
}
