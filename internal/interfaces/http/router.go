package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hrdash-api/internal/application/analytics"
	"github.com/jhoicas/hrdash-api/internal/application/usecase"
	"github.com/jhoicas/hrdash-api/pkg/logger"
)

// RouterDeps dependencias para el router. Todo se construye en main y se
// inyecta aquí; no hay singletons de paquete.
type RouterDeps struct {
	EmployeeUC   *usecase.EmployeeUseCase
	DepartmentUC *usecase.CatalogUseCase
	JobTitleUC   *usecase.CatalogUseCase
	DashboardUC  *analytics.DashboardUseCase
	Log          *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Employees
	employees := api.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, deps.Log)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Put("/:id/deactivate", employeeHandler.Deactivate)

	// Dashboard (KPIs + breakdown)
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Log)
	dashboard.Get("/kpis", dashboardHandler.KPIs)
	dashboard.Get("/department-breakdown", dashboardHandler.DepartmentBreakdown)

	// Analytics (series de rotación y distribución salarial)
	analyticsGroup := api.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.DashboardUC, deps.Log)
	analyticsGroup.Get("/turnover", analyticsHandler.Turnover)
	analyticsGroup.Get("/salary-distribution", analyticsHandler.SalaryDistribution)

	// Departments
	departments := api.Group("/departments")
	departmentHandler := NewCatalogHandler(deps.DepartmentUC, "departamento", deps.Log)
	departments.Get("/", departmentHandler.List)
	departments.Post("/", departmentHandler.Create)
	departments.Delete("/:id", departmentHandler.Delete)

	// Job titles
	jobTitles := api.Group("/job-titles")
	jobTitleHandler := NewCatalogHandler(deps.JobTitleUC, "cargo", deps.Log)
	jobTitles.Get("/", jobTitleHandler.List)
	jobTitles.Post("/", jobTitleHandler.Create)
	jobTitles.Delete("/:id", jobTitleHandler.Delete)
}
