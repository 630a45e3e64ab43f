package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	appanalytics "github.com/jhoicas/hrdash-api/internal/application/analytics"
	"github.com/jhoicas/hrdash-api/internal/application/usecase"
	"github.com/jhoicas/hrdash-api/internal/infrastructure/postgres"
	"github.com/jhoicas/hrdash-api/internal/infrastructure/realtime"
	httpRouter "github.com/jhoicas/hrdash-api/internal/interfaces/http"
	"github.com/jhoicas/hrdash-api/pkg/config"
	"github.com/jhoicas/hrdash-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// salary (NUMERIC) viaja como número JSON, no como string
	decimal.MarshalJSONWithoutQuotes = true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("inicializar esquema")
	}

	// Hub realtime: una goroutine posee el conjunto de clientes conectados
	hub := realtime.NewHub(log)
	go hub.Run(ctx)

	employeeRepo := postgres.NewEmployeeRepository(pool)
	departmentRepo := postgres.NewCatalogRepository(pool, postgres.TableDepartments)
	jobTitleRepo := postgres.NewCatalogRepository(pool, postgres.TableJobTitles)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, txRunner, hub)
	departmentUC := usecase.NewCatalogUseCase(usecase.CatalogDepartment, departmentRepo, hub)
	jobTitleUC := usecase.NewCatalogUseCase(usecase.CatalogJobTitle, jobTitleRepo, hub)

	labeler := appanalytics.NewSalaryLabeler(
		cfg.Analytics.Locale, cfg.Analytics.CurrencySymbol, cfg.Analytics.UnitSuffix,
	)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, labeler)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "HR Dashboard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		EmployeeUC:   employeeUC,
		DepartmentUC: departmentUC,
		JobTitleUC:   jobTitleUC,
		DashboardUC:  dashboardUC,
		Log:          log,
	})
	httpRouter.RegisterRealtime(app, hub)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	cancel() // detiene el hub y cierra los clientes realtime

	log.Info().Msg("aplicación detenida")
}
