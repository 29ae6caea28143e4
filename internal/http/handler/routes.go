package handler

import (
	"github.com/gofiber/fiber/v2"

	"salarydash/internal/service"
)

// Config holds presentation settings for the routes.
type Config struct {
	// TableLimit caps the rows rendered in the dashboard detail table.
	TableLimit int
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers only translate HTTP to service calls; every computation lives in the service.
func RegisterRoutes(app *fiber.App, svc service.DashboardService, cfg Config) {
	app.Get("/", DashboardPage(svc, cfg.TableLimit))
	app.Get("/charts/:name", GetChart(svc))

	api := app.Group("/api")
	api.Get("/options", GetOptions(svc))
	api.Get("/summary", GetSummary(svc))
	api.Get("/records.csv", ExportRecords(svc))
	api.Get("/records", ListRecords(svc))

	// Readiness: the dataset has been loaded at least once
	app.Get("/health", HealthCheck(svc))
	// Liveness probe
	app.Get("/healthz", LivenessProbe())
}

// HealthCheck godoc
// @Summary Readiness probe
// @Description Reports healthy once a dataset is cached.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !svc.Ready() {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dataset not loaded")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe answers 200 as long as the process serves HTTP.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
