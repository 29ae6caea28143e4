package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"salarydash/docs"
	"salarydash/internal/config"
	handlers "salarydash/internal/http/handler"
	"salarydash/internal/http/middleware"
	"salarydash/internal/logger"
	"salarydash/internal/metrics"
	"salarydash/internal/otel"
	"salarydash/internal/repository/locator"
	"salarydash/internal/service"
)

// @title Salary Dashboard API
// @version 1.0
// @description Filterable salary metrics and charts for the data field.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	logger.Init(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, Service: otel.ServiceName})
	log := logger.Named("main")

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	datasetMetrics, err := metrics.NewDataset(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register dataset metrics")
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register http metrics")
	}

	// Resolve the dataset locator (http(s), s3 or postgres) into a read-only source
	repo, closeRepo, err := locator.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open dataset source")
	}
	defer closeRepo()

	svc := service.NewDashboardService(repo, service.Options{
		TopN:            cfg.Dashboard.TopN,
		HistogramBins:   cfg.Dashboard.HistogramBins,
		CountryJobTitle: cfg.Dashboard.CountryJobTitle,
		CacheTTL:        cfg.Dataset.CacheTTL,
		FetchTimeout:    cfg.Dataset.FetchTimeout,
	}, datasetMetrics)

	if cfg.Dataset.Preload {
		if err := svc.Warm(ctx); err != nil {
			log.Fatal().Err(err).Str("source", repo.Source()).Msg("failed to preload dataset")
		}
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// Recover turns a handler panic into a 500 envelope instead of killing the process
	app.Use(recover.New())
	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(httpMetrics.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected service
	handlers.RegisterRoutes(app, svc, handlers.Config{TableLimit: cfg.Dashboard.TableLimit})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	addr := ":" + cfg.Port
	log.Info().
		Str("addr", addr).
		Str("host", cfg.AppHost).
		Str("dataset", repo.Source()).
		Str("dataset_kind", repo.Kind()).
		Msg("server starting")

	if err := app.Listen(addr); err != nil {
		log.Error().Err(err).Msg("failed to start server")
	}
}
