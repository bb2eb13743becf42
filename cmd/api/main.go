package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"event-heatmap-service/internal/config"
	"event-heatmap-service/internal/db"

	eventsHttp "event-heatmap-service/internal/events/adapters/http/fiber"
	eventsRepoPg "event-heatmap-service/internal/events/adapters/postgres"
	eventsUsecase "event-heatmap-service/internal/events/core/usecase"

	metricsHttp "event-heatmap-service/internal/metrics/adapters/http/fiber"
	metricsRepoPg "event-heatmap-service/internal/metrics/adapters/postgres"
	metricsUsecase "event-heatmap-service/internal/metrics/core/usecase"

	"event-heatmap-service/internal/heatmap/adapters/echarts"
	heatmapHttp "event-heatmap-service/internal/heatmap/adapters/http/fiber"
	"event-heatmap-service/internal/heatmap/adapters/imageplot"
	heatmapRepoPg "event-heatmap-service/internal/heatmap/adapters/postgres"
	heatmapUsecase "event-heatmap-service/internal/heatmap/core/usecase"

	"github.com/gofiber/fiber/v2"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "event-heatmap-service/docs"
)

// @title Event Heatmap Service API
// @version 1.0
// @description Ingests positional world events and serves aggregated metrics and 3D heat maps.
// @host localhost:8080
// @BasePath /
func main() {
	// Config
	cfg, err := config.LoadServerConfig(os.Getenv)
	if err != nil {
		log.Fatal(err)
	}

	heatmapCfg, err := config.LoadHeatmapDefaults(cfg.HeatmapConfig)
	if err != nil {
		log.Fatalf("failed to load heatmap config: %v", err)
	}
	defaults, err := heatmapCfg.Settings()
	if err != nil {
		log.Fatalf("invalid heatmap config: %v", err)
	}

	// DB connection
	sqlDB, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("failed to open postgres: %v", err)
	}
	defer sqlDB.Close()

	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("failed to ping postgres: %v", err)
	}

	if cfg.MigrationsAuto {
		if err := db.MigrateUp(sqlDB); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}
	if version, dirty, err := db.MigrateVersion(sqlDB); err != nil {
		log.Printf("schema version unknown: %v", err)
	} else {
		log.Printf("schema version %d (dirty=%v)", version, dirty)
	}

	// Shared DB wrapper
	conn := db.NewSQLDB(sqlDB)

	// Repositories
	eventRepository := eventsRepoPg.NewEventRepository(conn)
	metricsRepository := metricsRepoPg.NewMetricsRepository(conn)
	eventSource := heatmapRepoPg.NewEventSource(conn)

	// Usecases
	storeEventUC := eventsUsecase.NewStoreEventUseCase(eventRepository)
	getMetricsUC := metricsUsecase.NewGetMetricsUseCase(metricsRepository)
	buildHeatmapUC := heatmapUsecase.NewBuildHeatmapUseCase(eventSource)

	// HTTP (Fiber) app + handlers
	app := fiber.New()

	// events endpoints
	eventsHandler := eventsHttp.NewEventHandler(storeEventUC)
	app.Post("/events", eventsHandler.CreateEvent)
	app.Post("/events/bulk", eventsHandler.BulkCreateEvents)
	app.Post("/events/import", eventsHandler.ImportLog)

	// metrics endpoints
	metricsHandler := metricsHttp.NewMetricsHandler(getMetricsUC)
	app.Get("/metrics", metricsHandler.GetMetrics)

	// heatmap endpoints
	heatmapHandler := heatmapHttp.NewHeatmapHandler(buildHeatmapUC, defaults, echarts.NewRenderer(), imageplot.NewRenderer())
	app.Get("/heatmap", heatmapHandler.GetHeatmap)
	app.Get("/heatmap/chart", heatmapHandler.GetHeatmapChart)
	app.Get("/heatmap/image", heatmapHandler.GetHeatmapImage)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	log.Printf("server started on %s", cfg.HTTPAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	log.Println("server exiting")
}
