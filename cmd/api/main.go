// @title CareerPath API
// @version 1.0
// @description Quizzes, learning roadmaps and progress tracking for career preparation.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "careerpath/cmd/api/docs"
	"careerpath/internal/adapter"
	"careerpath/internal/config"
	"careerpath/internal/handler"
	"careerpath/internal/logger"
	"careerpath/internal/middleware"
	"careerpath/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Key-value store
	store, closeStore, err := adapter.NewKeyValueStore(cfg, registry)
	if err != nil {
		appLogger.Fatal("Failed to initialize store", zap.Error(err), zap.String("backend", cfg.Store.Backend))
	}
	defer func() {
		if err := closeStore(); err != nil {
			appLogger.Warn("Failed to close store", zap.Error(err))
		}
	}()

	// Initialize services
	activityService := service.NewActivityService(store)
	quizService := service.NewQuizService(store, activityService)
	roadmapService := service.NewRoadmapService(store)
	formatter := service.NewRelativeTimeFormatter(cfg.Progress.DateLayout, cfg.Progress.Location())
	progressService := service.NewProgressService(quizService, roadmapService, activityService, formatter, cfg.Progress.RecentLimit)
	interviewService := service.NewInterviewService(activityService)
	appLogger.Info("Services initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())
	app.Use(middleware.NewHTTPMetrics(registry).Handler())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept," + middleware.HeaderRequestID,
		MaxAge:       300,
	}))

	app.Get("/health", handler.NewHealthHandler(store, cfg.Store.Backend).Check)
	app.Get("/metrics", middleware.PrometheusHandler(registry))
	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.RegisterRoutes(app.Group("/api"), handler.Handlers{
		Quiz:      handler.NewQuizHandler(quizService),
		Roadmap:   handler.NewRoadmapHandler(roadmapService),
		Progress:  handler.NewProgressHandler(progressService),
		Interview: handler.NewInterviewHandler(interviewService),
		Activity:  handler.NewActivityHandler(activityService),
	})

	// Start server
	go func() {
		appLogger.Info("Starting server",
			zap.Int("port", cfg.Server.Port),
			zap.String("env", cfg.Logger.Env),
			zap.String("store", cfg.Store.Backend))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
