package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/config"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/delivery/http/handler"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/delivery/http/middleware"
)

// Server is the Fiber HTTP server exposing the dashboard API.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	dashboardHandler    *handler.DashboardHandler
	dsiHandler          *handler.DsiHandler
	demographicsHandler *handler.DemographicsHandler
	migrationHandler    *handler.MigrationHandler
	anomalyHandler      *handler.AnomalyHandler
	forecastHandler     *handler.ForecastHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	dashboardHandler *handler.DashboardHandler,
	dsiHandler *handler.DsiHandler,
	demographicsHandler *handler.DemographicsHandler,
	migrationHandler *handler.MigrationHandler,
	anomalyHandler *handler.AnomalyHandler,
	forecastHandler *handler.ForecastHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Sankhya District Insights",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                 app,
		config:              cfg,
		logger:              logger,
		dashboardHandler:    dashboardHandler,
		dsiHandler:          dsiHandler,
		demographicsHandler: demographicsHandler,
		migrationHandler:    migrationHandler,
		anomalyHandler:      anomalyHandler,
		forecastHandler:     forecastHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Dashboard routes
	api.Get("/dashboard/kpis", s.dashboardHandler.GetKPIs)
	api.Get("/dashboard/stressed-districts", s.dashboardHandler.GetStressedDistricts)
	api.Get("/dashboard/alerts", s.dashboardHandler.GetAlerts)
	api.Get("/dashboard/snapshot", s.dashboardHandler.GetSnapshot)

	// Map routes
	api.Get("/map/markers", s.dashboardHandler.GetMapMarkers)

	// DSI routes
	api.Get("/dsi/calculate", s.dsiHandler.Calculate)
	api.Get("/dsi/formula", s.dsiHandler.Formula)

	// Demographics routes
	api.Get("/demographics/data", s.demographicsHandler.GetData)

	// Migration routes
	api.Get("/migration/flows", s.migrationHandler.GetFlows)

	// Anomaly and resource routes
	api.Get("/anomalies/detect", s.anomalyHandler.Detect)
	api.Get("/resources/assets", s.anomalyHandler.GetDeadCenters)
	api.Get("/resources/recommendations", s.forecastHandler.GetRecommendations)

	// Forecast routes
	api.Get("/forecast/demand", s.forecastHandler.GetDemand)

	// Pipeline run history
	api.Get("/pipeline/runs", s.dashboardHandler.GetPipelineRuns)
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the underlying Fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
