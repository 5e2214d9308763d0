package server

import (
	"context"

	"solar-catalog-be/internal/bootstrap"
	"solar-catalog-be/internal/config"
	"solar-catalog-be/internal/pkg/logger"
	"solar-catalog-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
	logger    logger.ILogger
}

func New(cfg *config.Config, container *bootstrap.Container, log logger.ILogger) *Server {
	bodyLimitMB := cfg.App.UploadMaxMB
	if bodyLimitMB <= 0 {
		bodyLimitMB = 10
	}

	app := fiber.New(fiber.Config{
		// Form values outlive the request in events and async mail.
		Immutable:    true,
		BodyLimit:    bodyLimitMB * 1024 * 1024,
		ErrorHandler: serverutils.ErrorHandler(log),
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.App.CorsAllowedOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Content-Type",
	}))

	// OpenTelemetry tracing middleware (no-op unless a provider is installed)
	app.Use(otelfiber.Middleware())

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
		logger:    log,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	s.logger.Info("SERVER", "Server is running", map[string]interface{}{"port": s.cfg.App.Port})
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	api.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(serverutils.SuccessResponse("OK", fiber.Map{"status": "ok"}))
	})

	c.SeriesController.RegisterRoutes(api)
	c.ProductController.RegisterRoutes(api)
	c.AdminController.RegisterRoutes(api)
	c.ContactController.RegisterRoutes(api)
	c.SiteController.RegisterRoutes(api)
	c.SeedController.RegisterRoutes(api)

	c.FeedHandler.RegisterRoutes(api)
}
