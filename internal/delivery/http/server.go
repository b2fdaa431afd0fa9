package http

import (
	"context"
	stdErrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/itinerary-service/internal/config"
	"github.com/itinerary-service/internal/delivery/http/handler"
	"github.com/itinerary-service/internal/delivery/http/middleware"
	"github.com/itinerary-service/internal/pkg/errors"
	"github.com/itinerary-service/internal/pkg/metrics"
	"github.com/itinerary-service/internal/pkg/utils"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	routePreviewHandler *handler.RoutePreviewHandler
	healthHandler       *handler.HealthHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	routePreviewHandler *handler.RoutePreviewHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Itinerary Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    64 * 1024,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                 app,
		config:              cfg,
		logger:              logger,
		routePreviewHandler: routePreviewHandler,
		healthHandler:       healthHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Prometheus exposition
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", s.healthHandler.Health)
	api.Get("/ready", s.healthHandler.Ready)

	// Route preview
	lists := api.Group("/lists", middleware.Auth(s.config.Auth.JWTSecret, s.config.Auth.UserClaim, s.logger))
	lists.Post("/:id/route-preview", s.routePreviewHandler.Preview)
}

// App exposes the Fiber app for in-process tests
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if stdErrors.As(err, &fe) {
			code := "INTERNAL_SERVER_ERROR"
			switch fe.Code {
			case fiber.StatusNotFound:
				code = "NOT_FOUND"
			case fiber.StatusMethodNotAllowed:
				code = "METHOD_NOT_ALLOWED"
			case fiber.StatusRequestEntityTooLarge:
				code = "PAYLOAD_TOO_LARGE"
			}
			return utils.SendError(c, errors.New(code, fe.Message, fe.Code))
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)

		return utils.SendError(c, err)
	}
}
