package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gmaps-business-provider/internal/config"
	"github.com/gmaps-business-provider/internal/delivery/http/handler"
	"github.com/gmaps-business-provider/internal/delivery/http/middleware"
	"github.com/gmaps-business-provider/internal/pkg/utils"
	"github.com/gmaps-business-provider/internal/usecase/dto"
	"go.uber.org/zap"
)

// HealthChecker - проверка доступности хранилища кеша
type HealthChecker func(ctx context.Context) error

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	providerHandler  *handler.ProviderHandler
	tileHandler      *handler.TileHandler
	geocodingHandler *handler.GeocodingHandler

	credentialsActive func() bool
	cacheHealth       HealthChecker
}

// NewServer - создание нового HTTP сервера. cacheHealth может быть nil
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	providerHandler *handler.ProviderHandler,
	tileHandler *handler.TileHandler,
	geocodingHandler *handler.GeocodingHandler,
	credentialsActive func() bool,
	cacheHealth HealthChecker,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Google Maps Business Provider",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: time.Duration(cfg.Google.RequestTimeout+10) * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		providerHandler:   providerHandler,
		tileHandler:       tileHandler,
		geocodingHandler:  geocodingHandler,
		credentialsActive: credentialsActive,
		cacheHealth:       cacheHealth,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	api := s.app.Group("/api/v1")

	api.Get("/health", s.health)

	// Providers and tiles
	api.Get("/providers", s.providerHandler.List)
	api.Get("/providers/:id", s.providerHandler.GetByID)
	api.Get("/providers/:type/tiles/:z/:x/:y.png", s.tileHandler.GetTile)

	// Geocoding
	api.Get("/geocode", s.geocodingHandler.Geocode)
	api.Get("/reverse-geocode", s.geocodingHandler.ReverseGeocode)

	// Routing
	api.Post("/route", s.geocodingHandler.Route)
	api.Post("/route/address", s.geocodingHandler.RouteByAddress)
}

func (s *Server) health(c *fiber.Ctx) error {
	resp := dto.HealthResponse{
		Status: "healthy",
		Cache:  s.config.Cache.Backend,
	}
	if s.credentialsActive != nil {
		resp.Credentials = s.credentialsActive()
	}

	if s.cacheHealth != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := s.cacheHealth(ctx); err != nil {
			s.logger.Warn("Cache health check failed", zap.Error(err))
			resp.Status = "degraded"
			return c.Status(fiber.StatusServiceUnavailable).JSON(utils.SuccessResponse{Data: resp})
		}
	}

	return utils.SendSuccess(c, resp, nil)
}

// App возвращает fiber приложение (используется в тестах)
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
		code := fiber.StatusInternalServerError
		errCode := "INTERNAL_SERVER_ERROR"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			if code == fiber.StatusNotFound {
				errCode = "NOT_FOUND"
			}
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    errCode,
				"message": err.Error(),
			},
		})
	}
}
