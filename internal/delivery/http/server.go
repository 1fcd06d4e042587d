package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/safestreets-service/internal/config"
	"github.com/safestreets-service/internal/delivery/http/handler"
	"github.com/safestreets-service/internal/delivery/http/middleware"
	"github.com/safestreets-service/internal/pkg/errors"
	"github.com/safestreets-service/internal/pkg/utils"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Handlers - набор обработчиков для маршрутов
type Handlers struct {
	Auth    *handler.AuthHandler
	Shell   *handler.ShellHandler
	Report  *handler.ReportHandler
	Map     *handler.MapHandler
	Profile *handler.ProfileHandler
	Stats   *handler.StatsHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	handlers Handlers
	sessions middleware.SessionResolver
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	handlers Handlers,
	sessions middleware.SessionResolver,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "SafeStreets",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		handlers: handlers,
		sessions: sessions,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - доступ к fiber.App для тестов
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.CORS.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Открытые маршруты
	api.Get("/health", s.handlers.Stats.Health)
	api.Post("/auth/login", s.handlers.Auth.Login)
	api.Post("/auth/signup", s.handlers.Auth.Signup)
	api.Get("/map/image", s.handlers.Map.Image)

	// Маршруты сессии
	auth := middleware.Auth(s.sessions)

	api.Post("/auth/logout", auth, s.handlers.Auth.Logout)

	api.Get("/state", auth, s.handlers.Shell.GetState)
	shell := api.Group("/shell", auth)
	shell.Put("/tab", s.handlers.Shell.SelectTab)
	shell.Put("/filter", s.handlers.Shell.SelectFilter)
	shell.Post("/composer", s.handlers.Shell.OpenComposer)
	shell.Delete("/composer", s.handlers.Shell.CloseComposer)

	api.Get("/feed", auth, s.handlers.Report.Feed)
	reports := api.Group("/reports", auth)
	reports.Post("/", s.handlers.Report.Submit)
	reports.Post("/:id/upvote", s.handlers.Report.Upvote)
	reports.Delete("/:id", s.handlers.Report.Delete)

	// /map/image открыт, поэтому auth навешан на каждый маршрут карты
	mapGroup := api.Group("/map")
	mapGroup.Get("/", auth, s.handlers.Map.View)
	mapGroup.Post("/pointer", auth, s.handlers.Map.Pointer)
	mapGroup.Post("/zoom", auth, s.handlers.Map.Zoom)
	mapGroup.Post("/markers/:id/toggle", auth, s.handlers.Map.ToggleMarker)
	mapGroup.Delete("/popup", auth, s.handlers.Map.ClosePopup)
	mapGroup.Delete("/candidate", auth, s.handlers.Map.CancelCandidate)
	mapGroup.Post("/candidate/report", auth, s.handlers.Map.ReportHere)

	api.Get("/profile", auth, s.handlers.Profile.GetProfile)
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
		if e, ok := err.(*fiber.Error); ok {
			code := "INTERNAL_SERVER_ERROR"
			switch e.Code {
			case fiber.StatusNotFound:
				code = "NOT_FOUND"
			case fiber.StatusMethodNotAllowed:
				code = "METHOD_NOT_ALLOWED"
			default:
				if e.Code < fiber.StatusInternalServerError {
					code = "INVALID_REQUEST"
				}
			}
			return utils.SendError(c, errors.New(code, e.Message, e.Code))
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)

		return utils.SendError(c, err)
	}
}
