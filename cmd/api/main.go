package main

// @title SafeStreets API
// @version 1.0
// @description Сообщество отмечает небезопасные места: лента отчётов, карта с метками, профиль и лимиты отчётов и голосов.
// @description
// @description Основные возможности:
// @description - Вход и регистрация по email или телефону, сессия по Bearer-токену
// @description - Лента отчётов с фильтром по типу
// @description - Карта с маркерами, панорамированием, масштабом и выбором точки для отчёта
// @description - Лимиты на отчёты и голоса на сессию

// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer-токен сессии из /api/v1/auth/login

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/safestreets-service/docs"
	"github.com/safestreets-service/internal/config"
	httpDelivery "github.com/safestreets-service/internal/delivery/http"
	"github.com/safestreets-service/internal/delivery/http/handler"
	"github.com/safestreets-service/internal/domain"
	"github.com/safestreets-service/internal/domain/repository"
	"github.com/safestreets-service/internal/infrastructure/mapbox"
	"github.com/safestreets-service/internal/pkg/logger"
	"github.com/safestreets-service/internal/pkg/token"
	"github.com/safestreets-service/internal/repository/cache"
	"github.com/safestreets-service/internal/repository/memory"
	redisRepo "github.com/safestreets-service/internal/repository/redis"
	"github.com/safestreets-service/internal/usecase"
	"github.com/safestreets-service/internal/worker"
	reportWorker "github.com/safestreets-service/internal/worker/report"
	sessionWorker "github.com/safestreets-service/internal/worker/session"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "safestreets-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting SafeStreets API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
		zap.Bool("mapbox_enabled", cfg.MapboxEnabled()),
	)

	// 3. In-memory хранилища: отчёты живут до перезапуска процесса
	reportRepo := memory.NewReportRepository(memory.SeedReports())
	sessionRepo := memory.NewSessionRepository()

	// 4. Redis (опционально): кеш растра карты и стрим событий отчётов
	var (
		redisClient *cache.Redis
		cacheRepo   repository.CacheRepository
		eventRepo   repository.EventRepository
		streamRepo  repository.StreamRepository
	)
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Health(ctx); err != nil {
			cancel()
			log.Fatal("Redis health check failed", zap.Error(err))
		}
		cancel()

		cacheRepo = cache.NewCacheRepository(redisClient)
		streamRepo = redisRepo.NewStreamRepository(redisClient.Client(), log)
		eventRepo = redisRepo.NewEventRepository(streamRepo, cfg.Stream.ReportEvents)
		log.Info("Redis connected")
	} else {
		cacheRepo = memory.NewCacheRepository()
		eventRepo = memory.NewEventLog(0, log)
		log.Info("Redis disabled, using in-memory cache and event log")
	}

	// 5. Mapbox (опционально): без токена клиент получает fallback-изображение
	var mapboxRepo repository.MapboxRepository
	if cfg.MapboxEnabled() {
		mapboxRepo = mapbox.NewMapboxClient(&cfg.Mapbox, log)
	}

	log.Info("Repositories initialized")

	// 6. Initialize Use Cases
	initialQuota := domain.NewQuota(cfg.Quota.InitialReports, cfg.Quota.InitialUpvotes)
	centre := domain.GeoPoint{Lat: cfg.Map.CenterLat, Lng: cfg.Map.CenterLon}

	authUC := usecase.NewAuthUseCase(
		sessionRepo,
		token.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		initialQuota,
		log,
	)
	shellUC := usecase.NewShellUseCase(sessionRepo, log)
	reportUC := usecase.NewReportUseCase(
		sessionRepo,
		reportRepo,
		eventRepo,
		cfg.Report.PlaceholderImageURL,
		centre,
		log,
	)
	mapUC := usecase.NewMapUseCase(sessionRepo, reportRepo, cfg.Map.Area, log)
	mapImageUC := usecase.NewMapImageUseCase(
		mapboxRepo,
		cacheRepo,
		domain.StaticMapSpec{
			Style:  cfg.Mapbox.Style,
			Center: centre,
			Zoom:   cfg.Map.Zoom,
			Width:  cfg.Map.Width,
			Height: cfg.Map.Height,
		},
		cfg.Map.ImageCacheTTL,
		cfg.Map.FallbackImageURL,
		log,
	)
	profileUC := usecase.NewProfileUseCase(sessionRepo, initialQuota, log)
	statsUC := usecase.NewStatsUseCase(sessionRepo, reportRepo, log)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP Handlers
	handlers := httpDelivery.Handlers{
		Auth:    handler.NewAuthHandler(authUC, log),
		Shell:   handler.NewShellHandler(shellUC, log),
		Report:  handler.NewReportHandler(reportUC, log),
		Map:     handler.NewMapHandler(mapUC, mapImageUC, log),
		Profile: handler.NewProfileHandler(profileUC, log),
		Stats:   handler.NewStatsHandler(statsUC, log),
	}

	log.Info("HTTP handlers initialized")

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, handlers, authUC)

	// 9. Background workers
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	workers := worker.NewWorkerManager(log)
	workers.Register(sessionWorker.NewSweeper(
		sessionRepo,
		cfg.Auth.SessionIdle,
		cfg.Auth.SweepInterval,
		log,
	))
	if streamRepo != nil {
		workers.Register(reportWorker.NewAuditWorker(streamRepo, cfg.Stream.ReportEvents, "$", log))
	}
	if err := workers.Start(workerCtx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := workers.Stop(); err != nil {
		log.Error("Workers shutdown error", zap.Error(err))
	}
	stopWorkers()

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
