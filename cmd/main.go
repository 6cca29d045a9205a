package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/road_risk_advisor/internal/advisory"
	"github.com/shenikar/road_risk_advisor/internal/config"
	"github.com/shenikar/road_risk_advisor/internal/feed"
	"github.com/shenikar/road_risk_advisor/internal/geocode"
	v1 "github.com/shenikar/road_risk_advisor/internal/handler/http/v1"
	"github.com/shenikar/road_risk_advisor/internal/importer"
	"github.com/shenikar/road_risk_advisor/internal/models"
	"github.com/shenikar/road_risk_advisor/internal/observability"
	"github.com/shenikar/road_risk_advisor/internal/repository"
	"github.com/shenikar/road_risk_advisor/internal/service"
	"github.com/shenikar/road_risk_advisor/internal/webhook"
	"github.com/shenikar/road_risk_advisor/internal/worker"
	"github.com/shenikar/road_risk_advisor/pkg/logger"
	"github.com/shenikar/road_risk_advisor/pkg/postgres"
	redisclient "github.com/shenikar/road_risk_advisor/pkg/redis"
	"github.com/shenikar/road_risk_advisor/pkg/sqlite"

	_ "github.com/shenikar/road_risk_advisor/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// openStore подключает хранилище по STORE_DRIVER и применяет миграции.
// Возвращает функцию закрытия соединения.
func openStore(ctx context.Context, cfg *config.Config, log *logrus.Logger) (service.IncidentStore, func(), error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		log.Info("Running PostgreSQL migrations...")
		if err := repository.MigratePostgres(cfg.DatabaseURL); err != nil {
			return nil, nil, err
		}
		dbpool, err := postgres.NewPostgresDB(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		log.Info("Successfully connected to PostgreSQL")
		return repository.NewPostgresStore(dbpool), dbpool.Close, nil
	default:
		db, err := sqlite.NewSQLiteDB(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Running SQLite migrations...")
		if err := repository.MigrateSQLite(db); err != nil {
			db.Close()
			return nil, nil, err
		}
		log.WithField("path", cfg.SQLitePath).Info("Successfully opened SQLite store")
		return repository.NewSQLiteStore(db), func() { db.Close() }, nil
	}
}

// @title Road Risk Advisor API
// @version 1.0
// @description Road crash records: import, spatial search, filters and risk advisory.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)
	metrics := observability.NewMetrics()

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer closeStore()

	// Геокодер; с Redis - с кешем координат
	var geocoder service.Geocoder = geocode.NewClient(cfg.GeocoderURL, cfg.GeocoderUserAgent, cfg.GeocoderTimeout, metrics)
	var publisher webhook.WebhookPublisher = webhook.NopPublisher{}

	if cfg.RedisAddr != "" {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		geocoder = geocode.NewCachedGeocoder(geocoder, repository.NewGeocodeCache(redisClient), cfg.GeocodeCacheTTL, log, metrics)
		publisher = webhook.NewRedisWebhookPublisher(redisClient)

		webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
		webhookWorker.Start(ctx)
	} else {
		log.Warn("REDIS_ADDR is not set: geocode cache and import webhooks are disabled")
	}

	// s3:// источники доступны только при настроенном S3
	var objects feed.ObjectGetter
	if cfg.AWSRegion != "" || cfg.S3Endpoint != "" {
		s3Client, err := feed.NewS3Client(ctx, feed.S3Config{
			Region:    cfg.AWSRegion,
			Endpoint:  cfg.S3Endpoint,
			PathStyle: cfg.S3PathStyle,
		})
		if err != nil {
			log.Fatalf("Failed to create S3 client: %v", err)
		}
		objects = s3Client
	}

	// Пул фонового импорта
	importPool := worker.NewPool[models.ImportOutcome]("imports", cfg.ImportWorkers, cfg.ImportQueueSize, clockwork.NewRealClock(), log).
		WithRetention(cfg.ImportStatusTTL)
	importPool.Start(ctx)
	defer importPool.Stop()

	// Инициализация сервисов
	incidentService := service.NewIncidentService(store, log, metrics)
	coordinator := service.NewCoordinator(incidentService, geocoder, log)
	importService := service.NewImportService(
		importPool,
		feed.NewSource(objects),
		importer.New(log, metrics),
		incidentService,
		publisher,
		clockwork.NewRealClock(),
		log,
		metrics,
	)

	// Инициализация хэндлеров
	handler := v1.NewHandler(
		incidentService,
		coordinator,
		importService,
		advisory.New(clockwork.NewRealClock()),
		worker.NewLatest[[]models.IncidentRecord](metrics),
		log,
		cfg,
	)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}
	// Останавливаем фоновые задачи до закрытия хранилища
	cancel()

	log.Info("Server gracefully stopped")
}
