package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/fire_ops_system/internal/audit"
	"github.com/shenikar/fire_ops_system/internal/config"
	v1 "github.com/shenikar/fire_ops_system/internal/handler/http/v1"
	"github.com/shenikar/fire_ops_system/internal/repository"
	"github.com/shenikar/fire_ops_system/internal/seed"
	"github.com/shenikar/fire_ops_system/internal/service"
	"github.com/shenikar/fire_ops_system/internal/store"
	"github.com/shenikar/fire_ops_system/pkg/logger"
	"github.com/shenikar/fire_ops_system/pkg/postgres"
	redisclient "github.com/shenikar/fire_ops_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/fire_ops_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Fire Ops System API
// @version 1.0
// @description Records service of a volunteer fire department: incidents, personnel, apparatus, properties, fire dues, billing, budget and assets.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// newStore создает хранилище с эмуляцией сетевых вызовов по конфигурации
func newStore(cfg *config.Config) *store.Store {
	return store.New(
		store.WithLatency(cfg.SimulatedLatency),
		store.WithErrorRate(cfg.SimulatedErrorRate, nil),
	)
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db := newStore(cfg)

	// Снимки состояния в PostgreSQL (если задан DATABASE_URL)
	var snapshots service.SnapshotService
	restored := false
	if cfg.DatabaseURL != "" {
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		dbpool, err := postgres.NewPostgresDB(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")

		snapshots = service.NewSnapshotService(db, repository.NewSnapshotRepository(dbpool), log)
		restored, err = snapshots.Restore(ctx)
		if err != nil {
			log.Fatalf("Failed to restore snapshot: %v", err)
		}
	}

	if !restored && cfg.SeedData {
		if err := seed.Load(ctx, db, db.Now()); err != nil {
			log.Fatalf("Failed to load seed data: %v", err)
		}
		log.Info("Seed data loaded")
	}

	// Redis (если задан REDIS_ADDR): раскладки панели и очередь аудита
	var publisher audit.Publisher = audit.NewStoreSink(db)
	layouts := repository.NewMemoryLayoutRepository()
	if cfg.RedisAddr != "" {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		publisher = audit.NewRedisPublisher(redisClient)
		layouts = repository.NewRedisLayoutRepository(redisClient)

		// Инициализация и запуск воркера аудита
		auditWorker := audit.NewWorker(redisClient, db, log, cfg)
		auditWorker.Start(ctx)
	}

	// Инициализация сервисов
	services := v1.Services{
		Incidents: service.NewIncidentService(db, log, publisher),
		Personnel: service.NewPersonnelService(db, log, publisher),
		Apparatus: service.NewApparatusService(db, log, publisher),
		Property:  service.NewPropertyService(db, log),
		FireDues:  service.NewFireDueService(db, log),
		Billing:   service.NewBillingService(db, log),
		Budget:    service.NewBudgetService(db, log),
		Assets:    service.NewAssetService(db, log, publisher),
		Training:  service.NewTrainingService(db, log),
		Portal:    service.NewPortalService(db, log),
		Dashboard: service.NewDashboardService(db, layouts, log),
	}

	snapshotDone := make(chan struct{})
	if snapshots != nil {
		go func() {
			defer close(snapshotDone)
			snapshots.Run(ctx, cfg.SnapshotInterval)
		}()
	} else {
		close(snapshotDone)
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(services, log, cfg)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery(), v1.CORSMiddleware(cfg), v1.RequestLogger(log))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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

	// Останавливаем воркер и делаем последний снимок
	cancel()
	<-snapshotDone

	log.Info("Server gracefully stopped")
}
