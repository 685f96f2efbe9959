package main

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alimgiray/menuhub/internal/events"
	"github.com/alimgiray/menuhub/internal/handlers"
	"github.com/alimgiray/menuhub/internal/metrics"
	"github.com/alimgiray/menuhub/internal/middleware"
	"github.com/alimgiray/menuhub/internal/repositories"
	"github.com/alimgiray/menuhub/internal/services"
	"github.com/alimgiray/menuhub/internal/workers"
	"github.com/alimgiray/menuhub/migrations"
	"github.com/alimgiray/menuhub/pkg/config"
	"github.com/alimgiray/menuhub/pkg/database"
	"github.com/alimgiray/menuhub/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	cfg := config.AppConfig

	logger.Init(cfg.Log.Level)
	gin.SetMode(cfg.Server.Mode)

	// Initialize database
	if err := database.Init(cfg.Database.Path, migrationScripts(cfg.Database)); err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	redisClient := newRedisClient(cfg.Redis)
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Initialize dependencies
	merchantRepo := repositories.NewMerchantRepository(database.DB)
	openingHourRepo := repositories.NewOpeningHourRepository(database.DB)
	modeScheduleRepo := repositories.NewModeScheduleRepository(database.DB)
	specialHourRepo := repositories.NewSpecialHourRepository(database.DB)
	userRepo := repositories.NewUserRepository(database.DB)

	merchantService := services.NewMerchantService(merchantRepo)
	openingHourService := services.NewOpeningHourService(openingHourRepo, merchantRepo)
	modeScheduleService := services.NewModeScheduleService(modeScheduleRepo, merchantRepo)
	specialHourService := services.NewSpecialHourService(specialHourRepo, merchantRepo)
	storeStatusService := services.NewStoreStatusService(merchantRepo, openingHourRepo, modeScheduleRepo, specialHourRepo)
	exportService := services.NewScheduleExportService(merchantRepo, openingHourRepo, modeScheduleRepo, specialHourRepo)
	userService := services.NewUserService(userRepo, cfg.OAuth.SuperAdminEmails)
	oauthService := services.NewOAuthService(cfg.OAuth)

	// Initialize worker manager
	workerManager := workers.NewWorkerManager(snapshotWorkers(cfg, merchantRepo, storeStatusService, redisClient)...)

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(), middleware.SessionMiddleware())

	if cfg.Metrics.Enabled {
		metrics.Register()
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	handlers.SetupRoutes(router, handlers.Handlers{
		Status:   handlers.NewStatusHandler(storeStatusService),
		Auth:     handlers.NewAuthHandler(userService, oauthService),
		Merchant: handlers.NewMerchantHandler(merchantService),
		Schedule: handlers.NewScheduleHandler(openingHourService, modeScheduleService, specialHourService, exportService),
		Admin:    handlers.NewAdminHandler(merchantService, workerManager),
		Health:   handlers.NewHealthHandler(database.DB, redisClient),
		NotFound: handlers.NewNotFoundHandler(),
	}, handlers.RateLimit{PerSecond: cfg.RateLimit.PerSecond, Burst: cfg.RateLimit.Burst})

	// Start workers
	if err := workerManager.StartAll(); err != nil {
		logger.Fatalf("Failed to start workers: %v", err)
	}

	// Setup server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Infof("Server starting on :%s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}
	_ = workerManager.StopAll()

	logger.Info("Server stopped")
}

// migrationScripts returns the embedded schema unless MIGRATIONS_DIR points elsewhere
func migrationScripts(cfg config.DatabaseConfig) fs.FS {
	if cfg.MigrationsDir != "" {
		return os.DirFS(cfg.MigrationsDir)
	}
	return migrations.FS
}

func newRedisClient(cfg config.RedisConfig) *redis.Client {
	if !cfg.Enabled() {
		logger.Info("Redis not configured, status events and sweep locking disabled")
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func snapshotWorkers(cfg *config.Config, merchantRepo *repositories.MerchantRepository, statusService *services.StoreStatusService, redisClient *redis.Client) []workers.Worker {
	var (
		publisher events.Publisher = events.NopPublisher{}
		lock      workers.SweepLock
	)
	if redisClient != nil {
		publisher = events.NewRedisPublisher(redisClient)
		lock = workers.NewRedisSweepLock(redisClient)
	}

	interval := time.Duration(cfg.Snapshot.IntervalSeconds) * time.Second
	list := make([]workers.Worker, 0, cfg.Snapshot.Workers)
	for i := 0; i < cfg.Snapshot.Workers; i++ {
		list = append(list, workers.NewStatusSnapshotWorker(
			fmt.Sprintf("status-snapshot-%d", i+1), merchantRepo, statusService, publisher, lock, interval,
		))
	}
	return list
}
