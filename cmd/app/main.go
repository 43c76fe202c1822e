package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"wheelspin-backend/internal/common/cache"
	"wheelspin-backend/internal/common/config"
	"wheelspin-backend/internal/common/logger"
	wheelRepo "wheelspin-backend/internal/features/wheel/repository/redis"
	wheelService "wheelspin-backend/internal/features/wheel/service"
	"wheelspin-backend/internal/platform/redis"
	"wheelspin-backend/internal/server"
	"wheelspin-backend/internal/utils/random"
)

// @title           WheelSpin API
// @version         1.0
// @description     Weighted prize wheel: saved wheels, server-side draws and spin log.

// @host      localhost:8080
// @BasePath  /api/v1

// @tag.name wheelspin
// @tag.description Wheel configuration and draws

func main() {
	// Инициализируем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	logger.Init("wheelspin-backend", cfg.Debug)
	log := logger.Get()

	log.Info().
		Str("version", "1.0.0").
		Bool("debug", cfg.Debug).
		Msg("Starting WheelSpin Backend")

	// Инициализируем Redis
	redisClient, err := redis.CreateRedisClient(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisClient.Close()

	// Инициализируем кэш
	cacheService := cache.NewCacheService(redisClient)
	log.Info().Msg("Cache service initialized")

	wheelRepository := wheelRepo.NewRedisWheelRepository(redisClient)
	wheelSvc := wheelService.NewWheelService(
		wheelRepository,
		cacheService,
		random.NewSource(),
		wheelService.Options{
			SpinLogSize: cfg.Wheel.SpinLogSize,
			CacheTTL:    cfg.Wheel.CacheTTL,
		},
		log.With().Str("component", "wheel_service").Logger(),
	)

	log.Info().Msg("Services initialized")

	// Настраиваем Gin
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := server.NewRouter(cfg, wheelSvc, redisClient, log)

	// Создаем HTTP сервер
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Ждем сигнала для graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
