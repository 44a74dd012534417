package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"go.uber.org/zap"

	"swimtrack/backend/config"
	"swimtrack/backend/internal/api/handler"
	"swimtrack/backend/internal/api/middleware"
	"swimtrack/backend/internal/api/router"
	"swimtrack/backend/internal/repository"
	"swimtrack/backend/internal/service"
	"swimtrack/backend/pkg/database"
	applogger "swimtrack/backend/pkg/logger"
	"swimtrack/backend/pkg/redis"
	"swimtrack/backend/pkg/tracing"
	"swimtrack/backend/pkg/validation"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (default ./config/config.yaml or ./config.yaml)")
	flag.Parse()

	// 1. configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// 2. logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting swimtrack",
		zap.Int("port", cfg.Server.Port),
		zap.String("base_path", cfg.Server.BasePath),
		zap.String("timezone", cfg.App.Timezone),
	)

	// 3. tracing
	shutdownTracing, err := tracing.Init(context.Background(), &cfg.Tracing, logger)
	if err != nil {
		logger.Fatal("init tracing failed", zap.Error(err))
	}

	// 4. database + schema bootstrap
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("connect database failed", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("get sql.DB failed", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("run migrations failed", zap.Error(err))
	}

	// 5. redis, only for the rate limiter; the server runs without it
	var limiter middleware.RateLimiter
	var rdb *redis.Client
	if cfg.RateLimit.Enabled {
		rdb, err = redis.NewClient(&cfg.Redis, logger)
		if err != nil {
			logger.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
		} else {
			limiter = rdb
		}
	}

	// 6. binding rules
	if err := validation.Register(); err != nil {
		logger.Fatal("register validators failed", zap.Error(err))
	}

	// 7. Repository → Service → Handler
	loc, err := cfg.App.Location()
	if err != nil {
		logger.Fatal("load app timezone failed", zap.Error(err))
	}
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, time.Now, loc, logger)
	h := handler.NewHandler(svc, logger)

	engine := router.Setup(cfg, h, limiter, logger)

	// 8. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	if err := shutdownTracing(ctx); err != nil {
		logger.Error("tracing shutdown failed", zap.Error(err))
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("close database failed", zap.Error(err))
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			logger.Error("close redis failed", zap.Error(err))
		}
	}

	logger.Info("server stopped")
}
