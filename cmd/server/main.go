package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"wealth_backend/internal/app/di"
	"wealth_backend/internal/app/router"
	"wealth_backend/internal/platform/db"
	"wealth_backend/internal/platform/env"
	jwtmw "wealth_backend/internal/platform/jwt"
	"wealth_backend/internal/platform/logging"
	"wealth_backend/internal/platform/messaging"
	"wealth_backend/internal/platform/ratelimit"
	infraredis "wealth_backend/internal/platform/redis"
	"wealth_backend/internal/platform/validation"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	logger := logging.New(logging.LoadConfigFromEnv(), os.Stdout)
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server terminated", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gin.SetMode(env.String("GIN_MODE", gin.ReleaseMode))
	validation.Init()

	// db
	dbCfg := db.LoadConfigFromEnv()
	gdb, err := db.Open(ctx, dbCfg)
	if err != nil {
		return err
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()
	logger.Info("database connected", "driver", dbCfg.Driver)

	// Redis
	var rdb *redisv9.Client
	if redisCfg := infraredis.LoadConfigFromEnv(); redisCfg.Enabled() {
		if tmp, err := infraredis.NewRedisClient(ctx, redisCfg); err != nil {
			logger.Warn("Redis unavailable. Running without cache and rate limiting.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					logger.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	// RabbitMQ
	var pub *messaging.RabbitPublisher
	if mqCfg := messaging.LoadConfigFromEnv(); mqCfg.Enabled() {
		if tmp, err := messaging.NewRabbitPublisher(mqCfg.URL, mqCfg.ContactQueue); err != nil {
			logger.Warn("RabbitMQ unavailable. Contact notifications are disabled.", "error", err)
		} else {
			pub = tmp
			defer pub.Close()
		}
	}

	engine, err := di.NewEngine(di.Deps{
		Logger:        logger,
		DB:            gdb,
		Redis:         rdb,
		Publisher:     pub,
		Router:        router.LoadConfigFromEnv(),
		JWT:           jwtmw.LoadConfigFromEnv(),
		RateLimit:     ratelimit.LoadConfigFromEnv(),
		GoalsCacheTTL: env.Duration("GOALS_CACHE_TTL", 5*time.Minute),
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + env.String("PORT", "8080"),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	// Graceful shutdown
	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server exited properly")
	return nil
}
