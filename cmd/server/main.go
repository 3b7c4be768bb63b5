package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/shareit/shareit-backend/internal/app"
	"github.com/shareit/shareit-backend/internal/config"
	"github.com/shareit/shareit-backend/internal/db"
	"github.com/shareit/shareit-backend/internal/logging"
	"github.com/shareit/shareit-backend/internal/ratelimit"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	env := "dev"
	if cfg.IsProduction {
		env = config.PROD_STRING
	}
	logger, closer := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
		Env:    env,
	})
	defer closer.Close()

	// Connect DB
	var pool *pgxpool.Pool
	if cfg.StorageDriver == config.StoragePostgres {
		pool, err = db.NewPool(ctx, db.Options{DSN: cfg.DBDSN, MaxConns: cfg.DBMaxConns})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to db")
		}
		defer pool.Close()

		if cfg.DBAutoMigrate {
			if err := db.Migrate(ctx, pool); err != nil {
				logger.Fatal().Err(err).Msg("failed to apply schema")
			}
			logger.Info().Msg("schema applied")
		}
	} else {
		logger.Warn().Msg("using in-memory storage, data is lost on restart")
	}

	limiter := newLimiter(ctx, cfg, logger)

	container := app.NewContainer(app.Config{
		IsProduction: cfg.IsProduction,
		ProdOrigins:  cfg.ProdOrigins,
		Logger:       logger,
		DBPool:       pool,
		Limiter:      limiter,
	})

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           container.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Run server in separate goroutine
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Str("storage", cfg.StorageDriver).Msg("server running")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for Ctrl+C
	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	// Create a shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server exited gracefully")
}

// newLimiter returns nil when rate limiting is disabled.
func newLimiter(ctx context.Context, cfg *config.Config, logger zerolog.Logger) ratelimit.Limiter {
	if cfg.RateLimitRPS == 0 {
		return nil
	}

	if cfg.RateLimitBackend == config.RateLimitRedis {
		client := ratelimit.NewRedisClient(ratelimit.RedisOptions{
			Address:  cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := ratelimit.Ping(ctx, client); err != nil {
			logger.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable")
		}
		return ratelimit.NewRedisLimiter(client, cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	return ratelimit.NewMemoryLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
}
