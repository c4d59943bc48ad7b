package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	httpadapter "brand-lift/internal/adapter/http"
	"brand-lift/internal/adapter/memory"
	"brand-lift/internal/adapter/postgres"
	"brand-lift/internal/adapter/usecase"
	"brand-lift/internal/config"
	"brand-lift/internal/core/port"
	"brand-lift/internal/db"
)

// main loads configuration, picks the channel table source (PostgreSQL,
// YAML file or built-in defaults), then serves the simulation API until a
// termination signal arrives.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))

	model, err := cfg.Model.LiftModel()
	if err != nil {
		logger.Error("invalid model config", slog.Any("error", err))
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var repo port.ChannelRepository
	switch {
	case cfg.Psql.Enabled:
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
			} else {
				logger.Info("migrations applied successfully")
			}
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()
		if cfg.Psql.Seed {
			if err = db.SeedChannels(ctx, pool, memory.DefaultChannels()); err != nil {
				logger.Error("seed error", slog.Any("error", err))
				return
			}
			logger.Info("channel profiles seeded")
		}
		repo = postgres.NewChannelRepository(pool)
		logger.Info("channel table source", slog.String("source", "postgres"))
	case cfg.Channels.File != "":
		fileRepo, err := memory.LoadFile(cfg.Channels.File)
		if err != nil {
			logger.Error("channel file error", slog.Any("error", err))
			return
		}
		repo = fileRepo
		logger.Info("channel table source", slog.String("source", "file"), slog.String("path", cfg.Channels.File))
	default:
		repo = memory.NewChannelRepository(memory.DefaultChannels())
		logger.Info("channel table source", slog.String("source", "defaults"))
	}

	svc := usecase.NewSimulationUseCase(repo, model, logger)

	var limiter *rate.Limiter
	if cfg.HTTP.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.HTTP.RateLimit), cfg.HTTP.RateBurst)
	}
	handler := httpadapter.NewHandler(svc, logger, limiter, cfg.HTTP.MaxBodyBytes)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
