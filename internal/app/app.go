package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/storyreader-backend/internal/adapter/postgres"
	"github.com/heartmarshall/storyreader-backend/internal/adapter/postgres/story"
	"github.com/heartmarshall/storyreader-backend/internal/config"
	"github.com/heartmarshall/storyreader-backend/internal/service/reading"
	"github.com/heartmarshall/storyreader-backend/internal/transport/middleware"
	"github.com/heartmarshall/storyreader-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the story catalog, and serves the reading API until ctx is cancelled, then
// drains in-flight requests within the configured shutdown timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	svc := reading.NewService(logger, story.New(pool), cfg.Reading.Settings())

	handler := rest.NewRouter(rest.RouterDeps{
		Reading:       rest.NewReadingHandler(svc, logger),
		Health:        rest.NewHealthHandler(pool, Version),
		RateLimiter:   limiter,
		TextPerMinute: cfg.RateLimit.TextPerMinute,
		CORS:          cfg.CORS,
		Logger:        logger,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}
