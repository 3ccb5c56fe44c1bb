// Package server boots the HTTP API: config, datastores, background
// workers, middleware stack, routes, and graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/homegrown/app/jobs"
	"github.com/shashiranjanraj/homegrown/app/routes"
	"github.com/shashiranjanraj/homegrown/config"
	"github.com/shashiranjanraj/homegrown/pkg/cache"
	"github.com/shashiranjanraj/homegrown/pkg/database"
	"github.com/shashiranjanraj/homegrown/pkg/logger"
	"github.com/shashiranjanraj/homegrown/pkg/media"
	"github.com/shashiranjanraj/homegrown/pkg/metrics"
	"github.com/shashiranjanraj/homegrown/pkg/middleware"
	"github.com/shashiranjanraj/homegrown/pkg/queue"
	"github.com/shashiranjanraj/homegrown/pkg/reqid"
	"github.com/shashiranjanraj/homegrown/pkg/response"
	"github.com/shashiranjanraj/homegrown/pkg/router"
	"github.com/shashiranjanraj/homegrown/pkg/session"
)

const queueWorkers = 4

// Start runs the server until SIGINT/SIGTERM, then drains in-flight
// requests before returning.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := database.Connect(ctx); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	defer func() {
		if err := database.Disconnect(context.Background()); err != nil {
			logger.Warn("server: mongo disconnect failed", "error", err)
		}
	}()

	// Redis powers the cache, the cart store, and the queue driver. The
	// server still runs without it, with in-memory fallbacks.
	if err := cache.Connect(); err != nil {
		logger.Warn("server: redis unavailable, using in-memory fallbacks", "error", err)
	} else {
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))
	}

	if err := media.Connect(); err != nil {
		return fmt.Errorf("server: %w", err)
	}

	queue.UseDB(database.DB())
	jobs.Register()
	queue.StartWorkers(ctx, queueWorkers)

	r := router.New()
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(session.Middleware(session.DefaultOptions()))
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(300, time.Minute))

	r.Get("/health", "health", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, map[string]string{"status": "ok"})
	})
	r.Get("/metrics", "metrics", metrics.Handler())

	routes.RegisterAPI(r)

	srv := &http.Server{
		Addr:         ":" + config.AppPort(),
		Handler:      r.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
