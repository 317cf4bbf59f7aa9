// Package server owns the HTTP listener lifecycle: build the middleware
// stack and routes, serve, and drain connections on shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zephyrlabs/zephyr/app/routes"
	"github.com/zephyrlabs/zephyr/config"
	"github.com/zephyrlabs/zephyr/pkg/cache"
	"github.com/zephyrlabs/zephyr/pkg/database"
	"github.com/zephyrlabs/zephyr/pkg/logger"
	"github.com/zephyrlabs/zephyr/pkg/metrics"
	"github.com/zephyrlabs/zephyr/pkg/middleware"
	"github.com/zephyrlabs/zephyr/pkg/reqid"
	"github.com/zephyrlabs/zephyr/pkg/router"
)

const shutdownTimeout = 10 * time.Second

// Start boots config, storage, and the HTTP server, then blocks until
// SIGINT/SIGTERM and drains in-flight requests.
func Start() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if err := database.Connect(); err != nil {
		return err
	}

	// Redis is optional: the catalog cache degrades to a no-op without it.
	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, catalog cache disabled", "error", err)
	}

	// Optional MongoDB log sink.
	if sink := logger.AttachMongoSink(); sink != nil {
		defer sink.Close()
	}

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           BuildHandler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("zephyr listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}

	return nil
}

// BuildHandler assembles the middleware stack and routes. Exposed so tests
// can run the full stack against httptest.
func BuildHandler() http.Handler {
	r := router.New()

	// Outermost → innermost:
	//  1. Prometheus metrics — outermost for accurate total latency
	//  2. Recovery          — catches panics before they kill the goroutine
	//  3. Request ID        — inject unique ID before anything logs
	//  4. Logger            — logs request_id from context
	//  5. CORS
	//  6. Rate limiter
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))

	routes.RegisterAPI(r, database.DB)

	return r.Handler()
}
