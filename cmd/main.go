package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/seewa-ng/helios/internal/config"
	"github.com/seewa-ng/helios/internal/irradiance"
	"github.com/seewa-ng/helios/internal/metrics"
	"github.com/seewa-ng/helios/internal/repository"
	"github.com/seewa-ng/helios/internal/server"
	"github.com/seewa-ng/helios/internal/service"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	// Create a context that will be canceled when an interrupt signal is received.
	// This allows for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load application configuration.
	cfg := config.MustLoad()

	// Set up the logger based on the environment.
	logger := setupLogger(cfg.Env)

	// Create a separate registry for application metrics.
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	// Persistence is optional: without a configured database the
	// service answers estimations but keeps no history.
	var dtb *pgxpool.Pool
	var repo repository.Interface
	if cfg.Database.Host != "" {
		pool, err := repository.NewDatabase(
			ctx, cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name,
		)
		if err != nil {
			log.Fatalf("Failed to connect to DB: %v", err)
		}
		dtb = pool
		defer dtb.Close()
		repo = repository.NewRepository(pool, logger)
	} else {
		logger.WarnContext(ctx, "No database configured, estimate history disabled")
	}

	// Build the irradiance resolver chain: a time-bounded remote
	// primary, then the deterministic city-table fallback.
	resolverChain := irradiance.NewChain(
		logger,
		irradiance.NewNASAPowerResolver(cfg.RemoteTimeout, cfg.RemoteRateLimit, logger),
		irradiance.NewCatalogResolver(logger),
	)

	estimator := service.NewEstimationService(logger, resolverChain, repo, appMetrics, time.Now)

	srv := server.New(logger, estimator, repo, pinger(dtb))
	router := chi.NewRouter()
	router.Mount("/", srv.Routes())
	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.", "port", cfg.Port)

	readTimeout := 5
	writeTimeout := 15
	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(readTimeout) * time.Second,
		WriteTimeout: time.Duration(writeTimeout) * time.Second,
	}

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "API server failed", "error", err)
			stop()
		}
	}()

	// Wait for the context to be canceled (e.g., by Ctrl+C).
	<-ctx.Done()

	logger.InfoContext(ctx, "Shutdown signal received. Stopping application...")

	shutdownTimeout := 10
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownTimeout)*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down API server gracefully", "error", err)
	}

	logger.InfoContext(ctx, "Application stopped gracefully.")
}

// pinger adapts the optional pool to the health probe without handing
// the handlers a typed-nil interface.
func pinger(pool *pgxpool.Pool) server.Pinger {
	if pool == nil {
		return nil
	}
	return pool
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var logger *slog.Logger

	switch env {
	case envLocal:
		logger = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case envDev:
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case envProd:
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelWarn,
			}),
		)
	default:
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelError,
			}),
		)

		logger.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return logger
}
