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

	"github.com/joho/godotenv"

	"movie_backend/internal/app/config"
	"movie_backend/internal/app/di"
	"movie_backend/internal/app/router"
	platformhandler "movie_backend/internal/platform/http/handler"
	"movie_backend/internal/platform/logger"
	"movie_backend/internal/platform/metrics"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; real environment variables win.
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	configPath := config.Path()
	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("failed to load config", "path", configPath, "error", err)
		os.Exit(1)
	}

	log := logger.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(log)

	m := metrics.New()
	graphqlH, err := di.NewGraphQLHandler(cfg, m)
	if err != nil {
		slog.Error("failed to build graphql schema", "error", err)
		os.Exit(1)
	}
	healthH := platformhandler.NewHealthHandler(time.Now())

	engine := router.NewRouter(cfg, log, graphqlH, healthH, m)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr, "graphql", "/graphql")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	slog.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}
}
