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

	"order_viewer/internal/cache"
	"order_viewer/internal/config"
	"order_viewer/internal/logger"
	"order_viewer/internal/metrics"
	"order_viewer/internal/server"
)

// Локальный сервер разработки: реализует те же пять эндпоинтов, что и
// боевой сервис заказов, но хранит все в LRU-кэше в памяти. Заказы
// появляются только через POST /orders/random.
func main() {
	slogLogger := logger.NewSlogLogger(os.Stdout)
	slog.SetDefault(slogLogger)

	cfg := config.Load()

	orderCache := cache.NewLRUCache(cfg.CacheCapacity)
	appMetrics := metrics.NewMetrics()
	apiServer := server.NewServer(orderCache, appMetrics)

	srv := &http.Server{
		Addr:    cfg.HTTPPort,
		Handler: apiServer.Router,
	}

	go func() {
		slog.Info("Starting dev API server", "address", cfg.HTTPPort, "cache_capacity", cfg.CacheCapacity)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Failed to start dev API server", "error", err)
			os.Exit(1)
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)
	<-shutdownChan

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Dev API server shutdown error", "error", err)
	}
}
