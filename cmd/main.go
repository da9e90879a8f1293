package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"order_viewer/internal/app"
	"order_viewer/internal/config"
	"order_viewer/internal/logger"
)

func main() {
	// 1. Инициализация логгера: логи в stderr, чтобы не мешались
	// с выводом просмотрщика
	slogLogger := logger.NewSlogLogger(os.Stderr)
	slog.SetDefault(slogLogger)

	slog.Info("Starting order viewer...")

	// 2. Загрузка конфигурации
	cfg := config.Load()

	// 3. Создание и запуск приложения
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.New(cfg, os.Stdin, os.Stdout)
	application.Run(ctx)
}
