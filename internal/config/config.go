package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config хранит все основные настройки просмотрщика и локального
// сервера разработки
type Config struct {
	APIBaseURL    string
	OrdersLimit   int
	HTTPPort      string
	CacheCapacity int
}

// Load читает конфигурацию из .env файла
// и предоставляет значения по умолчанию
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, using environment variables")
	}

	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8081/api/v1"
	}

	ordersLimit := getEnvAsInt("ORDERS_LIMIT", 10)
	cacheCapacity := getEnvAsInt("CACHE_CAPACITY", 128)

	httpPort := os.Getenv("HTTP_PORT")
	if httpPort == "" {
		httpPort = "8081"
	}

	return &Config{
		APIBaseURL:    baseURL,
		OrdersLimit:   ordersLimit,
		HTTPPort:      ":" + httpPort,
		CacheCapacity: cacheCapacity,
	}
}

func getEnvAsInt(key string, fallback int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		slog.Warn(fmt.Sprintf("Invalid value for env var '%s', using default value.", key))
		return fallback
	}

	return value
}
