package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLoad проверяет значения по умолчанию и чтение переменных окружения
func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg := Load()

		require.Equal(t, "http://localhost:8081/api/v1", cfg.APIBaseURL)
		require.Equal(t, 10, cfg.OrdersLimit)
		require.Equal(t, ":8081", cfg.HTTPPort)
		require.Equal(t, 128, cfg.CacheCapacity)
	})

	t.Run("Environment overrides", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "http://example.com/api/v1")
		t.Setenv("ORDERS_LIMIT", "25")
		t.Setenv("HTTP_PORT", "9000")

		cfg := Load()

		require.Equal(t, "http://example.com/api/v1", cfg.APIBaseURL)
		require.Equal(t, 25, cfg.OrdersLimit)
		require.Equal(t, ":9000", cfg.HTTPPort)
	})

	t.Run("Invalid int falls back to default", func(t *testing.T) {
		t.Setenv("ORDERS_LIMIT", "not-a-number")

		cfg := Load()
		require.Equal(t, 10, cfg.OrdersLimit, "Некорректное значение должно заменяться значением по умолчанию")
	})
}
