package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"order_viewer/internal/model"

	"github.com/stretchr/testify/require"
)

// TestClient_SearchOrder проверяет разбор конвертов при поиске
func TestClient_SearchOrder(t *testing.T) {
	t.Run("Found order", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodGet, r.Method)
			require.Equal(t, "/api/v1/orders/abc", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data":    model.Order{OrderUID: "abc", TrackNumber: "T"},
			})
		}))
		defer srv.Close()

		client := NewClient(srv.URL+"/api/v1", srv.Client())
		env, err := client.SearchOrder(context.Background(), "abc")
		require.NoError(t, err)
		require.True(t, env.Success)
		require.NotNil(t, env.Data)
		require.Equal(t, "abc", env.Data.OrderUID)
	})

	t.Run("Not found still decodes the envelope", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "Order not found"})
		}))
		defer srv.Close()

		client := NewClient(srv.URL+"/api/v1", srv.Client())
		env, err := client.SearchOrder(context.Background(), "missing")
		require.NoError(t, err, "404 с конвертом в теле не является транспортной ошибкой")
		require.False(t, env.Success)
		require.Equal(t, "Order not found", env.Error)
		require.Nil(t, env.Data)
	})

	t.Run("UID is escaped in the path segment", func(t *testing.T) {
		var gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.EscapedPath()
			json.NewEncoder(w).Encode(map[string]any{"success": false})
		}))
		defer srv.Close()

		client := NewClient(srv.URL+"/api/v1", srv.Client())
		_, err := client.SearchOrder(context.Background(), "a b/c")
		require.NoError(t, err)
		require.Equal(t, "/api/v1/orders/a%20b%2Fc", gotPath, "UID должен кодироваться для сегмента пути")
	})

	t.Run("Network failure propagates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // адрес уже никем не слушается

		client := NewClient(srv.URL+"/api/v1", nil)
		_, err := client.SearchOrder(context.Background(), "abc")
		require.Error(t, err, "Отказ сети должен доходить до вызывающего")
	})
}

// TestClient_GetAllOrders проверяет передачу лимита
func TestClient_GetAllOrders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/orders", r.URL.Path)
		require.Equal(t, "25", r.URL.Query().Get("limit"))

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"orders": []model.Order{{OrderUID: "a1"}, {OrderUID: "b2"}},
				"count":  2,
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/api/v1", srv.Client())
	env, err := client.GetAllOrders(context.Background(), 25)
	require.NoError(t, err)
	require.True(t, env.Success)
	require.Equal(t, 2, env.Data.Count)
	require.Len(t, env.Data.Orders, 2)
}

// TestClient_GetCacheStats проверяет разбор статистики кэша
func TestClient_GetCacheStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/cache/stats", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]int{"size": 7, "capacity": 128},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/api/v1", srv.Client())
	env, err := client.GetCacheStats(context.Background())
	require.NoError(t, err)
	require.Equal(t, CacheStats{Size: 7, Capacity: 128}, *env.Data)
}

// TestClient_HealthCheck проверяет разбор состояния сервиса
func TestClient_HealthCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/health", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"status": "ok",
				"cache":  map[string]int{"size": 1, "capacity": 128},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/api/v1", srv.Client())
	env, err := client.HealthCheck(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ok", env.Data.Status)
	require.Equal(t, 128, env.Data.Cache.Capacity)
}

// TestClient_CreateRandomOrder проверяет различие транспортной ошибки
// и ошибки уровня конверта
func TestClient_CreateRandomOrder(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/v1/orders/random", r.URL.Path)
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))

			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data":    model.Order{OrderUID: "new123"},
			})
		}))
		defer srv.Close()

		client := NewClient(srv.URL+"/api/v1", srv.Client())
		env, err := client.CreateRandomOrder(context.Background())
		require.NoError(t, err)
		require.Equal(t, "new123", env.Data.OrderUID)
	})

	t.Run("HTTP 500 becomes StatusError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := NewClient(srv.URL+"/api/v1", srv.Client())
		_, err := client.CreateRandomOrder(context.Background())
		require.Error(t, err)

		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr), "Ошибка должна быть типизированной")
		require.Equal(t, http.StatusInternalServerError, statusErr.Code)
		require.Equal(t, "HTTP 500: Internal Server Error", statusErr.Error())
	})

	t.Run("Envelope failure is not a transport error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "generator down"})
		}))
		defer srv.Close()

		client := NewClient(srv.URL+"/api/v1", srv.Client())
		env, err := client.CreateRandomOrder(context.Background())
		require.NoError(t, err)
		require.False(t, env.Success)
		require.Equal(t, "generator down", env.Error)
	})
}
