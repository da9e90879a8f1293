package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"order_viewer/internal/cache"
	"order_viewer/internal/generator"
	"order_viewer/internal/metrics"
	"order_viewer/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

const defaultListLimit = 10

// envelope — конверт `{success, data, error}`, одинаковый для всех эндпоинтов
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Server реализует API сервиса заказов поверх кэша в памяти.
// Это локальный сервер разработки: с ним клиент можно гонять
// без настоящего бэкенда.
type Server struct {
	Router    *chi.Mux
	Cache     cache.OrderCache
	Metrics   *metrics.Metrics
	validator *validator.Validate
	generate  func() model.Order
}

// NewServer создает новый экземпляр сервера с зависимостями
func NewServer(c cache.OrderCache, m *metrics.Metrics) *Server {
	s := &Server{
		Router:    chi.NewRouter(),
		Cache:     c,
		Metrics:   m,
		validator: validator.New(),
		generate:  generator.RandomOrder,
	}
	s.Router.Use(middleware.Recoverer)
	s.Router.Use(s.metricsMiddleware)
	s.initRoutes()
	return s
}

func (s *Server) initRoutes() {
	s.Router.Route("/api/v1", func(r chi.Router) {
		r.Get("/orders/{orderUID}", s.handleGetOrder())
		r.Get("/orders", s.handleListOrders())
		r.Post("/orders/random", s.handleCreateRandomOrder())
		r.Get("/cache/stats", s.handleCacheStats())
		r.Get("/health", s.handleHealth())
	})
	s.Router.Handle("/metrics", metrics.Handler())
}

// metricsMiddleware добавляет метрики к ответам
func (s *Server) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.Metrics.HTTPServerReqs.WithLabelValues(strconv.Itoa(ww.Status()), r.Method).Inc()
	})
}

// handleGetOrder возвращает обработчик для получения заказа по UID
func (s *Server) handleGetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderUID := chi.URLParam(r, "orderUID")
		if strings.TrimSpace(orderUID) == "" {
			writeError(w, http.StatusBadRequest, "order_uid is required")
			return
		}

		order, found := s.Cache.Get(orderUID)
		if !found {
			slog.Debug("Cache miss", "order_uid", orderUID)
			s.Metrics.CacheMisses.Inc()
			writeError(w, http.StatusNotFound, "Order not found")
			return
		}

		slog.Debug("Cache hit", "order_uid", orderUID)
		s.Metrics.CacheHits.Inc()
		writeSuccess(w, order)
	}
}

// handleListOrders возвращает последние заказы, не более limit штук
func (s *Server) handleListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultListLimit
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 1000 {
				limit = parsed
			}
		}

		orders := s.Cache.Recent(limit)
		writeSuccess(w, map[string]any{
			"orders": orders,
			"count":  len(orders),
			"limit":  limit,
		})
	}
}

// handleCreateRandomOrder генерирует заказ, проверяет его валидатором
// и кладет в кэш
func (s *Server) handleCreateRandomOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order := s.generate()

		if err := s.validator.Struct(order); err != nil {
			s.Metrics.ValidationErrors.Inc()
			slog.Error("Generated order failed validation", "order_uid", order.OrderUID, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to generate a valid order")
			return
		}

		s.Cache.Set(order.OrderUID, order)
		s.Metrics.OrdersGenerated.Inc()
		slog.Info("Random order generated", "order_uid", order.OrderUID)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(envelope{Success: true, Data: order}); err != nil {
			slog.Error("Failed to encode response", "error", err)
		}
	}
}

// handleCacheStats возвращает статистику кэша
func (s *Server) handleCacheStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, map[string]int{
			"size":     s.Cache.Len(),
			"capacity": s.Cache.Capacity(),
		})
	}
}

// handleHealth возвращает состояние сервера
func (s *Server) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, map[string]any{
			"status": "ok",
			"cache": map[string]int{
				"size":     s.Cache.Len(),
				"capacity": s.Cache.Capacity(),
			},
		})
	}
}

func writeSuccess(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(envelope{Success: true, Data: data}); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Success: false, Error: message}); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
