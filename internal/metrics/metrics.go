package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics содержит все метрики локального сервера разработки
type Metrics struct {
	CacheHits        prometheus.Counter
	CacheMisses      prometheus.Counter
	OrdersGenerated  prometheus.Counter
	ValidationErrors prometheus.Counter
	HTTPServerReqs   *prometheus.CounterVec
}

// NewMetrics создает и регистрирует новые метрики
func NewMetrics() *Metrics {
	return &Metrics{
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "devserver_cache_hits_total",
			Help: "The total number of cache hits.",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "devserver_cache_misses_total",
			Help: "The total number of cache misses.",
		}),
		OrdersGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "devserver_orders_generated_total",
			Help: "The total number of random orders generated.",
		}),
		ValidationErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "devserver_validation_errors_total",
			Help: "The total number of generated orders that failed validation.",
		}),
		HTTPServerReqs: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "devserver_http_requests_total",
			Help: "The total number of HTTP requests.",
		}, []string{"code", "method"}),
	}
}

// Handler возвращает http.Handler для эндпоинта /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
