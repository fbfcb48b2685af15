package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var httpRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "gestion_http_requests_total",
		Help: "Peticiones HTTP por método, ruta y estado.",
	},
	[]string{"method", "route", "status"},
)

// MetricsMiddleware cuenta cada petición con método, ruta y estado.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		route := c.Route().Path
		httpRequests.WithLabelValues(
			c.Method(), route, strconv.Itoa(c.Response().StatusCode()),
		).Inc()
		return err
	}
}

// MetricsServer expone /metrics en un listener propio, separado de la API.
type MetricsServer struct {
	srv *http.Server
}

// NewMetricsServer construye el listener interno de Prometheus.
func NewMetricsServer(addr string) *MetricsServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &MetricsServer{srv: &http.Server{Addr: addr, Handler: mux}}
}

// Start bloquea sirviendo /metrics.
func (s *MetricsServer) Start() error {
	return s.srv.ListenAndServe()
}

// Shutdown apaga el listener.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
