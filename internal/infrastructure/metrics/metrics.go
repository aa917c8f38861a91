package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contadores e histogramas HTTP de la API.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	mailFailures    *prometheus.CounterVec
}

// New registra las métricas en un registry propio del proceso.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "siges_http_requests_total",
			Help: "Total de requests HTTP por ruta, método y status.",
		}, []string{"method", "route", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "siges_http_request_duration_seconds",
			Help:    "Duración de las requests HTTP.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		mailFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "siges_mail_failures_total",
			Help: "Fallos de envío de correo por razón.",
		}, []string{"reason"}),
	}
}

// Middleware instrumenta cada request con contador y duración.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		if route == "" {
			route = c.Path()
		}
		status := c.Response().StatusCode()
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
		}
		m.requestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

// MailFailure registra un fallo de despacho de correo.
func (m *Metrics) MailFailure(reason string) {
	m.mailFailures.WithLabelValues(reason).Inc()
}
