// Package metrics собирает метрики Prometheus для HTTP и расчета итогов заказов.
package metrics

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/avc/printshop-dashboard/internal/rollup"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// Namespace префикс всех метрик сервиса
const Namespace = "dashboard"

const unmatchedRoute = "unmatched"

var lineIndex = regexp.MustCompile(`\[\d+\]`)

// Metrics набор коллекторов сервиса
type Metrics struct {
	Requests           *prometheus.CounterVec
	Duration           *prometheus.HistogramVec
	ValidationFailures *prometheus.CounterVec
}

// New создает и регистрирует коллекторы. При nil reg используется DefaultRegisterer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests handled by the server.",
		}, []string{"method", "route", "status"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ValidationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "rollup_validation_failures_total",
			Help:      "Order rollups rejected by validation, by offending field.",
		}, []string{"field"}),
	}

	reg.MustRegister(m.Requests, m.Duration, m.ValidationFailures)
	return m
}

// Middleware считает запросы и их длительность по шаблону маршрута chi
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.Requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.Duration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// ObserveRollupError учитывает ошибку валидации расчета. Прочие ошибки игнорируются.
func (m *Metrics) ObserveRollupError(err error) {
	if m == nil {
		return
	}
	var vErr *rollup.ValidationError
	if errors.As(err, &vErr) {
		m.ValidationFailures.WithLabelValues(FieldLabel(vErr.Field)).Inc()
	}
}

// FieldLabel убирает номер строки из имени поля: feeLines[3].kind -> feeLines[].kind
func FieldLabel(field string) string {
	return lineIndex.ReplaceAllString(field, "[]")
}
