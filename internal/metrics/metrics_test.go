package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc/printshop-dashboard/internal/rollup"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware(t *testing.T) {
	m := New(prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/api/orders/{orderID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, path := range []string{"/api/orders/1", "/api/orders/2", "/health", "/missing"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(m.Requests.WithLabelValues(http.MethodGet, "/api/orders/{orderID}", "404")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Requests.WithLabelValues(http.MethodGet, "/health", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Requests.WithLabelValues(http.MethodGet, unmatchedRoute, "404")))
	assert.Equal(t, 3, testutil.CollectAndCount(m.Duration))
}

func TestObserveRollupError(t *testing.T) {
	m := New(prometheus.NewRegistry())

	vErr := &rollup.ValidationError{Field: "discountRatePct", Reason: "must be between 0 and 100"}
	m.ObserveRollupError(vErr)
	m.ObserveRollupError(fmt.Errorf("order service: %w", vErr))
	m.ObserveRollupError(errors.New("boom"))

	assert.Equal(t, float64(2), testutil.ToFloat64(m.ValidationFailures.WithLabelValues("discountRatePct")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ValidationFailures))

	var nilMetrics *Metrics
	assert.NotPanics(t, func() { nilMetrics.ObserveRollupError(vErr) })
}

func TestObserveRollupError_LineIndexIsNotALabel(t *testing.T) {
	m := New(prometheus.NewRegistry())

	for i := 0; i < 500; i++ {
		m.ObserveRollupError(&rollup.ValidationError{Field: fmt.Sprintf("feeLines[%d].kind", i), Reason: "unknown kind"})
		m.ObserveRollupError(&rollup.ValidationError{Field: fmt.Sprintf("bonusLines[%d].amountUsd", i), Reason: "must not be negative"})
	}

	assert.Equal(t, 2, testutil.CollectAndCount(m.ValidationFailures))
	assert.Equal(t, float64(500), testutil.ToFloat64(m.ValidationFailures.WithLabelValues("feeLines[].kind")))
	assert.Equal(t, float64(500), testutil.ToFloat64(m.ValidationFailures.WithLabelValues("bonusLines[].amountUsd")))
}

func TestFieldLabel(t *testing.T) {
	tests := []struct {
		field string
		want  string
	}{
		{"itemTotalUsd", "itemTotalUsd"},
		{"feeLines[0].exchangeRateOverride", "feeLines[].exchangeRateOverride"},
		{"bonusLines[123456].kind", "bonusLines[].kind"},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			assert.Equal(t, tt.want, FieldLabel(tt.field))
		})
	}
}
