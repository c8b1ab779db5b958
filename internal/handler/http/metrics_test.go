package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, vec *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()
	c, err := vec.GetMetricWithLabelValues(labels...)
	if err != nil {
		t.Fatalf("get metric: %v", err)
	}
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	return m.GetCounter().GetValue()
}

func TestMetricsMiddlewareCountsRequests(t *testing.T) {
	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}))

	before := counterValue(t, httpRequestsTotal, http.MethodGet, "/api/feeds/:userId", "200")

	req := httptest.NewRequest(http.MethodGet, "/api/feeds/usr_42", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	after := counterValue(t, httpRequestsTotal, http.MethodGet, "/api/feeds/:userId", "200")
	if after != before+1 {
		t.Errorf("requests_total = %v, want %v", after, before+1)
	}
}

func TestMetricsMiddlewareNormalizesPath(t *testing.T) {
	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	before := counterValue(t, httpRequestsTotal, http.MethodGet, "/api/feeds/:userId", "200")

	for _, target := range []string{"/api/feeds/usr_1", "/api/feeds/usr_2", "/api/feeds/usr_3"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	after := counterValue(t, httpRequestsTotal, http.MethodGet, "/api/feeds/:userId", "200")
	if after != before+3 {
		t.Errorf("requests_total = %v, want %v (all user IDs share one label)", after, before+3)
	}
}

func TestMetricsMiddlewareRecordsErrorStatus(t *testing.T) {
	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	before := counterValue(t, httpRequestsTotal, http.MethodGet, "/api/profiles", "404")

	req := httptest.NewRequest(http.MethodGet, "/api/profiles", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	after := counterValue(t, httpRequestsTotal, http.MethodGet, "/api/profiles", "404")
	if after != before+1 {
		t.Errorf("requests_total = %v, want %v", after, before+1)
	}
}

func TestMetricsHandlerExposesMetrics(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	MetricsHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "http_requests_total") {
		t.Error("metrics output missing http_requests_total")
	}
}
