package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetrics_CountsFailuresAndRejections(t *testing.T) {
	before := GetMetrics()

	limiter := NewRateLimiter(1, 0)
	h := MetricsMiddleware(RateLimit(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/v1/ideas", nil)
		req.RemoteAddr = "10.0.0.9:1234"
		h.ServeHTTP(httptest.NewRecorder(), req)
	}

	after := GetMetrics()
	require.Equal(t, before.RequestsTotal+2, after.RequestsTotal)
	require.Equal(t, before.RequestsFailed+1, after.RequestsFailed)
	require.Equal(t, before.RateLimited+1, after.RateLimited)
	require.Equal(t, before.RequestsInFlight, after.RequestsInFlight)
}

func TestMetricsHandler(t *testing.T) {
	IncrementIdeasSubmitted()

	rec := httptest.NewRecorder()
	MetricsHandler(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var snap Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	require.GreaterOrEqual(t, snap.IdeasSubmitted, uint64(1))
	require.Positive(t, snap.Goroutines)
}
