package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// HealthChecker is implemented by every store backend.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// HealthCheckFunc adapts a plain function to HealthChecker
type HealthCheckFunc func(ctx context.Context) error

func (f HealthCheckFunc) Check(ctx context.Context) error { return f(ctx) }

// RepositoryCheck reports unhealthy while the idea repository runs without
// persistence.
func RepositoryCheck(degraded func() bool) HealthCheckFunc {
	return func(context.Context) error {
		if degraded() {
			return errDegraded
		}
		return nil
	}
}

var errDegraded = errors.New("store unreadable, running in-memory only")

const checkTimeout = 5 * time.Second

type HealthStatus struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks"`
}

type CheckStatus struct {
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	LatencyMs int64  `json:"latencyMs"`
}

func runChecks(ctx context.Context, checkers map[string]HealthChecker) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	health := HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Checks:    make(map[string]CheckStatus, len(checkers)),
	}
	for name, checker := range checkers {
		start := time.Now()
		err := checker.Check(ctx)
		cs := CheckStatus{Status: "healthy", LatencyMs: time.Since(start).Milliseconds()}
		if err != nil {
			cs.Status = "unhealthy"
			cs.Message = err.Error()
			health.Status = "unhealthy"
		}
		health.Checks[name] = cs
	}
	return health
}

func writeHealth(w http.ResponseWriter, health HealthStatus) {
	code := http.StatusOK
	if health.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(health)
}

// HealthHandler runs every checker and reports each result.
func HealthHandler(checkers map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeHealth(w, runChecks(r.Context(), checkers))
	}
}

// ReadinessHandler answers 503 until every checker passes, without the
// per-check breakdown.
func ReadinessHandler(checkers map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		health := runChecks(r.Context(), checkers)
		health.Checks = nil
		writeHealth(w, health)
	}
}

func LivenessHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
