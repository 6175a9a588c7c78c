package middleware

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"
)

// Metrics holds process-wide request and submission counters.
type Metrics struct {
	requestsTotal    atomic.Uint64
	requestsInFlight atomic.Int64
	requestsFailed   atomic.Uint64
	rateLimited      atomic.Uint64
	ideasSubmitted   atomic.Uint64
	ideasFailed      atomic.Uint64
	analysesRunning  atomic.Int64
	startTime        time.Time
}

var globalMetrics = &Metrics{startTime: time.Now()}

// IncrementIdeasSubmitted counts a stored submission
func IncrementIdeasSubmitted() { globalMetrics.ideasSubmitted.Add(1) }

// IncrementIdeasFailed counts a submission that was not stored
func IncrementIdeasFailed() { globalMetrics.ideasFailed.Add(1) }

func IncrementAnalysesRunning() { globalMetrics.analysesRunning.Add(1) }

func DecrementAnalysesRunning() { globalMetrics.analysesRunning.Add(-1) }

type MemorySnapshot struct {
	AllocBytes uint64 `json:"alloc_bytes"`
	SysBytes   uint64 `json:"sys_bytes"`
	NumGC      uint32 `json:"num_gc"`
}

// Snapshot is the /metrics payload.
type Snapshot struct {
	RequestsTotal    uint64         `json:"requests_total"`
	RequestsInFlight int64          `json:"requests_in_flight"`
	RequestsFailed   uint64         `json:"requests_failed"`
	RateLimited      uint64         `json:"rate_limited"`
	IdeasSubmitted   uint64         `json:"ideas_submitted"`
	IdeasFailed      uint64         `json:"ideas_failed"`
	AnalysesRunning  int64          `json:"analyses_running"`
	UptimeSeconds    float64        `json:"uptime_seconds"`
	Goroutines       int            `json:"goroutines"`
	Memory           MemorySnapshot `json:"memory"`
}

func GetMetrics() Snapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return Snapshot{
		RequestsTotal:    globalMetrics.requestsTotal.Load(),
		RequestsInFlight: globalMetrics.requestsInFlight.Load(),
		RequestsFailed:   globalMetrics.requestsFailed.Load(),
		RateLimited:      globalMetrics.rateLimited.Load(),
		IdeasSubmitted:   globalMetrics.ideasSubmitted.Load(),
		IdeasFailed:      globalMetrics.ideasFailed.Load(),
		AnalysesRunning:  globalMetrics.analysesRunning.Load(),
		UptimeSeconds:    time.Since(globalMetrics.startTime).Seconds(),
		Goroutines:       runtime.NumGoroutine(),
		Memory: MemorySnapshot{
			AllocBytes: m.Alloc,
			SysBytes:   m.Sys,
			NumGC:      m.NumGC,
		},
	}
}

// MetricsMiddleware counts requests; 5xx responses count as failed.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		globalMetrics.requestsTotal.Add(1)
		globalMetrics.requestsInFlight.Add(1)
		defer globalMetrics.requestsInFlight.Add(-1)

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		if wrapped.statusCode >= http.StatusInternalServerError {
			globalMetrics.requestsFailed.Add(1)
		}
	})
}

func MetricsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(GetMetrics())
}
