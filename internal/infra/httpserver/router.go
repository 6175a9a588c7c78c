package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	appideas "github.com/bryanwahyu/ideaforge/internal/application/ideas"
	"github.com/bryanwahyu/ideaforge/internal/domain/analysis"
	domain "github.com/bryanwahyu/ideaforge/internal/domain/ideas"
	"github.com/bryanwahyu/ideaforge/internal/middleware"
)

// Options wires the router's collaborators
type Options struct {
	Log            *zap.Logger
	APIKeys        map[string]string
	Limiter        *middleware.RateLimiter
	Checkers       map[string]middleware.HealthChecker
	AllowedOrigins []string
	// SubmitTimeout bounds one submission including the artificial delay; zero means no bound.
	SubmitTimeout time.Duration
}

type Router struct {
	ideas         *appideas.Service
	log           *zap.Logger
	submitTimeout time.Duration
}

func NewRouter(ideasSvc *appideas.Service, opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	r := &Router{ideas: ideasSvc, log: log, submitTimeout: opts.SubmitTimeout}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	mux := chi.NewRouter()
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(middleware.Logging(log))
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	mux.Get("/health", middleware.LivenessHandler)
	mux.Get("/healthz", middleware.HealthHandler(opts.Checkers))
	mux.Get("/ready", middleware.ReadinessHandler(opts.Checkers))
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Route("/v1", func(rt chi.Router) {
		rt.Use(middleware.APIKeyAuth(opts.APIKeys))

		rt.Get("/me", r.wrap(r.handleMe))
		rt.Get("/dashboard", r.wrap(r.handleDashboard))
		rt.Get("/reports", r.wrap(r.handleReports))
		rt.Get("/ideas", r.wrap(r.handleList))
		rt.Get("/ideas/{id}", r.wrap(r.handleGet))
		rt.Get("/ideas/{id}/report", r.wrap(r.handleReport))

		submit := r.wrap(r.handleSubmit)
		if opts.Limiter != nil {
			rt.With(middleware.RateLimit(opts.Limiter)).Post("/ideas", submit)
		} else {
			rt.Post("/ideas", submit)
		}
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// badRequest marks errors raised by request decoding/validation
type badRequest struct{ msg string }

func (e badRequest) Error() string { return e.msg }

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			status := statusFor(err)
			msg := err.Error()
			if status == http.StatusInternalServerError {
				r.log.Error("request failed", zap.String("path", req.URL.Path), zap.Error(err))
				msg = "internal error"
			}
			r.writeJSON(w, status, map[string]string{"error": msg})
		}
	}
}

func statusFor(err error) int {
	var br badRequest
	switch {
	case errors.As(err, &br), errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, analysis.ErrQuotaExceeded):
		return http.StatusTooManyRequests
	case errors.Is(err, analysis.ErrAnalysisUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrPersistenceFailure), errors.Is(err, domain.ErrPersistenceUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		// client went away; status is mostly for the access log
		return 499
	default:
		return http.StatusInternalServerError
	}
}

// writeJSON owns the response once called; an encode failure can only be logged
// because the status line is already sent.
func (r *Router) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		r.log.Warn("encode response", zap.Int("status", status), zap.Error(err))
	}
}

// notPersistedWarning is set on a submission accepted while the repository
// cannot write to its store.
const notPersistedWarning = `199 - "idea kept in memory only, not persisted"`

// POST /v1/ideas
// Body: {"description": "...", "domain": "FinTech"}
func (r *Router) handleSubmit(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Description string `json:"description"`
		Domain      string `json:"domain"`
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, req.Body, 64<<10)).Decode(&body); err != nil {
		return badRequest{msg: "invalid JSON body: " + err.Error()}
	}
	if err := middleware.ValidateDescription(body.Description); err != nil {
		return badRequest{msg: err.Error()}
	}
	if err := middleware.ValidateDomain(body.Domain); err != nil {
		return badRequest{msg: err.Error()}
	}

	ctx := req.Context()
	if r.submitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.submitTimeout)
		defer cancel()
	}

	middleware.IncrementAnalysesRunning()
	idea, err := r.ideas.Submit(ctx, appideas.SubmitCommand{
		OwnerID:     middleware.GetOwnerFromContext(req.Context()),
		Description: body.Description,
		Domain:      domain.Domain(body.Domain),
	})
	middleware.DecrementAnalysesRunning()
	if err != nil {
		middleware.IncrementIdeasFailed()
		return err
	}
	middleware.IncrementIdeasSubmitted()

	if r.ideas.Repo.Degraded() {
		w.Header().Set("Warning", notPersistedWarning)
	}
	r.writeJSON(w, http.StatusCreated, idea)
	return nil
}

// GET /v1/ideas
func (r *Router) handleList(w http.ResponseWriter, req *http.Request) error {
	owner := middleware.GetOwnerFromContext(req.Context())
	r.writeJSON(w, http.StatusOK, r.ideas.List(owner))
	return nil
}

// GET /v1/ideas/{id}
func (r *Router) handleGet(w http.ResponseWriter, req *http.Request) error {
	idea, err := r.lookup(req)
	if err != nil {
		return err
	}
	r.writeJSON(w, http.StatusOK, idea)
	return nil
}

// reportView is what the analysis result page renders
type reportView struct {
	Idea      *domain.Idea        `json:"idea"`
	Analysis  *analysis.Analysis  `json:"analysis"`
	ScoreBand domain.ScoreBand    `json:"scoreBand"`
	RiskCount int                 `json:"riskCount"`
	GapCount  int                 `json:"gapCount"`
	Radar     []domain.RadarPoint `json:"radar"`
	RiskBars  []domain.RiskBar    `json:"riskBars"`
}

// GET /v1/ideas/{id}/report
func (r *Router) handleReport(w http.ResponseWriter, req *http.Request) error {
	idea, err := r.lookup(req)
	if err != nil {
		return err
	}
	if !idea.Analyzed() {
		return domain.ErrNotFound
	}
	a := idea.Analysis
	r.writeJSON(w, http.StatusOK, reportView{
		Idea:      idea,
		Analysis:  a,
		ScoreBand: domain.BandFor(a.FeasibilityScore),
		RiskCount: len(a.Risks),
		GapCount:  len(a.Gaps),
		Radar:     domain.MarketRadar(),
		RiskBars:  domain.RiskDistribution(),
	})
	return nil
}

// GET /v1/reports
func (r *Router) handleReports(w http.ResponseWriter, req *http.Request) error {
	owner := middleware.GetOwnerFromContext(req.Context())
	r.writeJSON(w, http.StatusOK, r.ideas.Reports(owner))
	return nil
}

// GET /v1/dashboard
func (r *Router) handleDashboard(w http.ResponseWriter, req *http.Request) error {
	owner := middleware.GetOwnerFromContext(req.Context())
	r.writeJSON(w, http.StatusOK, r.ideas.Dashboard(owner))
	return nil
}

// GET /v1/me
func (r *Router) handleMe(w http.ResponseWriter, req *http.Request) error {
	r.writeJSON(w, http.StatusOK, map[string]string{
		"id": middleware.GetOwnerFromContext(req.Context()),
	})
	return nil
}

func (r *Router) lookup(req *http.Request) (*domain.Idea, error) {
	id := chi.URLParam(req, "id")
	if err := middleware.ValidateIdeaID(id); err != nil {
		return nil, badRequest{msg: err.Error()}
	}
	return r.ideas.Get(middleware.GetOwnerFromContext(req.Context()), domain.IdeaID(id))
}
