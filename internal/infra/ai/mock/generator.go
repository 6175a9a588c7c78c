package mock

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/bryanwahyu/ideaforge/internal/application"
	"github.com/bryanwahyu/ideaforge/internal/domain/analysis"
)

// Generator produces synthetic feasibility reports from a pseudo-random
// source and the fixed risk and gap catalogs. It is safe for concurrent use.
type Generator struct {
	mu    sync.Mutex
	rng   *rand.Rand
	clock application.Clock
}

// NewGenerator builds a generator. A nil rng gets a time-seeded source and a
// nil clock falls back to the system clock.
func NewGenerator(rng *rand.Rand, clock application.Clock) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if clock == nil {
		clock = application.SystemClock{}
	}
	return &Generator{rng: rng, clock: clock}
}

// Generate returns a new report for the idea. Risks and gaps are always a
// prefix of their catalogs, never a random sample.
func (g *Generator) Generate(ideaID string) *analysis.Analysis {
	g.mu.Lock()
	score := 65 + g.rng.Intn(30)
	readiness := analysis.Readiness[g.rng.Intn(len(analysis.Readiness))]
	maturity := 50 + g.rng.Intn(40)
	riskCount := 1 + g.rng.Intn(3)
	gapCount := 1 + g.rng.Intn(3)
	rec := analysis.Recommendations[g.rng.Intn(len(analysis.Recommendations))]
	g.mu.Unlock()

	return &analysis.Analysis{
		ID:               analysis.IDFor(ideaID),
		IdeaID:           ideaID,
		FeasibilityScore: score,
		MarketReadiness:  readiness,
		ResearchMaturity: maturity,
		Risks:            analysis.RiskCatalog(riskCount),
		Gaps:             analysis.GapCatalog(gapCount),
		Recommendation:   rec,
		Summary:          analysis.Summary,
		CreatedAt:        g.clock.Now(),
	}
}

// Analyze implements analysis.Provider. It never fails unless ctx is already done.
func (g *Generator) Analyze(ctx context.Context, req analysis.Request) (*analysis.Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return g.Generate(req.IdeaID), nil
}
