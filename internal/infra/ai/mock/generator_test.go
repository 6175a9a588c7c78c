package mock_test

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/ideaforge/internal/application"
	"github.com/bryanwahyu/ideaforge/internal/domain/analysis"
	"github.com/bryanwahyu/ideaforge/internal/infra/ai/mock"
)

var fixed = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newGen(seed int64) *mock.Generator {
	return mock.NewGenerator(rand.New(rand.NewSource(seed)), application.ClockFunc(func() time.Time { return fixed }))
}

func TestGenerateBounds(t *testing.T) {
	g := newGen(1)
	allRisks := analysis.RiskCatalog(analysis.MaxRisks)
	allGaps := analysis.GapCatalog(analysis.MaxGaps)

	seenScores := map[int]bool{}
	seenRisk := map[int]bool{}
	seenRec := map[analysis.Recommendation]bool{}
	for i := 0; i < 2000; i++ {
		a := g.Generate("idea-1")

		require.GreaterOrEqual(t, a.FeasibilityScore, 65)
		require.LessOrEqual(t, a.FeasibilityScore, 94)
		require.GreaterOrEqual(t, a.ResearchMaturity, 50)
		require.LessOrEqual(t, a.ResearchMaturity, 89)

		require.GreaterOrEqual(t, len(a.Risks), 1)
		require.LessOrEqual(t, len(a.Risks), 3)
		require.Equal(t, allRisks[:len(a.Risks)], a.Risks)

		require.GreaterOrEqual(t, len(a.Gaps), 1)
		require.LessOrEqual(t, len(a.Gaps), 3)
		require.Equal(t, allGaps[:len(a.Gaps)], a.Gaps)

		require.Contains(t, analysis.Readiness, a.MarketReadiness)
		require.Contains(t, analysis.Recommendations, a.Recommendation)

		seenScores[a.FeasibilityScore] = true
		seenRisk[len(a.Risks)] = true
		seenRec[a.Recommendation] = true
	}
	// the whole range is reachable
	require.True(t, seenScores[65])
	require.True(t, seenScores[94])
	require.Len(t, seenRisk, 3)
	require.Len(t, seenRec, 3)
}

func TestGenerateStampsIdentity(t *testing.T) {
	a := newGen(7).Generate("1729000000000")
	require.Equal(t, analysis.AnalysisID("analysis-1729000000000"), a.ID)
	require.Equal(t, "1729000000000", a.IdeaID)
	require.Equal(t, analysis.Summary, a.Summary)
	require.Equal(t, fixed, a.CreatedAt)
}

func TestGenerateSeededIsReproducible(t *testing.T) {
	a := newGen(42).Generate("x")
	b := newGen(42).Generate("x")
	require.Equal(t, a, b)
}

func TestAnalyze(t *testing.T) {
	g := newGen(3)
	a, err := g.Analyze(context.Background(), analysis.Request{IdeaID: "abc", Description: "d", Domain: "AI"})
	require.NoError(t, err)
	require.Equal(t, "abc", a.IdeaID)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = g.Analyze(ctx, analysis.Request{IdeaID: "abc"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerateConcurrent(t *testing.T) {
	g := mock.NewGenerator(nil, nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				a := g.Generate("c")
				if a.FeasibilityScore < 65 || a.FeasibilityScore > 94 {
					t.Errorf("score out of range: %d", a.FeasibilityScore)
				}
			}
		}()
	}
	wg.Wait()
}
