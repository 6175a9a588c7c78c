package ideas_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/ideaforge/internal/domain/analysis"
	"github.com/bryanwahyu/ideaforge/internal/domain/ideas"
)

func sampleIdea(id string) *ideas.Idea {
	at := time.Date(2026, 3, 14, 9, 26, 53, 589000000, time.UTC)
	return &ideas.Idea{
		ID:          ideas.IdeaID(id),
		OwnerID:     "u1",
		Title:       "Soil sensors",
		Description: "Soil sensors",
		Domain:      ideas.DomainAgriTech,
		CreatedAt:   at,
		Analysis: &analysis.Analysis{
			ID:               analysis.IDFor(id),
			IdeaID:           id,
			FeasibilityScore: 80,
			MarketReadiness:  analysis.ReadinessReady,
			ResearchMaturity: 61,
			Risks:            analysis.RiskCatalog(2),
			Gaps:             analysis.GapCatalog(1),
			Recommendation:   analysis.RecommendProceed,
			Summary:          analysis.Summary,
			CreatedAt:        at,
		},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := []*ideas.Idea{sampleIdea("2"), sampleIdea("1")}

	data, err := ideas.EncodeList(in)
	require.NoError(t, err)

	out, err := ideas.DecodeList(data)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestEncodeUsesPersistedFieldNames(t *testing.T) {
	data, err := ideas.EncodeList([]*ideas.Idea{sampleIdea("1")})
	require.NoError(t, err)

	s := string(data)
	for _, field := range []string{`"userId":"u1"`, `"createdAt":"2026-03-14T09:26:53.589Z"`, `"ideaId":"1"`, `"feasibilityScore":80`, `"id":"analysis-1"`} {
		require.Contains(t, s, field)
	}
}

func TestEncodeNilList(t *testing.T) {
	data, err := ideas.EncodeList(nil)
	require.NoError(t, err)
	require.Equal(t, "[]", string(data))
}

func TestDecodeEmpty(t *testing.T) {
	for _, raw := range []string{"", "   ", "null", "[]"} {
		out, err := ideas.DecodeList([]byte(raw))
		require.NoError(t, err, raw)
		require.NotNil(t, out)
		require.Empty(t, out)
	}
}

func TestDecodeCorrupt(t *testing.T) {
	_, err := ideas.DecodeList([]byte(`{"not":"a list"`))
	require.ErrorIs(t, err, ideas.ErrPersistenceUnavailable)
}

func TestDecodeWithoutAnalysis(t *testing.T) {
	out, err := ideas.DecodeList([]byte(`[{"id":"7","userId":"u","title":"t","description":"t","domain":"AI","createdAt":"2026-01-02T03:04:05Z"}]`))
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.False(t, out[0].Analyzed())
	require.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), out[0].CreatedAt)
}
