package ideas_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/ideaforge/internal/domain/ideas"
)

func TestStatsEmpty(t *testing.T) {
	st := ideas.Stats(nil)
	require.Equal(t, 0, st.TotalIdeas)
	require.Equal(t, 0, st.AvgFeasibility)
	require.Equal(t, 0, st.ReportsGenerated)
	require.NotNil(t, st.RecentIdeas)
	require.Empty(t, st.RecentIdeas)
}

func TestStats(t *testing.T) {
	a, b, c, d := sampleIdea("4"), sampleIdea("3"), sampleIdea("2"), sampleIdea("1")
	a.Analysis.FeasibilityScore = 70
	b.Analysis.FeasibilityScore = 91
	c.Analysis = nil
	d.Analysis.FeasibilityScore = 66

	st := ideas.Stats([]*ideas.Idea{a, b, c, d})
	require.Equal(t, 4, st.TotalIdeas)
	require.Equal(t, 3, st.ReportsGenerated)
	// (70+91+0+66)/4 = 56.75
	require.Equal(t, 57, st.AvgFeasibility)
	require.Equal(t, []*ideas.Idea{a, b, c}, st.RecentIdeas)
}

func TestBandFor(t *testing.T) {
	require.Equal(t, ideas.BandSuccess, ideas.BandFor(94))
	require.Equal(t, ideas.BandSuccess, ideas.BandFor(75))
	require.Equal(t, ideas.BandWarning, ideas.BandFor(74))
	require.Equal(t, ideas.BandWarning, ideas.BandFor(50))
	require.Equal(t, ideas.BandDanger, ideas.BandFor(49))
}
