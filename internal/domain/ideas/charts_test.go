package ideas_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/ideaforge/internal/domain/ideas"
)

func TestRiskBandFor(t *testing.T) {
	require.Equal(t, ideas.BandSuccess, ideas.RiskBandFor(39))
	require.Equal(t, ideas.BandWarning, ideas.RiskBandFor(40))
	require.Equal(t, ideas.BandWarning, ideas.RiskBandFor(59))
	require.Equal(t, ideas.BandDanger, ideas.RiskBandFor(60))
}

func TestMarketRadar(t *testing.T) {
	radar := ideas.MarketRadar()
	require.Len(t, radar, 6)
	require.Equal(t, ideas.RadarPoint{Subject: "Market Size", Score: 78, FullMark: 100}, radar[0])
	require.Equal(t, "Resources", radar[5].Subject)

	radar[0].Score = 0
	require.Equal(t, 78, ideas.MarketRadar()[0].Score)
}

func TestRiskDistribution(t *testing.T) {
	bars := ideas.RiskDistribution()
	require.Len(t, bars, 5)

	bands := map[string]ideas.ScoreBand{}
	for _, b := range bars {
		bands[b.Name] = b.Band
	}
	require.Equal(t, ideas.BandSuccess, bands["Market Risk"])
	require.Equal(t, ideas.BandWarning, bands["Technical Risk"])
	require.Equal(t, ideas.BandWarning, bands["Financial Risk"])
	require.Equal(t, ideas.BandSuccess, bands["Regulatory Risk"])
	require.Equal(t, ideas.BandDanger, bands["Competition Risk"])
}
