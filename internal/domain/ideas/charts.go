package ideas

// RadarPoint is one axis of the market radar, scored out of FullMark.
type RadarPoint struct {
	Subject  string `json:"subject"`
	Score    int    `json:"score"`
	FullMark int    `json:"fullMark"`
}

// RiskBar is one bar of the risk distribution chart.
type RiskBar struct {
	Name  string    `json:"name"`
	Value int       `json:"value"`
	Band  ScoreBand `json:"band"`
}

// The report charts are fixed illustrations and do not depend on the analysis.
var marketRadar = [...]RadarPoint{
	{Subject: "Market Size", Score: 78, FullMark: 100},
	{Subject: "Competition", Score: 65, FullMark: 100},
	{Subject: "Innovation", Score: 85, FullMark: 100},
	{Subject: "Scalability", Score: 72, FullMark: 100},
	{Subject: "Timing", Score: 88, FullMark: 100},
	{Subject: "Resources", Score: 55, FullMark: 100},
}

var riskDistribution = [...]struct {
	name  string
	value int
}{
	{"Market Risk", 35},
	{"Technical Risk", 55},
	{"Financial Risk", 40},
	{"Regulatory Risk", 25},
	{"Competition Risk", 60},
}

// MarketRadar returns a copy of the market radar series.
func MarketRadar() []RadarPoint {
	out := make([]RadarPoint, len(marketRadar))
	copy(out, marketRadar[:])
	return out
}

// RiskDistribution returns the risk bars with their colour band.
func RiskDistribution() []RiskBar {
	out := make([]RiskBar, len(riskDistribution))
	for i, r := range riskDistribution {
		out[i] = RiskBar{Name: r.name, Value: r.value, Band: RiskBandFor(r.value)}
	}
	return out
}

// RiskBandFor colours a risk value; higher is worse, unlike BandFor.
func RiskBandFor(value int) ScoreBand {
	switch {
	case value >= 60:
		return BandDanger
	case value >= 40:
		return BandWarning
	default:
		return BandSuccess
	}
}
