package ideas

import "math"

// RecentLimit is how many ideas the dashboard shows as recent.
const RecentLimit = 3

// DashboardStats summarises an owner's ideas
type DashboardStats struct {
	TotalIdeas       int     `json:"totalIdeas"`
	AvgFeasibility   int     `json:"avgFeasibility"`
	ReportsGenerated int     `json:"reportsGenerated"`
	RecentIdeas      []*Idea `json:"recentIdeas"`
}

// Stats computes dashboard figures over a newest-first list. Ideas without an
// analysis count as a score of zero in the average.
func Stats(list []*Idea) DashboardStats {
	st := DashboardStats{TotalIdeas: len(list), RecentIdeas: []*Idea{}}
	sum := 0
	for _, it := range list {
		if it.Analyzed() {
			st.ReportsGenerated++
			sum += it.Analysis.FeasibilityScore
		}
	}
	if len(list) > 0 {
		st.AvgFeasibility = int(math.Round(float64(sum) / float64(len(list))))
	}
	n := min(RecentLimit, len(list))
	st.RecentIdeas = append(st.RecentIdeas, list[:n]...)
	return st
}

// ScoreBand buckets a feasibility score the way the gauge colours it
type ScoreBand string

const (
	BandSuccess ScoreBand = "success"
	BandWarning ScoreBand = "warning"
	BandDanger  ScoreBand = "danger"
)

// BandFor returns the gauge band of a score.
func BandFor(score int) ScoreBand {
	switch {
	case score >= 75:
		return BandSuccess
	case score >= 50:
		return BandWarning
	default:
		return BandDanger
	}
}
