package analysis

import "time"

// AnalysisID identifier type
type AnalysisID string

// IDPrefix is prepended to the owning idea id to form the analysis id.
const IDPrefix = "analysis-"

// IDFor returns the analysis id that belongs to the given idea.
func IDFor(ideaID string) AnalysisID {
	return AnalysisID(IDPrefix + ideaID)
}

// MarketReadiness enum
type MarketReadiness string

const (
	ReadinessEarly    MarketReadiness = "Early"
	ReadinessEmerging MarketReadiness = "Emerging"
	ReadinessReady    MarketReadiness = "Ready"
)

// Readiness levels in display order.
var Readiness = []MarketReadiness{ReadinessEarly, ReadinessEmerging, ReadinessReady}

// Recommendation enum, the top-line verdict of an analysis
type Recommendation string

const (
	RecommendProceed Recommendation = "Proceed"
	RecommendImprove Recommendation = "Improve"
	RecommendPivot   Recommendation = "Pivot"
)

// Recommendations in display order.
var Recommendations = []Recommendation{RecommendProceed, RecommendImprove, RecommendPivot}

// Severity enum
type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

// Risk value object
type Risk struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
}

// Analysis is the feasibility report attached to an idea
type Analysis struct {
	ID               AnalysisID      `json:"id"`
	IdeaID           string          `json:"ideaId"`
	FeasibilityScore int             `json:"feasibilityScore"`
	MarketReadiness  MarketReadiness `json:"marketReadiness"`
	ResearchMaturity int             `json:"researchMaturity"`
	Risks            []Risk          `json:"risks"`
	Gaps             []string        `json:"gaps"`
	Recommendation   Recommendation  `json:"recommendation"`
	Summary          string          `json:"summary"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// ParseReadiness maps a case-insensitive label to a MarketReadiness.
func ParseReadiness(s string) (MarketReadiness, bool) {
	for _, r := range Readiness {
		if equalFold(string(r), s) {
			return r, true
		}
	}
	return "", false
}

// ParseRecommendation maps a case-insensitive label to a Recommendation.
func ParseRecommendation(s string) (Recommendation, bool) {
	for _, r := range Recommendations {
		if equalFold(string(r), s) {
			return r, true
		}
	}
	return "", false
}

// ParseSeverity maps a case-insensitive label to a Severity.
func ParseSeverity(s string) (Severity, bool) {
	for _, sev := range []Severity{SeverityLow, SeverityMedium, SeverityHigh} {
		if equalFold(string(sev), s) {
			return sev, true
		}
	}
	return "", false
}
