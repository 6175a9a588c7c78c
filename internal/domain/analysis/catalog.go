package analysis

import "strings"

// Summary is the canned sentence every mock analysis carries.
const Summary = "This startup idea shows promising potential with a solid foundation in the target market. Further development and validation are recommended before full-scale implementation."

// MaxRisks and MaxGaps bound the list lengths of any analysis.
const (
	MaxRisks = 3
	MaxGaps  = 3
)

var riskCatalog = [MaxRisks]Risk{
	{ID: "1", Title: "Market Competition", Severity: SeverityMedium, Description: "Existing players may have established market share"},
	{ID: "2", Title: "Technical Complexity", Severity: SeverityHigh, Description: "Implementation requires advanced ML capabilities"},
	{ID: "3", Title: "Regulatory Compliance", Severity: SeverityLow, Description: "Data privacy regulations may apply"},
}

var gapCatalog = [MaxGaps]string{
	"Need more market validation research",
	"Technical prototype required",
	"Competitive analysis needed",
}

// RiskCatalog returns a copy of the first n catalog risks in catalog order.
// n is clamped to [0, MaxRisks].
func RiskCatalog(n int) []Risk {
	n = clamp(n, 0, MaxRisks)
	out := make([]Risk, n)
	copy(out, riskCatalog[:n])
	return out
}

// GapCatalog returns a copy of the first n canned gap phrases.
func GapCatalog(n int) []string {
	n = clamp(n, 0, MaxGaps)
	out := make([]string, n)
	copy(out, gapCatalog[:n])
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
