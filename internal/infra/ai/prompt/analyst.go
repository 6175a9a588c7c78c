package prompt

import (
	"fmt"
	"strings"
)

// GetSystemPrompt provides strict directions and schema for JSON output.
func GetSystemPrompt() string {
	return `You are a seasoned startup analyst and venture investor. You must produce one valid JSON object only (no markdown, no commentary) that follows the schema below. Do not include code fences.

Requirements:
- Output must be a single JSON object.
- feasibility_score and research_maturity are integers from 0 to 100.
- market_readiness is one of: Early, Emerging, Ready.
- recommendation is one of: Proceed, Improve, Pivot.
- risks has 1 to 3 items; severity is one of: Low, Medium, High.
- gaps has 1 to 3 short phrases naming what the founder still has to validate or build.
- summary is two sentences at most.

Schema (example with empty values):
{
  "feasibility_score": 0,
  "market_readiness": "<Early|Emerging|Ready>",
  "research_maturity": 0,
  "risks": [
    {
      "title": "<string>",
      "severity": "<Low|Medium|High>",
      "description": "<string>"
    }
  ],
  "gaps": ["<string>"],
  "recommendation": "<Proceed|Improve|Pivot>",
  "summary": "<string>"
}`
}

// GetUserPrompt builds the user message around an idea description.
func GetUserPrompt(domain, description string) string {
	return fmt.Sprintf("Assess the feasibility of this startup idea and respond with the JSON per schema.\nDomain: %s\nIdea:\n%s",
		domain, strings.TrimSpace(description))
}

// Report matches the schema requested by the system prompt.
type Report struct {
	FeasibilityScore int    `json:"feasibility_score"`
	MarketReadiness  string `json:"market_readiness"`
	ResearchMaturity int    `json:"research_maturity"`
	Risks            []struct {
		Title       string `json:"title"`
		Severity    string `json:"severity"`
		Description string `json:"description"`
	} `json:"risks"`
	Gaps           []string `json:"gaps"`
	Recommendation string   `json:"recommendation"`
	Summary        string   `json:"summary"`
}
