package analysis

import "errors"

// ErrQuotaExceeded indicates the AI provider returned a quota/limit error (HTTP 429 or similar).
var ErrQuotaExceeded = errors.New("ai quota exceeded")

// ErrAnalysisUnavailable indicates the provider could not produce a report.
var ErrAnalysisUnavailable = errors.New("analysis unavailable")
