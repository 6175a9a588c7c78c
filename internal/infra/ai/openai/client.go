package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/bryanwahyu/ideaforge/internal/application"
	"github.com/bryanwahyu/ideaforge/internal/domain/analysis"
	"github.com/bryanwahyu/ideaforge/internal/infra/ai/prompt"
)

const (
	maxTokens    = 2048
	defaultModel = "gpt-4o-mini"
)

// Client scores ideas with a chat completion model.
type Client struct {
	*openai.Client
	Model string
	Clock application.Clock
}

// NewClient builds a client; baseURL may be empty to use the public API.
func NewClient(apiKey, model, baseURL string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{Client: openai.NewClientWithConfig(cfg), Model: model, Clock: application.SystemClock{}}
}

// Analyze implements analysis.Provider.
func (c *Client) Analyze(ctx context.Context, req analysis.Request) (*analysis.Analysis, error) {
	model := c.Model
	if model == "" {
		model = defaultModel
	}
	creq := openai.ChatCompletionRequest{
		Model: model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.GetSystemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: prompt.GetUserPrompt(req.Domain, req.Description)},
		},
	}
	// For reasoning models (o1/o3/o4/gpt-5*) use MaxCompletionTokens instead of MaxTokens
	if strings.HasPrefix(model, "o1") || strings.HasPrefix(model, "o3") || strings.HasPrefix(model, "o4") || strings.HasPrefix(model, "gpt-5") {
		creq.MaxCompletionTokens = maxTokens
	} else {
		creq.MaxTokens = maxTokens
	}

	resp, err := c.CreateChatCompletion(ctx, creq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if isQuota(err) {
			return nil, fmt.Errorf("%w: %v", analysis.ErrQuotaExceeded, err)
		}
		return nil, fmt.Errorf("%w: failed to create chat completion: %v", analysis.ErrAnalysisUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty completion", analysis.ErrAnalysisUnavailable)
	}

	var rep prompt.Report
	if err := json.Unmarshal([]byte(stripFences(resp.Choices[0].Message.Content)), &rep); err != nil {
		return nil, fmt.Errorf("%w: parse report: %v", analysis.ErrAnalysisUnavailable, err)
	}

	clock := c.Clock
	if clock == nil {
		clock = application.SystemClock{}
	}
	return toAnalysis(req.IdeaID, rep, clock), nil
}

// toAnalysis normalises whatever the model returned into a well-formed report.
func toAnalysis(ideaID string, rep prompt.Report, clock application.Clock) *analysis.Analysis {
	readiness, ok := analysis.ParseReadiness(rep.MarketReadiness)
	if !ok {
		readiness = analysis.ReadinessEmerging
	}
	rec, ok := analysis.ParseRecommendation(rep.Recommendation)
	if !ok {
		rec = analysis.RecommendImprove
	}

	risks := make([]analysis.Risk, 0, analysis.MaxRisks)
	for _, r := range rep.Risks {
		if len(risks) == analysis.MaxRisks {
			break
		}
		title := strings.TrimSpace(r.Title)
		if title == "" {
			continue
		}
		sev, ok := analysis.ParseSeverity(r.Severity)
		if !ok {
			sev = analysis.SeverityMedium
		}
		risks = append(risks, analysis.Risk{
			ID:          strconv.Itoa(len(risks) + 1),
			Title:       title,
			Severity:    sev,
			Description: strings.TrimSpace(r.Description),
		})
	}
	if len(risks) == 0 {
		risks = analysis.RiskCatalog(1)
	}

	gaps := make([]string, 0, analysis.MaxGaps)
	for _, g := range rep.Gaps {
		if len(gaps) == analysis.MaxGaps {
			break
		}
		if g = strings.TrimSpace(g); g != "" {
			gaps = append(gaps, g)
		}
	}
	if len(gaps) == 0 {
		gaps = analysis.GapCatalog(1)
	}

	summary := strings.TrimSpace(rep.Summary)
	if summary == "" {
		summary = analysis.Summary
	}

	return &analysis.Analysis{
		ID:               analysis.IDFor(ideaID),
		IdeaID:           ideaID,
		FeasibilityScore: clampPercent(rep.FeasibilityScore),
		MarketReadiness:  readiness,
		ResearchMaturity: clampPercent(rep.ResearchMaturity),
		Risks:            risks,
		Gaps:             gaps,
		Recommendation:   rec,
		Summary:          summary,
		CreatedAt:        clock.Now(),
	}
}

func isQuota(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		return true
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode == http.StatusTooManyRequests {
		return true
	}
	return false
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
