package analysis

import "context"

// Request carries what a provider may look at when scoring an idea.
type Request struct {
	IdeaID      string
	Description string
	Domain      string
}

// Provider turns an idea into a feasibility report.
// The returned analysis must have IdeaID == req.IdeaID.
type Provider interface {
	Analyze(ctx context.Context, req Request) (*Analysis, error)
}
