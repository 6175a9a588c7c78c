package ideas

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bryanwahyu/ideaforge/internal/application"
	"github.com/bryanwahyu/ideaforge/internal/domain/analysis"
	domain "github.com/bryanwahyu/ideaforge/internal/domain/ideas"
)

// DefaultDelay mirrors the latency the mock analysis has always simulated.
const DefaultDelay = 2500 * time.Millisecond

// Service implements the idea use-cases on top of a Repository.
// Service is safe for concurrent use.
type Service struct {
	Repo     *Repository
	Provider analysis.Provider
	Clock    application.Clock
	// Delay is waited before analysis starts; zero skips the wait.
	Delay time.Duration
	// NewID allocates idea ids; defaults to time-ordered UUIDv7.
	NewID func() (string, error)
	Log   *zap.Logger
}

// SubmitCommand is a user's idea submission
type SubmitCommand struct {
	OwnerID     string
	Description string
	Domain      domain.Domain
}

// Validate checks the command the same way the submit form does.
func (c SubmitCommand) Validate() error {
	if strings.TrimSpace(c.OwnerID) == "" {
		return fmt.Errorf("%w: owner is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(c.Description) == "" {
		return fmt.Errorf("%w: description is required", domain.ErrInvalidInput)
	}
	if !c.Domain.Valid() {
		return fmt.Errorf("%w: unknown domain %q", domain.ErrInvalidInput, c.Domain)
	}
	return nil
}

// Submit validates the command, waits the configured delay, analyses the idea
// and stores it with its analysis attached. Nothing is stored unless every
// step succeeds. Cancelling ctx aborts the wait and the analysis.
func (s *Service) Submit(ctx context.Context, cmd SubmitCommand) (*domain.Idea, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	log := s.logger()

	if s.Delay > 0 {
		t := time.NewTimer(s.Delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("allocate idea id: %w", err)
	}

	idea := &domain.Idea{
		ID:          domain.IdeaID(id),
		OwnerID:     cmd.OwnerID,
		Title:       domain.TitleFrom(cmd.Description),
		Description: cmd.Description,
		Domain:      cmd.Domain,
		CreatedAt:   s.now(),
	}

	a, err := s.Provider.Analyze(ctx, analysis.Request{
		IdeaID:      id,
		Description: cmd.Description,
		Domain:      string(cmd.Domain),
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return nil, err
		}
		if !errors.Is(err, analysis.ErrAnalysisUnavailable) && !errors.Is(err, analysis.ErrQuotaExceeded) {
			err = fmt.Errorf("%w: %v", analysis.ErrAnalysisUnavailable, err)
		}
		log.Warn("analysis failed", zap.String("idea_id", id), zap.Error(err))
		return nil, err
	}
	if a == nil || a.IdeaID != id {
		return nil, fmt.Errorf("%w: provider returned a report for another idea", analysis.ErrAnalysisUnavailable)
	}
	idea.Analysis = a

	if err := s.Repo.Add(ctx, idea); err != nil {
		log.Error("persist idea failed", zap.String("idea_id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistenceFailure, err)
	}

	log.Info("idea submitted",
		zap.String("idea_id", id),
		zap.String("owner", cmd.OwnerID),
		zap.String("domain", string(cmd.Domain)),
		zap.Int("feasibility_score", a.FeasibilityScore),
		zap.String("recommendation", string(a.Recommendation)),
	)
	return idea, nil
}

// Get returns one of the owner's ideas. Ideas of other owners are reported as not found.
func (s *Service) Get(ownerID string, id domain.IdeaID) (*domain.Idea, error) {
	idea, ok := s.Repo.GetByID(id)
	if !ok || idea.OwnerID != ownerID {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return idea, nil
}

// List returns the owner's ideas, newest first.
func (s *Service) List(ownerID string) []*domain.Idea {
	return s.Repo.ListByOwner(ownerID)
}

// Reports returns the owner's ideas that have an analysis attached.
func (s *Service) Reports(ownerID string) []*domain.Idea {
	all := s.Repo.ListByOwner(ownerID)
	out := make([]*domain.Idea, 0, len(all))
	for _, it := range all {
		if it.Analyzed() {
			out = append(out, it)
		}
	}
	return out
}

// Dashboard returns the owner's summary figures.
func (s *Service) Dashboard(ownerID string) domain.DashboardStats {
	return domain.Stats(s.Repo.ListByOwner(ownerID))
}

func (s *Service) newID() (string, error) {
	if s.NewID != nil {
		return s.NewID()
	}
	u, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func (s *Service) now() time.Time {
	if s.Clock == nil {
		return application.SystemClock{}.Now()
	}
	return s.Clock.Now()
}

func (s *Service) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}
