package ideas

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	domain "github.com/bryanwahyu/ideaforge/internal/domain/ideas"
)

// Repository holds the session's ideas, newest first, backed by a Store.
// Repository is safe for concurrent use; Add holds the write lock across the
// in-memory prepend and the Store write.
type Repository struct {
	mu       sync.RWMutex
	store    domain.Store
	log      *zap.Logger
	list     []*domain.Idea
	degraded bool
}

// Open loads the stored ideas. A store that cannot be read does not fail Open:
// the repository falls back to an empty in-memory session and never writes
// over the unreadable value.
func Open(ctx context.Context, store domain.Store, log *zap.Logger) (*Repository, error) {
	if store == nil {
		return nil, errors.New("ideas repository: store is required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	r := &Repository{store: store, log: log}

	list, err := store.Load(ctx)
	if err != nil {
		log.Warn("idea store unreadable, continuing in-memory only", zap.Error(err))
		r.degraded = true
		list = nil
	}
	if list == nil {
		list = []*domain.Idea{}
	}
	r.list = list
	log.Info("idea repository opened", zap.Int("ideas", len(list)), zap.Bool("degraded", r.degraded))
	return r, nil
}

// Degraded reports whether the repository runs without persistence.
func (r *Repository) Degraded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.degraded
}

// GetAll returns the current list, newest first. Callers must not modify it.
func (r *Repository) GetAll() []*domain.Idea {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.list
}

// GetByID looks an idea up; absent is reported with ok=false, not an error.
func (r *Repository) GetByID(id domain.IdeaID) (*domain.Idea, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.list {
		if it.ID == id {
			return it, true
		}
	}
	return nil, false
}

// ListByOwner returns the owner's ideas, newest first.
func (r *Repository) ListByOwner(ownerID string) []*domain.Idea {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Idea, 0, len(r.list))
	for _, it := range r.list {
		if it.OwnerID == ownerID {
			out = append(out, it)
		}
	}
	return out
}

// Add prepends the idea and rewrites the whole stored list. When the write
// fails nothing changes in memory and the error wraps ErrPersistenceUnavailable.
func (r *Repository) Add(ctx context.Context, idea *domain.Idea) error {
	if idea == nil {
		return fmt.Errorf("%w: nil idea", domain.ErrInvalidInput)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, it := range r.list {
		if it.ID == idea.ID {
			return fmt.Errorf("%w: duplicate idea id %s", domain.ErrInvalidInput, idea.ID)
		}
	}

	// fresh backing array so slices handed out by GetAll stay stable
	next := make([]*domain.Idea, 0, len(r.list)+1)
	next = append(next, idea)
	next = append(next, r.list...)

	if !r.degraded {
		if err := r.store.Save(ctx, next); err != nil {
			if !errors.Is(err, domain.ErrPersistenceUnavailable) {
				err = fmt.Errorf("%w: %v", domain.ErrPersistenceUnavailable, err)
			}
			return err
		}
	}
	r.list = next
	return nil
}

// Close releases the underlying store.
func (r *Repository) Close() error {
	return r.store.Close()
}
