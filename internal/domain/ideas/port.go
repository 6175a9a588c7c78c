package ideas

import "context"

// Store port (interface untuk persistence).
// The whole idea list lives under a single key; Save replaces it in one write.
type Store interface {
	// Load returns the stored list, or an empty list when nothing is stored.
	Load(ctx context.Context) ([]*Idea, error)
	// Save overwrites the stored list.
	Save(ctx context.Context, list []*Idea) error
	Close() error
}
