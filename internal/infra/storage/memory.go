package storage

import (
	"context"
	"sync"

	domain "github.com/bryanwahyu/ideaforge/internal/domain/ideas"
)

// MemoryStore keeps the encoded idea list in process memory. It goes through
// the same JSON codec as the durable stores so round-trips behave the same.
type MemoryStore struct {
	mu   sync.RWMutex
	data []byte
	// SaveErr, when set, is returned by Save without storing anything.
	SaveErr error
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

// NewMemoryStoreWith seeds the store with raw content, e.g. a corrupt value.
func NewMemoryStoreWith(raw []byte) *MemoryStore {
	return &MemoryStore{data: append([]byte(nil), raw...)}
}

func (m *MemoryStore) Load(_ context.Context) ([]*domain.Idea, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return domain.DecodeList(m.data)
}

func (m *MemoryStore) Save(_ context.Context, list []*domain.Idea) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	data, err := domain.EncodeList(list)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data = data
	m.mu.Unlock()
	return nil
}

// Raw returns a copy of the stored bytes.
func (m *MemoryStore) Raw() []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]byte(nil), m.data...)
}

func (m *MemoryStore) Check(context.Context) error { return nil }

func (m *MemoryStore) Close() error { return nil }
