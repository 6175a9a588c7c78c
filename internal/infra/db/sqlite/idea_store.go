package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	domain "github.com/bryanwahyu/ideaforge/internal/domain/ideas"
)

// IdeaStore keeps the idea list as one row of kv_store.
type IdeaStore struct {
	db  *sql.DB
	key string
}

func NewIdeaStore(db *sql.DB, key string) *IdeaStore {
	if strings.TrimSpace(key) == "" {
		key = "ideas"
	}
	return &IdeaStore{db: db, key: key}
}

func (s *IdeaStore) Load(ctx context.Context) ([]*domain.Idea, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE store_key = ?`, s.key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return []*domain.Idea{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: sqlite load: %v", domain.ErrPersistenceUnavailable, err)
	}
	return domain.DecodeList([]byte(raw))
}

func (s *IdeaStore) Save(ctx context.Context, list []*domain.Idea) error {
	const q = `
INSERT INTO kv_store (store_key, value, updated_at)
VALUES (?, ?, ?)
ON CONFLICT(store_key) DO UPDATE SET
    value = excluded.value,
    updated_at = excluded.updated_at
`
	data, err := domain.EncodeList(list)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, q, s.key, string(data), time.Now().UTC()); err != nil {
		return fmt.Errorf("%w: sqlite save: %v", domain.ErrPersistenceUnavailable, err)
	}
	return nil
}

func (s *IdeaStore) Check(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *IdeaStore) Close() error { return s.db.Close() }
