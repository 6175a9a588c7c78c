package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	domain "github.com/bryanwahyu/ideaforge/internal/domain/ideas"
)

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
	const q = `SELECT value FROM kv_store WHERE store_key=$1;`
	var raw string
	err := s.db.QueryRowContext(ctx, q, s.key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return []*domain.Idea{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: postgres load: %v", domain.ErrPersistenceUnavailable, err)
	}
	return domain.DecodeList([]byte(raw))
}

// Save inserts or replaces the list row
func (s *IdeaStore) Save(ctx context.Context, list []*domain.Idea) error {
	const q = `
INSERT INTO kv_store (store_key, value, updated_at)
VALUES ($1,$2,$3)
ON CONFLICT (store_key) DO UPDATE SET
  value=EXCLUDED.value,
  updated_at=EXCLUDED.updated_at;
`
	data, err := domain.EncodeList(list)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, q, s.key, string(data), time.Now().UTC()); err != nil {
		return fmt.Errorf("%w: postgres save: %v", domain.ErrPersistenceUnavailable, err)
	}
	return nil
}

func (s *IdeaStore) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.db.PingContext(ctx)
}

func (s *IdeaStore) Close() error { return s.db.Close() }
