package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	domain "github.com/bryanwahyu/ideaforge/internal/domain/ideas"
)

// IdeaStore keeps the idea list as one row of kv_store.
type IdeaStore struct {
	db  *sql.DB
	key string
}

func NewIdeaStore(db *sql.DB, key string) *IdeaStore {
	return &IdeaStore{db: db, key: keyOrDefault(key)}
}

// Load reads the list; a missing row is an empty list
func (s *IdeaStore) Load(ctx context.Context) ([]*domain.Idea, error) {
	const q = `SELECT value FROM kv_store WHERE store_key=?;`
	var raw string
	err := s.db.QueryRowContext(ctx, q, s.key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return []*domain.Idea{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: mysql load: %v", domain.ErrPersistenceUnavailable, err)
	}
	return domain.DecodeList([]byte(raw))
}

// Save upserts the whole list in a single statement
func (s *IdeaStore) Save(ctx context.Context, list []*domain.Idea) error {
	const q = `
INSERT INTO kv_store (store_key, value, updated_at)
VALUES (?,?,?)
ON DUPLICATE KEY UPDATE
  value=VALUES(value), updated_at=VALUES(updated_at);
`
	data, err := domain.EncodeList(list)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, q, s.key, string(data), time.Now().UTC()); err != nil {
		return fmt.Errorf("%w: mysql save: %v", domain.ErrPersistenceUnavailable, err)
	}
	return nil
}

func (s *IdeaStore) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.db.PingContext(ctx)
}

func (s *IdeaStore) Close() error { return s.db.Close() }
