package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	domain "github.com/bryanwahyu/ideaforge/internal/domain/ideas"
)

// RedisStore keeps the idea list as one string value under Key.
type RedisStore struct {
	rdb *goredis.Client
	key string
}

// RedisOptions connection settings
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

// NewRedisStore connects and pings the server.
func NewRedisStore(ctx context.Context, opt RedisOptions) (*RedisStore, error) {
	if opt.Addr == "" {
		return nil, errors.New("redis store: addr is required")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        opt.Addr,
		Password:    opt.Password,
		DB:          opt.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewRedisStoreFromClient(rdb, opt.Key), nil
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(rdb *goredis.Client, key string) *RedisStore {
	if key == "" {
		key = "ideas"
	}
	return &RedisStore{rdb: rdb, key: key}
}

func (s *RedisStore) Load(ctx context.Context) ([]*domain.Idea, error) {
	raw, err := s.rdb.Get(ctx, s.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return []*domain.Idea{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: redis get: %v", domain.ErrPersistenceUnavailable, err)
	}
	return domain.DecodeList(raw)
}

func (s *RedisStore) Save(ctx context.Context, list []*domain.Idea) error {
	data, err := domain.EncodeList(list)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: redis set: %v", domain.ErrPersistenceUnavailable, err)
	}
	return nil
}

func (s *RedisStore) Check(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *RedisStore) Close() error { return s.rdb.Close() }
