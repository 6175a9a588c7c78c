package storage_test

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	domain "github.com/bryanwahyu/ideaforge/internal/domain/ideas"
	"github.com/bryanwahyu/ideaforge/internal/infra/storage"
)

func TestNewRedisStore_RequiresAddr(t *testing.T) {
	_, err := storage.NewRedisStore(context.Background(), storage.RedisOptions{})
	require.Error(t, err)
}

func TestRedisStore_UnreachableServer(t *testing.T) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	s := storage.NewRedisStoreFromClient(rdb, "")
	t.Cleanup(func() { s.Close() })
	ctx := context.Background()

	_, err := s.Load(ctx)
	require.ErrorIs(t, err, domain.ErrPersistenceUnavailable)

	err = s.Save(ctx, []*domain.Idea{{ID: "1", OwnerID: "u", Domain: domain.DomainAI}})
	require.ErrorIs(t, err, domain.ErrPersistenceUnavailable)

	require.Error(t, s.Check(ctx))
}
