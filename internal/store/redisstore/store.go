package redisstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	articleListKey = "articles:list"
	articleListTTL = 60 * time.Second
)

// Store wraps the Redis client used for read-side caching. Imports run
// out of band against the database, so cached lists only live for a
// short TTL; admin writes through the API invalidate eagerly.
type Store struct {
	rdb *redis.Client
}

func New(addr, password string, db int) *Store {
	return &Store{rdb: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

func (s *Store) Close() error {
	return s.rdb.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// GetArticleList returns the cached JSON list body, redis.Nil on miss.
func (s *Store) GetArticleList(ctx context.Context) (string, error) {
	return s.rdb.Get(ctx, articleListKey).Result()
}

func (s *Store) SetArticleList(ctx context.Context, body string) error {
	return s.rdb.Set(ctx, articleListKey, body, articleListTTL).Err()
}

func (s *Store) InvalidateArticleList(ctx context.Context) error {
	return s.rdb.Del(ctx, articleListKey).Err()
}
