// Package session keeps the backend bearer token of each dashboard session
// on the server side, so the browser only ever holds the dashboard JWT.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrNotFound = errors.New("session: not found")

type Store interface {
	Save(ctx context.Context, id, backendToken string, ttl time.Duration) error
	Get(ctx context.Context, id string) (string, error)
	Delete(ctx context.Context, id string) error
}

const keyPrefix = "dashboard:session:"

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Save(ctx context.Context, id, backendToken string, ttl time.Duration) error {
	return s.rdb.Set(ctx, keyPrefix+id, backendToken, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, id string) (string, error) {
	token, err := s.rdb.Get(ctx, keyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	return token, err
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, keyPrefix+id).Err()
}

type entry struct {
	token   string
	expires time.Time
}

// MemoryStore is used when no redis is configured. Sessions do not survive
// a restart and are not shared between gateway instances.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]entry), now: time.Now}
}

func (s *MemoryStore) Save(_ context.Context, id, backendToken string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = entry{token: backendToken, expires: s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return "", ErrNotFound
	}
	if s.now().After(e.expires) {
		delete(s.entries, id)
		return "", ErrNotFound
	}
	return e.token, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}
