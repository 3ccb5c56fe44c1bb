package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// cartTTL keeps abandoned carts around for a month before Redis expires them.
const cartTTL = 30 * 24 * time.Hour

// Store persists carts between requests, keyed by session ID.
type Store interface {
	Load(ctx context.Context, id string) (Cart, error)
	Save(ctx context.Context, id string, c Cart) error
	Delete(ctx context.Context, id string) error
}

// ── Redis store ──────────────────────────────────────────────────────────────

// RedisStore is the production Store. A missing key loads as an empty cart.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore wraps an existing Redis client.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func redisKey(id string) string { return "cart:" + id }

func (s *RedisStore) Load(ctx context.Context, id string) (Cart, error) {
	val, err := s.rdb.Get(ctx, redisKey(id)).Result()
	if err == redis.Nil {
		return Cart{}, nil
	}
	if err != nil {
		return Cart{}, fmt.Errorf("cart: load %s: %w", id, err)
	}

	var c Cart
	if err := json.Unmarshal([]byte(val), &c); err != nil {
		return Cart{}, fmt.Errorf("cart: decode %s: %w", id, err)
	}
	return c, nil
}

func (s *RedisStore) Save(ctx context.Context, id string, c Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("cart: encode %s: %w", id, err)
	}
	if err := s.rdb.Set(ctx, redisKey(id), data, cartTTL).Err(); err != nil {
		return fmt.Errorf("cart: save %s: %w", id, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, redisKey(id)).Err(); err != nil {
		return fmt.Errorf("cart: delete %s: %w", id, err)
	}
	return nil
}

// ── Memory store ─────────────────────────────────────────────────────────────

// MemoryStore keeps carts in a map. Used in tests and when Redis is down.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]Cart
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: map[string]Cart{}}
}

func (s *MemoryStore) Load(_ context.Context, id string) (Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := s.carts[id]
	// Copy the items so callers cannot mutate the stored slice.
	items := make([]Item, len(c.Items))
	copy(items, c.Items)
	if len(items) == 0 {
		items = nil
	}
	return Cart{Items: items}, nil
}

func (s *MemoryStore) Save(_ context.Context, id string, c Cart) error {
	items := make([]Item, len(c.Items))
	copy(items, c.Items)

	s.mu.Lock()
	s.carts[id] = Cart{Items: items}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.carts, id)
	s.mu.Unlock()
	return nil
}
