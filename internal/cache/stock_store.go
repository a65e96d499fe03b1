package cache

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/HJantango/wild-octave-august-sub004/internal/config"
	"github.com/redis/go-redis/v9"
)

const stockLevelsKey = "stock_levels"

// StockStore holds user-entered on-hand counts keyed by domain.ItemID.
type StockStore interface {
	Get(ctx context.Context, itemID string) (int, bool, error)
	Set(ctx context.Context, itemID string, qty int) error
	All(ctx context.Context) (map[string]int, error)
	Clear(ctx context.Context) error
}

type redisStockStore struct {
	client *redis.Client
	ttl    time.Duration
}

type memoryStockStore struct {
	mu     sync.RWMutex
	levels map[string]int
}

// NewStockStore returns a redis-backed store when the cache is enabled, otherwise an in-memory one.
func NewStockStore(cfg config.CacheConfig) (StockStore, error) {
	if !cfg.Enabled {
		return NewMemoryStockStore(), nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisStockStore{
		client: client,
		ttl:    ttl,
	}, nil
}

func NewMemoryStockStore() StockStore {
	return &memoryStockStore{levels: make(map[string]int)}
}

func clampQty(qty int) int {
	if qty < 0 {
		return 0
	}
	return qty
}

func (s *redisStockStore) Get(ctx context.Context, itemID string) (int, bool, error) {
	raw, err := s.client.HGet(ctx, stockLevelsKey, itemID).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("redis hget failed: %w", err)
	}

	qty, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, fmt.Errorf("decode stock level %q: %w", itemID, err)
	}
	return qty, true, nil
}

func (s *redisStockStore) Set(ctx context.Context, itemID string, qty int) error {
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, stockLevelsKey, itemID, clampQty(qty))
	if s.ttl > 0 {
		pipe.Expire(ctx, stockLevelsKey, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis hset failed: %w", err)
	}
	return nil
}

func (s *redisStockStore) All(ctx context.Context) (map[string]int, error) {
	raw, err := s.client.HGetAll(ctx, stockLevelsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hgetall failed: %w", err)
	}

	levels := make(map[string]int, len(raw))
	for id, v := range raw {
		qty, err := strconv.Atoi(v)
		if err != nil {
			// skip values written by something other than this store
			continue
		}
		levels[id] = qty
	}
	return levels, nil
}

func (s *redisStockStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, stockLevelsKey).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func (m *memoryStockStore) Get(ctx context.Context, itemID string) (int, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	qty, ok := m.levels[itemID]
	return qty, ok, nil
}

func (m *memoryStockStore) Set(ctx context.Context, itemID string, qty int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.levels[itemID] = clampQty(qty)
	return nil
}

// All returns a copy so callers can hand it to the engine as a snapshot.
func (m *memoryStockStore) All(ctx context.Context) (map[string]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]int, len(m.levels))
	for k, v := range m.levels {
		out[k] = v
	}
	return out, nil
}

func (m *memoryStockStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.levels = make(map[string]int)
	return nil
}
