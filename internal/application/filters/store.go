package filters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"carmarket-backend/internal/domain"

	"github.com/redis/go-redis/v9"
)

// Store holds the active criteria of each owner (device).
type Store interface {
	Get(ctx context.Context, owner string) (domain.Criteria, error)
	Set(ctx context.Context, owner string, c domain.Criteria) error
	Reset(ctx context.Context, owner string) error
}

// MemoryStore keeps active criteria in process memory.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]domain.Criteria
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]domain.Criteria)}
}

func (m *MemoryStore) Get(_ context.Context, owner string) (domain.Criteria, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[owner].Clone(), nil
}

func (m *MemoryStore) Set(_ context.Context, owner string, c domain.Criteria) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[owner] = c.Clone()
	return nil
}

func (m *MemoryStore) Reset(_ context.Context, owner string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, owner)
	return nil
}

// KeyPrefix is the Redis key prefix for active criteria.
const KeyPrefix = "filters:"

// RedisStore keeps active criteria as JSON under filters:<owner>.
type RedisStore struct {
	Rdb *redis.Client
	TTL time.Duration
}

func (r *RedisStore) Get(ctx context.Context, owner string) (domain.Criteria, error) {
	b, err := r.Rdb.Get(ctx, KeyPrefix+owner).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Criteria{}, nil
		}
		return domain.Criteria{}, fmt.Errorf("redis get failed: %w", err)
	}
	var c domain.Criteria
	if err := json.Unmarshal(b, &c); err != nil {
		return domain.Criteria{}, fmt.Errorf("decode criteria: %w", err)
	}
	return c, nil
}

func (r *RedisStore) Set(ctx context.Context, owner string, c domain.Criteria) error {
	b, err := json.Marshal(c)
	if err != nil {
		return err
	}
	if err := r.Rdb.Set(ctx, KeyPrefix+owner, b, r.TTL).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Reset(ctx context.Context, owner string) error {
	if err := r.Rdb.Del(ctx, KeyPrefix+owner).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}
