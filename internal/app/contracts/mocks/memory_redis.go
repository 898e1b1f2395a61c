package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

// MemoryRedis is an in-process RedisRepository. Values are stored as JSON so
// round trips behave like the real repository. TTLs are recorded, not enforced.
type MemoryRedis struct {
	mu     sync.Mutex
	values map[string]string
	ttls   map[string]time.Duration
}

func NewMemoryRedis() *MemoryRedis {
	return &MemoryRedis{
		values: make(map[string]string),
		ttls:   make(map[string]time.Duration),
	}
}

func (r *MemoryRedis) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, key)
	delete(r.ttls, key)
	return nil
}

func (r *MemoryRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = string(encoded)
	r.ttls[key] = exp
	return nil
}

func (r *MemoryRedis) Get(ctx context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.values[key], nil
}

func (r *MemoryRedis) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	r.mu.Lock()
	_, exists := r.values[key]
	r.mu.Unlock()
	if exists {
		return false, nil
	}
	return true, r.Set(ctx, key, value, exp)
}

func (r *MemoryRedis) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int
	if current, ok := r.values[key]; ok {
		if _, err := fmt.Sscan(current, &count); err != nil {
			return 0, err
		}
	} else {
		r.ttls[key] = ttl
	}
	count++
	r.values[key] = fmt.Sprint(count)
	return count, nil
}

// TTL returns the expiration last given for key.
func (r *MemoryRedis) TTL(key string) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ttls[key]
}

// Has reports whether key currently holds a value.
func (r *MemoryRedis) Has(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.values[key]
	return ok
}
