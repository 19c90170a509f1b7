package cache

import (
	"context"
	"encoding/json"
	"time"

	dom "github.com/NabinS-D/TodoList/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyEmployeeList = "employee:list"

// EmployeeCache caches the employee list in Redis.
type EmployeeCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewEmployeeCache returns a new EmployeeCache.
func NewEmployeeCache(rdb *redis.Client, ttl time.Duration) *EmployeeCache {
	return &EmployeeCache{rdb: rdb, ttl: ttl}
}

// GetList returns the cached list or nil on miss.
func (c *EmployeeCache) GetList(ctx context.Context) ([]dom.Employee, error) {
	b, err := c.rdb.Get(ctx, keyEmployeeList).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Employee
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetList stores the list in cache.
func (c *EmployeeCache) SetList(ctx context.Context, list []dom.Employee) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyEmployeeList, b, c.ttl).Err()
}

// Invalidate removes the list key (cache invalidation on write).
func (c *EmployeeCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, keyEmployeeList).Err()
}
