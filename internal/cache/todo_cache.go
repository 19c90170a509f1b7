package cache

import (
	"context"
	"encoding/json"
	"time"

	dom "github.com/NabinS-D/TodoList/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyTodoList = "todo:list"

// TodoCache caches the todo list in Redis.
type TodoCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewTodoCache returns a new TodoCache.
func NewTodoCache(rdb *redis.Client, ttl time.Duration) *TodoCache {
	return &TodoCache{rdb: rdb, ttl: ttl}
}

// GetList returns the cached list or nil on miss.
func (c *TodoCache) GetList(ctx context.Context) ([]dom.Todo, error) {
	b, err := c.rdb.Get(ctx, keyTodoList).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Todo
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetList stores the list in cache.
func (c *TodoCache) SetList(ctx context.Context, list []dom.Todo) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyTodoList, b, c.ttl).Err()
}

// Invalidate removes the list key (cache invalidation on write).
func (c *TodoCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, keyTodoList).Err()
}
