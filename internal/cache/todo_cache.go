package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/templui/taskboard/internal/model"
)

const (
	keyPrefix = "taskboard:todos:"
	genPrefix = "taskboard:todogen:"
)

// TodoCache caches filtered todo lists per board in Redis.
type TodoCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewTodoCache returns a new TodoCache.
func NewTodoCache(rdb *redis.Client, ttl time.Duration) *TodoCache {
	return &TodoCache{rdb: rdb, ttl: ttl}
}

// Connect parses a redis:// URL and verifies the server answers.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	rdb := redis.NewClient(opts)
	err = rdb.Ping(ctx).Err()
	if err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return rdb, nil
}

// Generation returns the board's current list generation, 0 if never invalidated.
// Lists are stored under the generation read before they were loaded, so
// a list loaded before an invalidation can never be served after it.
func (c *TodoCache) Generation(ctx context.Context, boardID string) (int64, error) {
	gen, err := c.rdb.Get(ctx, genKey(boardID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// GetList returns the cached list, or nil on a miss.
func (c *TodoCache) GetList(ctx context.Context, boardID string, gen int64, filter model.TodoFilter) ([]*model.Todo, error) {
	b, err := c.rdb.Get(ctx, ListKey(boardID, gen, filter)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	list := []*model.Todo{}
	err = json.Unmarshal(b, &list)
	if err != nil {
		return nil, err
	}
	return list, nil
}

// SetList stores the list in cache.
func (c *TodoCache) SetList(ctx context.Context, boardID string, gen int64, filter model.TodoFilter, list []*model.Todo) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, ListKey(boardID, gen, filter), b, c.ttl).Err()
}

// InvalidateBoard bumps the board's generation, then removes the lists
// cached under older generations.
func (c *TodoCache) InvalidateBoard(ctx context.Context, boardID string) error {
	err := c.rdb.Incr(ctx, genKey(boardID)).Err()
	if err != nil {
		return err
	}

	iter := c.rdb.Scan(ctx, 0, boardPattern(boardID), 100).Iterator()
	for iter.Next(ctx) {
		err = c.rdb.Del(ctx, iter.Val()).Err()
		if err != nil {
			return err
		}
	}
	return iter.Err()
}

// ListKey is the Redis key for one board/generation/filter combination.
func ListKey(boardID string, gen int64, filter model.TodoFilter) string {
	return fmt.Sprintf("%s%s:g%d:status=%s:priority=%s", keyPrefix, boardID, gen, filter.Status, filter.Priority)
}

func boardPattern(boardID string) string {
	return keyPrefix + boardID + ":*"
}

func genKey(boardID string) string {
	return genPrefix + boardID
}
