// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"wealth_backend/internal/feature/goals/domain/entity"
	"wealth_backend/internal/feature/goals/usecase"
)

// DefaultGoalListTTL is used when no positive TTL is given.
const DefaultGoalListTTL = 5 * time.Minute

// CachingGoalRepository decorates a GoalRepository with a Redis read-through cache
// for per-owner goal lists. Every write for an owner drops that owner's cached lists.
type CachingGoalRepository struct {
	inner     usecase.GoalRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.GoalRepository = (*CachingGoalRepository)(nil)

// NewCachingGoalRepository decorates inner. A nil rdb bypasses the cache entirely.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "goals".
func NewCachingGoalRepository(rdb *redis.Client, ttl time.Duration, inner usecase.GoalRepository, namespace string) *CachingGoalRepository {
	if ttl <= 0 {
		ttl = DefaultGoalListTTL
	}
	if namespace == "" {
		namespace = "goals"
	}
	return &CachingGoalRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create stores the goal and invalidates the owner's lists.
func (c *CachingGoalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	if err := c.inner.Create(ctx, goal); err != nil {
		return err
	}
	c.invalidate(ctx, goal.UserID)
	return nil
}

// ListByUser checks the cache first, then falls back to the inner repository.
func (c *CachingGoalRepository) ListByUser(ctx context.Context, userID string, limit int) ([]entity.Goal, error) {
	if c.rdb == nil {
		return c.inner.ListByUser(ctx, userID, limit)
	}

	key := c.cacheKey(userID, limit)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Goal
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// Update updates the goal and invalidates the owner's lists.
func (c *CachingGoalRepository) Update(ctx context.Context, userID, goalID string, patch entity.GoalPatch) (*entity.Goal, error) {
	goal, err := c.inner.Update(ctx, userID, goalID, patch)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, userID)
	return goal, nil
}

// Delete deletes the goal and invalidates the owner's lists.
func (c *CachingGoalRepository) Delete(ctx context.Context, userID, goalID string) error {
	if err := c.inner.Delete(ctx, userID, goalID); err != nil {
		return err
	}
	c.invalidate(ctx, userID)
	return nil
}

// invalidate is best effort; a stale list expires with the TTL.
func (c *CachingGoalRepository) invalidate(ctx context.Context, userID string) {
	if c.rdb == nil {
		return
	}
	if err := c.deleteByPattern(ctx, c.cacheKeyPrefix(userID)+"*"); err != nil {
		slog.Warn("goal cache invalidation failed", "error", err, "user_id", userID)
	}
}

// cacheKey generates a cache key for a specific list query.
func (c *CachingGoalRepository) cacheKey(userID string, limit int) string {
	return fmt.Sprintf("%s%d", c.cacheKeyPrefix(userID), limit)
}

// cacheKeyPrefix generates the prefix shared by all lists of one owner.
func (c *CachingGoalRepository) cacheKeyPrefix(userID string) string {
	return fmt.Sprintf("%s:%s:", c.namespace, safe(userID))
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingGoalRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys and glob patterns.
func safe(s string) string {
	return strings.NewReplacer(" ", "_", ":", "_", "*", "_", "?", "_", "[", "_", "]", "_").Replace(s)
}
