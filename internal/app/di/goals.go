// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	goalsadapters "wealth_backend/internal/feature/goals/adapters"
	goalsusecase "wealth_backend/internal/feature/goals/usecase"
	"wealth_backend/internal/platform/cache"
)

// NewGoalRepository creates a GoalRepository implementation.
// If Redis is available, the gorm repository is wrapped with the list cache.
func NewGoalRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) goalsusecase.GoalRepository {
	repo := goalsadapters.NewGoalGorm(db)
	if rdb != nil {
		return cache.NewCachingGoalRepository(rdb, ttl, repo, "goals")
	}
	return repo
}
