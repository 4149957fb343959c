// Package di provides dependency injection factories for creating application components.
package di

import (
	shoppingadapters "kitchensync_backend/internal/feature/shoppinglist/adapters"
	"kitchensync_backend/internal/feature/shoppinglist/usecase"
	"kitchensync_backend/internal/platform/shopping"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// NewShoppingRepository creates a ShoppingRepository implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to the relational database.
func NewShoppingRepository(rdb *redis.Client, db *gorm.DB) usecase.ShoppingRepository {
	if rdb != nil {
		return shopping.NewShoppingRedis(rdb, "shopping")
	}
	return shoppingadapters.NewShoppingGorm(db)
}
