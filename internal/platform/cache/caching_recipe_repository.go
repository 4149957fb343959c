// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"kitchensync_backend/internal/feature/recipes/domain/entity"
	"kitchensync_backend/internal/feature/recipes/usecase"
)

// CachingRecipeRepository decorates a RecipeRepository with Redis caching of
// browse listings. It implements the decorator pattern, transparently adding
// caching without modifying the underlying repository.
type CachingRecipeRepository struct {
	inner     usecase.RecipeRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingRecipeRepositoryがRecipeRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.RecipeRepository = (*CachingRecipeRepository)(nil)

// NewCachingRecipeRepository decorates a RecipeRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "recipes".
func NewCachingRecipeRepository(rdb *redis.Client, ttl time.Duration, inner usecase.RecipeRepository, namespace string) *CachingRecipeRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "recipes"
	}
	return &CachingRecipeRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// List retrieves recipes, checking cache first then falling back to the database.
func (c *CachingRecipeRepository) List(ctx context.Context, userID uint, f usecase.ListFilter) ([]entity.Recipe, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.List(ctx, userID, f)
	}

	key := c.listKey(userID, f)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Recipe
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.List(ctx, userID, f)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByID is a pass-through: detail lookups are cheap primary-key reads.
func (c *CachingRecipeRepository) FindByID(ctx context.Context, id uint) (*entity.Recipe, error) {
	return c.inner.FindByID(ctx, id)
}

// Create inserts a recipe and invalidates the owner's cached listings.
func (c *CachingRecipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	if err := c.inner.Create(ctx, recipe); err != nil {
		return err
	}
	c.invalidateUser(ctx, recipe.UserID)
	return nil
}

// Update saves a recipe and invalidates the owner's cached listings.
func (c *CachingRecipeRepository) Update(ctx context.Context, recipe *entity.Recipe) error {
	if err := c.inner.Update(ctx, recipe); err != nil {
		return err
	}
	c.invalidateUser(ctx, recipe.UserID)
	return nil
}

// Delete removes a recipe and invalidates all cached listings.
// The owner is not known here, so the whole namespace is flushed.
func (c *CachingRecipeRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidateAll(ctx)
	return nil
}

// UpsertCatalog loads catalog recipes and invalidates all cached listings,
// since catalog entries appear in every user's browse results.
func (c *CachingRecipeRepository) UpsertCatalog(ctx context.Context, recipes []entity.Recipe) error {
	if err := c.inner.UpsertCatalog(ctx, recipes); err != nil {
		return err
	}
	c.invalidateAll(ctx)
	return nil
}

// listKey generates a cache key for a specific browse query.
func (c *CachingRecipeRepository) listKey(userID uint, f usecase.ListFilter) string {
	return fmt.Sprintf("%s:user:%d:mt:%s:tag:%s",
		c.namespace,
		userID,
		safe(f.MealType),
		safe(f.DietaryTag),
	)
}

// invalidateUser removes the cached listings of a single user (best effort).
func (c *CachingRecipeRepository) invalidateUser(ctx context.Context, userID uint) {
	if c.rdb == nil {
		return
	}
	_ = c.deleteByPattern(ctx, fmt.Sprintf("%s:user:%d:*", c.namespace, userID))
}

// invalidateAll removes every cached listing in the namespace (best effort).
func (c *CachingRecipeRepository) invalidateAll(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.deleteByPattern(ctx, c.namespace+":*")
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingRecipeRepository) deleteByPattern(ctx context.Context, pattern string) error {
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

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	// Simple escaping of characters that are problematic for Redis keys
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
