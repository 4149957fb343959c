// Package shopping provides the Redis-backed shopping list store.
package shopping

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"kitchensync_backend/internal/feature/shoppinglist/domain/entity"
	"kitchensync_backend/internal/feature/shoppinglist/usecase"
)

// ShoppingRedis implements usecase.ShoppingRepository using Redis.
// Each user's list is a hash keyed by item ID with JSON-encoded values,
// mirroring how the original app keeps the list in per-user browser storage.
type ShoppingRedis struct {
	client *redis.Client
	prefix string
}

// Compile-time check to ensure ShoppingRedis implements ShoppingRepository.
var _ usecase.ShoppingRepository = (*ShoppingRedis)(nil)

// NewShoppingRedis creates a new ShoppingRedis instance.
func NewShoppingRedis(client *redis.Client, prefix string) *ShoppingRedis {
	if prefix == "" {
		prefix = "shopping"
	}
	return &ShoppingRedis{
		client: client,
		prefix: prefix,
	}
}

// listKey returns the Redis key for a user's shopping list hash.
func (r *ShoppingRedis) listKey(userID uint) string {
	return fmt.Sprintf("%s:user:%d", r.prefix, userID)
}

// List returns the user's shopping list sorted by item ID for stable ordering.
func (r *ShoppingRedis) List(ctx context.Context, userID uint) ([]entity.ShoppingItem, error) {
	raw, err := r.client.HGetAll(ctx, r.listKey(userID)).Result()
	if err != nil {
		return nil, err
	}

	items := make([]entity.ShoppingItem, 0, len(raw))
	for id, data := range raw {
		var item entity.ShoppingItem
		if err := json.Unmarshal([]byte(data), &item); err != nil {
			// Drop corrupted entries instead of failing the whole list
			r.client.HDel(ctx, r.listKey(userID), id)
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// Put inserts or replaces an item in the user's hash.
func (r *ShoppingRedis) Put(ctx context.Context, userID uint, item entity.ShoppingItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal shopping item: %w", err)
	}
	return r.client.HSet(ctx, r.listKey(userID), item.ID, data).Err()
}

// Get retrieves one item by its ID.
func (r *ShoppingRedis) Get(ctx context.Context, userID uint, id string) (*entity.ShoppingItem, error) {
	data, err := r.client.HGet(ctx, r.listKey(userID), id).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, usecase.ErrItemNotFound
		}
		return nil, err
	}

	var item entity.ShoppingItem
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shopping item: %w", err)
	}
	return &item, nil
}

// Delete removes one item from the user's hash.
func (r *ShoppingRedis) Delete(ctx context.Context, userID uint, id string) error {
	n, err := r.client.HDel(ctx, r.listKey(userID), id).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return usecase.ErrItemNotFound
	}
	return nil
}

// Clear empties the user's list, or only its checked items.
func (r *ShoppingRedis) Clear(ctx context.Context, userID uint, checkedOnly bool) error {
	if !checkedOnly {
		return r.client.Del(ctx, r.listKey(userID)).Err()
	}

	items, err := r.List(ctx, userID)
	if err != nil {
		return err
	}
	ids := make([]string, 0, len(items))
	for _, it := range items {
		if it.Checked {
			ids = append(ids, it.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	return r.client.HDel(ctx, r.listKey(userID), ids...).Err()
}
