package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"kitchensync_backend/internal/feature/shoppinglist/domain/entity"
	"kitchensync_backend/internal/feature/shoppinglist/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&ShoppingItemModel{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestShoppingGorm_PutAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewShoppingGorm(db)
	ctx := context.Background()

	milk := entity.ShoppingItem{ID: "id-milk", Name: "Milk", Category: "Dairy", Quantity: "1", Unit: "liter"}
	bread := entity.ShoppingItem{ID: "id-bread", Name: "Bread", Category: "Grains"}

	require.NoError(t, repo.Put(ctx, 1, milk))
	require.NoError(t, repo.Put(ctx, 1, bread))
	require.NoError(t, repo.Put(ctx, 2, entity.ShoppingItem{ID: "id-other", Name: "Eggs"}))

	t.Run("lists only the user's items", func(t *testing.T) {
		items, err := repo.List(ctx, 1)

		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("put replaces an existing item", func(t *testing.T) {
		milk.Checked = true
		milk.Quantity = "2"
		require.NoError(t, repo.Put(ctx, 1, milk))

		got, err := repo.Get(ctx, 1, "id-milk")
		require.NoError(t, err)
		assert.True(t, got.Checked)
		assert.Equal(t, "2", got.Quantity)

		items, err := repo.List(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, items, 2, "replace must not create a duplicate row")
	})
}

func TestShoppingGorm_Get(t *testing.T) {
	db := setupTestDB(t)
	repo := NewShoppingGorm(db)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, 1, entity.ShoppingItem{ID: "id-milk", Name: "Milk"}))

	t.Run("found", func(t *testing.T) {
		got, err := repo.Get(ctx, 1, "id-milk")

		require.NoError(t, err)
		assert.Equal(t, "Milk", got.Name)
	})

	t.Run("other user's item is not visible", func(t *testing.T) {
		_, err := repo.Get(ctx, 2, "id-milk")

		assert.ErrorIs(t, err, usecase.ErrItemNotFound)
	})
}

func TestShoppingGorm_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewShoppingGorm(db)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, 1, entity.ShoppingItem{ID: "id-milk", Name: "Milk"}))

	require.NoError(t, repo.Delete(ctx, 1, "id-milk"))
	assert.ErrorIs(t, repo.Delete(ctx, 1, "id-milk"), usecase.ErrItemNotFound)
}

func TestShoppingGorm_Clear(t *testing.T) {
	db := setupTestDB(t)
	repo := NewShoppingGorm(db)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, 1, entity.ShoppingItem{ID: "a", Name: "Milk", Checked: true}))
	require.NoError(t, repo.Put(ctx, 1, entity.ShoppingItem{ID: "b", Name: "Bread"}))

	t.Run("checked only", func(t *testing.T) {
		require.NoError(t, repo.Clear(ctx, 1, true))

		items, err := repo.List(ctx, 1)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Bread", items[0].Name)
	})

	t.Run("everything", func(t *testing.T) {
		require.NoError(t, repo.Clear(ctx, 1, false))

		items, err := repo.List(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}
