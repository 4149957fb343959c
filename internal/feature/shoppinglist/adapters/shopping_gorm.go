package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kitchensync_backend/internal/feature/shoppinglist/domain/entity"
	"kitchensync_backend/internal/feature/shoppinglist/usecase"
)

// shoppingGorm is the relational fallback implementation of ShoppingRepository.
// It is selected by the di layer when Redis is unavailable.
type shoppingGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure shoppingGorm implements ShoppingRepository.
var _ usecase.ShoppingRepository = (*shoppingGorm)(nil)

// NewShoppingGorm creates a new instance of shoppingGorm.
func NewShoppingGorm(db *gorm.DB) *shoppingGorm {
	return &shoppingGorm{db: db}
}

// List returns the user's shopping list in insertion order.
func (r *shoppingGorm) List(ctx context.Context, userID uint) ([]entity.ShoppingItem, error) {
	var models []ShoppingItemModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}
	items := make([]entity.ShoppingItem, 0, len(models))
	for i := range models {
		items = append(items, models[i].ToEntity())
	}
	return items, nil
}

// Put inserts or replaces an item by its ID.
func (r *shoppingGorm) Put(ctx context.Context, userID uint, item entity.ShoppingItem) error {
	model := ModelFromEntity(userID, item)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(model).Error
}

// Get retrieves one item owned by the user.
func (r *shoppingGorm) Get(ctx context.Context, userID uint, id string) (*entity.ShoppingItem, error) {
	var model ShoppingItemModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrItemNotFound
		}
		return nil, err
	}
	item := model.ToEntity()
	return &item, nil
}

// Delete removes one item owned by the user.
func (r *shoppingGorm) Delete(ctx context.Context, userID uint, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&ShoppingItemModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrItemNotFound
	}
	return nil
}

// Clear empties the user's list, or only its checked items.
func (r *shoppingGorm) Clear(ctx context.Context, userID uint, checkedOnly bool) error {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if checkedOnly {
		q = q.Where("checked = ?", true)
	}
	return q.Delete(&ShoppingItemModel{}).Error
}
