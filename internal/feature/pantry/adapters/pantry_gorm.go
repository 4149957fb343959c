// Package adapters はpantryフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"kitchensync_backend/internal/feature/pantry/domain/entity"
	"kitchensync_backend/internal/feature/pantry/usecase"
)

// pantryGorm はPantryRepositoryインターフェースのGORM実装です。
type pantryGorm struct {
	db *gorm.DB
}

// pantryGormがPantryRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.PantryRepository = (*pantryGorm)(nil)

// NewPantryGorm は指定されたgorm.DB接続でpantryGormの新しいインスタンスを生成します。
func NewPantryGorm(db *gorm.DB) *pantryGorm {
	return &pantryGorm{db: db}
}

// List はユーザーのパントリーアイテムをカテゴリ・名前順に返します。
func (r *pantryGorm) List(ctx context.Context, userID uint, category string) ([]entity.PantryItem, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var items []entity.PantryItem
	if err := q.Order("category ASC, name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create はアイテムをデータベースに追加します。
func (r *pantryGorm) Create(ctx context.Context, item *entity.PantryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Update はユーザー所有のアイテムを更新します。
// 所有者が異なる場合とアイテムが存在しない場合は区別せずErrItemNotFoundを返します。
func (r *pantryGorm) Update(ctx context.Context, item *entity.PantryItem) error {
	res := r.db.WithContext(ctx).
		Model(&entity.PantryItem{}).
		Where("id = ? AND user_id = ?", item.ID, item.UserID).
		Updates(map[string]interface{}{
			"name":     item.Name,
			"category": item.Category,
			"quantity": item.Quantity,
			"unit":     item.Unit,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrItemNotFound
	}
	return nil
}

// Delete はユーザー所有のアイテムを削除します。
func (r *pantryGorm) Delete(ctx context.Context, userID, id uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entity.PantryItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrItemNotFound
	}
	return nil
}

// Clear はユーザーの全アイテムを削除します。
func (r *pantryGorm) Clear(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&entity.PantryItem{}).Error
}

// ListNames はユーザーのパントリーにある食材名を小文字化して返します。
// recipesフィーチャーのパントリーマッチングから参照されます。
func (r *pantryGorm) ListNames(ctx context.Context, userID uint) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).
		Model(&entity.PantryItem{}).
		Where("user_id = ?", userID).
		Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	for i := range names {
		names[i] = strings.ToLower(names[i])
	}
	return names, nil
}
