// Package usecase はpantryフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"kitchensync_backend/internal/feature/pantry/domain/entity"
)

// ErrItemNotFound はアイテムが存在しないか、呼び出しユーザーの所有物でない場合に返されます。
var ErrItemNotFound = errors.New("pantry item not found")

// PantryRepository はパントリーアイテムの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type PantryRepository interface {
	// List はユーザーのパントリーアイテムを返します。categoryが空でない場合は絞り込みます。
	List(ctx context.Context, userID uint, category string) ([]entity.PantryItem, error)

	// Create は新しいアイテムを永続化します。
	Create(ctx context.Context, item *entity.PantryItem) error

	// Update はユーザー所有のアイテムを更新します。
	// 対象が存在しない場合、ErrItemNotFoundを返します。
	Update(ctx context.Context, item *entity.PantryItem) error

	// Delete はユーザー所有のアイテムを削除します。
	// 対象が存在しない場合、ErrItemNotFoundを返します。
	Delete(ctx context.Context, userID, id uint) error

	// Clear はユーザーの全アイテムを削除します。
	Clear(ctx context.Context, userID uint) error
}

// pantryUsecase はパントリー操作のビジネスロジックを提供します。
type pantryUsecase struct {
	repo PantryRepository
}

// NewPantryUsecase はpantryUsecaseの新しいインスタンスを生成します。
func NewPantryUsecase(repo PantryRepository) *pantryUsecase {
	return &pantryUsecase{repo: repo}
}

// List はユーザーのパントリーアイテムを返します。
func (u *pantryUsecase) List(ctx context.Context, userID uint, category string) ([]entity.PantryItem, error) {
	if category != "" && !entity.ValidCategory(category) {
		return nil, fmt.Errorf("unknown category %q", category)
	}
	return u.repo.List(ctx, userID, category)
}

// Add はユーザーのパントリーに新しい食材を追加します。
// カテゴリが不正な場合は "Other" に丸めます。
func (u *pantryUsecase) Add(ctx context.Context, userID uint, name, category, quantity, unit string) (*entity.PantryItem, error) {
	if !entity.ValidCategory(category) {
		category = "Other"
	}
	item := &entity.PantryItem{
		Name:     name,
		Category: category,
		Quantity: quantity,
		Unit:     unit,
		UserID:   userID,
	}
	if err := u.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update はユーザー所有のアイテムを更新します。
func (u *pantryUsecase) Update(ctx context.Context, userID, id uint, name, category, quantity, unit string) (*entity.PantryItem, error) {
	if !entity.ValidCategory(category) {
		category = "Other"
	}
	item := &entity.PantryItem{
		ID:       id,
		Name:     name,
		Category: category,
		Quantity: quantity,
		Unit:     unit,
		UserID:   userID,
	}
	if err := u.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Remove はユーザー所有のアイテムを削除します。
func (u *pantryUsecase) Remove(ctx context.Context, userID, id uint) error {
	return u.repo.Delete(ctx, userID, id)
}

// Clear はユーザーのパントリーを空にします。
func (u *pantryUsecase) Clear(ctx context.Context, userID uint) error {
	return u.repo.Clear(ctx, userID)
}
