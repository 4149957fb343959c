// Package usecase はshoppinglistフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	recipesentity "kitchensync_backend/internal/feature/recipes/domain/entity"
	"kitchensync_backend/internal/feature/shoppinglist/domain/entity"
)

// ErrItemNotFound はアイテムがユーザーの買い物リストに存在しない場合に返されます。
var ErrItemNotFound = errors.New("shopping list item not found")

// ShoppingRepository は買い物リストの永続化層を抽象化します。
// 実装はRedis（platform/shopping）とGORMフォールバック（adapters）の2つがあり、
// di層が利用可能な方を選択します。
// Goの慣例に従い、インターフェースはプロバイダーではなくコンシューマー（usecase）が定義します。
type ShoppingRepository interface {
	// List はユーザーの買い物リストを返します。
	List(ctx context.Context, userID uint) ([]entity.ShoppingItem, error)

	// Put はアイテムを追加または置き換えます。
	Put(ctx context.Context, userID uint, item entity.ShoppingItem) error

	// Get はIDでアイテムを取得します。存在しない場合、ErrItemNotFoundを返します。
	Get(ctx context.Context, userID uint, id string) (*entity.ShoppingItem, error)

	// Delete はアイテムを削除します。存在しない場合、ErrItemNotFoundを返します。
	Delete(ctx context.Context, userID uint, id string) error

	// Clear はユーザーの買い物リストを空にします。
	// checkedOnlyがtrueの場合、チェック済みアイテムのみ削除します。
	Clear(ctx context.Context, userID uint, checkedOnly bool) error
}

// MissingLister はレシピの不足材料を参照します。recipesフィーチャーが実装を提供します。
type MissingLister interface {
	Missing(ctx context.Context, userID, recipeID uint) ([]recipesentity.RecipeIngredient, error)
}

// shoppingUsecase は買い物リスト操作のビジネスロジックを提供します。
type shoppingUsecase struct {
	repo    ShoppingRepository
	recipes MissingLister
}

// NewShoppingUsecase はshoppingUsecaseの新しいインスタンスを生成します。
func NewShoppingUsecase(repo ShoppingRepository, recipes MissingLister) *shoppingUsecase {
	return &shoppingUsecase{repo: repo, recipes: recipes}
}

// List はユーザーの買い物リストを返します。
func (u *shoppingUsecase) List(ctx context.Context, userID uint) ([]entity.ShoppingItem, error) {
	return u.repo.List(ctx, userID)
}

// Add は買い物リストにアイテムを追加します。IDはUUIDで採番されます。
func (u *shoppingUsecase) Add(ctx context.Context, userID uint, name, category, quantity, unit string) (*entity.ShoppingItem, error) {
	item := entity.ShoppingItem{
		ID:       uuid.NewString(),
		Name:     name,
		Category: category,
		Quantity: quantity,
		Unit:     unit,
		Checked:  false,
	}
	if err := u.repo.Put(ctx, userID, item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update は既存アイテムのフィールドを更新します。チェック状態は維持されます。
func (u *shoppingUsecase) Update(ctx context.Context, userID uint, id, name, category, quantity, unit string) (*entity.ShoppingItem, error) {
	item, err := u.repo.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	item.Name = name
	item.Category = category
	item.Quantity = quantity
	item.Unit = unit
	if err := u.repo.Put(ctx, userID, *item); err != nil {
		return nil, err
	}
	return item, nil
}

// Toggle はアイテムのチェック状態を反転します。
func (u *shoppingUsecase) Toggle(ctx context.Context, userID uint, id string) (*entity.ShoppingItem, error) {
	item, err := u.repo.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	item.Checked = !item.Checked
	if err := u.repo.Put(ctx, userID, *item); err != nil {
		return nil, err
	}
	return item, nil
}

// Remove はアイテムを削除します。
func (u *shoppingUsecase) Remove(ctx context.Context, userID uint, id string) error {
	return u.repo.Delete(ctx, userID, id)
}

// Clear は買い物リストを空にします。checkedOnlyがtrueの場合はチェック済みのみ削除します。
func (u *shoppingUsecase) Clear(ctx context.Context, userID uint, checkedOnly bool) error {
	return u.repo.Clear(ctx, userID, checkedOnly)
}

// AddMissingFromRecipe はレシピの不足材料をまとめて買い物リストに追加し、
// 追加されたアイテムを返します。既にリストにある名前の材料は重複追加しません。
func (u *shoppingUsecase) AddMissingFromRecipe(ctx context.Context, userID, recipeID uint) ([]entity.ShoppingItem, error) {
	missing, err := u.recipes.Missing(ctx, userID, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve missing ingredients: %w", err)
	}

	existing, err := u.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	onList := make(map[string]struct{}, len(existing))
	for _, it := range existing {
		onList[it.Name] = struct{}{}
	}

	added := make([]entity.ShoppingItem, 0, len(missing))
	for _, ing := range missing {
		if _, ok := onList[ing.Name]; ok {
			continue
		}
		item := entity.ShoppingItem{
			ID:       uuid.NewString(),
			Name:     ing.Name,
			Category: "Other",
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		}
		if err := u.repo.Put(ctx, userID, item); err != nil {
			return nil, err
		}
		added = append(added, item)
	}
	return added, nil
}
