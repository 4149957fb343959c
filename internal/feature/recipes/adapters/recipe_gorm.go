// Package adapters はrecipesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"kitchensync_backend/internal/feature/recipes/domain/entity"
	"kitchensync_backend/internal/feature/recipes/usecase"
)

// recipeGorm はRecipeRepositoryインターフェースのGORM実装です。
type recipeGorm struct {
	db *gorm.DB
}

// recipeGormがRecipeRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.RecipeRepository = (*recipeGorm)(nil)

// NewRecipeGorm は指定されたgorm.DB接続でrecipeGormの新しいインスタンスを生成します。
func NewRecipeGorm(db *gorm.DB) *recipeGorm {
	return &recipeGorm{db: db}
}

// List はカタログレシピとユーザー自身のレシピを返します。
// JSONカラムに対する絞り込みはドライバ間で互換性がないため、
// meal_type/dietary_tagのフィルタはアプリケーション側で適用します。
func (r *recipeGorm) List(ctx context.Context, userID uint, f usecase.ListFilter) ([]entity.Recipe, error) {
	var recipes []entity.Recipe
	if err := r.db.WithContext(ctx).
		Where("is_catalog = ? OR user_id = ?", true, userID).
		Order("title ASC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}

	if f.MealType == "" && f.DietaryTag == "" {
		return recipes, nil
	}
	out := make([]entity.Recipe, 0, len(recipes))
	for _, rec := range recipes {
		if f.MealType != "" && !contains(rec.MealTypes, f.MealType) {
			continue
		}
		if f.DietaryTag != "" && !contains(rec.DietaryTags, f.DietaryTag) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// FindByID はIDでレシピを取得します。
func (r *recipeGorm) FindByID(ctx context.Context, id uint) (*entity.Recipe, error) {
	var recipe entity.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// Create はレシピをデータベースに追加します。
func (r *recipeGorm) Create(ctx context.Context, recipe *entity.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

// Update は既存レシピを全カラム保存で更新します。
func (r *recipeGorm) Update(ctx context.Context, recipe *entity.Recipe) error {
	res := r.db.WithContext(ctx).Save(recipe)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrRecipeNotFound
	}
	return nil
}

// Delete はレシピを削除します。
func (r *recipeGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Recipe{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrRecipeNotFound
	}
	return nil
}

// UpsertCatalog はカタログレシピをタイトルをキーに冪等に投入します。
func (r *recipeGorm) UpsertCatalog(ctx context.Context, recipes []entity.Recipe) error {
	for i := range recipes {
		recipes[i].IsCatalog = true
		recipes[i].UserID = 0

		var existing entity.Recipe
		err := r.db.WithContext(ctx).
			Where("is_catalog = ? AND title = ?", true, recipes[i].Title).
			First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := r.db.WithContext(ctx).Create(&recipes[i]).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			recipes[i].ID = existing.ID
			recipes[i].CreatedAt = existing.CreatedAt
			if err := r.db.WithContext(ctx).Save(&recipes[i]).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func contains(xs []string, v string) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
