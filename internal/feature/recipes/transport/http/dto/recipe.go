// Package dto はrecipesフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import "kitchensync_backend/internal/feature/recipes/domain/entity"

// IngredientDTO はレシピ材料のリクエスト/レスポンス表現です。
type IngredientDTO struct {
	Name        string   `json:"name" binding:"required"`
	Quantity    string   `json:"quantity"`
	Unit        string   `json:"unit"`
	Optional    bool     `json:"optional"`
	Substitutes []string `json:"substitutes,omitempty"`
}

// RecipeReq は/recipesへの作成・更新リクエストボディを表します。
type RecipeReq struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	Ingredients []IngredientDTO `json:"ingredients" binding:"required,min=1,dive"`
	Steps       []string        `json:"steps" binding:"required,min=1"`
	DietaryTags []string        `json:"dietary_tags"`
	MealTypes   []string        `json:"meal_types"`
	PrepTime    int             `json:"prep_time" binding:"gte=0"`
	CookTime    int             `json:"cook_time" binding:"gte=0"`
	Servings    int             `json:"servings" binding:"gte=0"`
}

// RecipeRes は1件のレシピのレスポンスを表します。
type RecipeRes struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
	Ingredients []IngredientDTO `json:"ingredients"`
	Steps       []string        `json:"steps"`
	DietaryTags []string        `json:"dietary_tags,omitempty"`
	MealTypes   []string        `json:"meal_types,omitempty"`
	PrepTime    int             `json:"prep_time"`
	CookTime    int             `json:"cook_time"`
	Servings    int             `json:"servings"`
	IsCatalog   bool            `json:"is_catalog"`
}

// SuggestRes はAIレシピ提案のレスポンスを表します。
type SuggestRes struct {
	Suggestion string `json:"suggestion"`
}

// ToEntity はリクエストをドメインエンティティに変換します。
func (r *RecipeReq) ToEntity() *entity.Recipe {
	ings := make([]entity.RecipeIngredient, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		ings = append(ings, entity.RecipeIngredient{
			Name:        ing.Name,
			Quantity:    ing.Quantity,
			Unit:        ing.Unit,
			Optional:    ing.Optional,
			Substitutes: ing.Substitutes,
		})
	}
	return &entity.Recipe{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Ingredients: ings,
		Steps:       r.Steps,
		DietaryTags: r.DietaryTags,
		MealTypes:   r.MealTypes,
		PrepTime:    r.PrepTime,
		CookTime:    r.CookTime,
		Servings:    r.Servings,
	}
}

// FromEntity はドメインエンティティをレスポンスに変換します。
func FromEntity(e *entity.Recipe) RecipeRes {
	ings := make([]IngredientDTO, 0, len(e.Ingredients))
	for _, ing := range e.Ingredients {
		ings = append(ings, IngredientDTO{
			Name:        ing.Name,
			Quantity:    ing.Quantity,
			Unit:        ing.Unit,
			Optional:    ing.Optional,
			Substitutes: ing.Substitutes,
		})
	}
	return RecipeRes{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		ImageURL:    e.ImageURL,
		Ingredients: ings,
		Steps:       e.Steps,
		DietaryTags: e.DietaryTags,
		MealTypes:   e.MealTypes,
		PrepTime:    e.PrepTime,
		CookTime:    e.CookTime,
		Servings:    e.Servings,
		IsCatalog:   e.IsCatalog,
	}
}
