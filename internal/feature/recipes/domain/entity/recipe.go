// Package entity defines the domain models for the recipes feature.
package entity

import "time"

// MealTypes は献立スロットとして許可される食事区分の一覧です。
var MealTypes = []string{"Breakfast", "Lunch", "Dinner", "Snack", "Dessert"}

// RecipeIngredient はレシピ内の1つの材料を表します。
// レシピのJSONカラム内に埋め込まれ、独立したテーブルは持ちません。
type RecipeIngredient struct {
	Name        string   `json:"name"`
	Quantity    string   `json:"quantity"`
	Unit        string   `json:"unit"`
	Optional    bool     `json:"optional"`
	Substitutes []string `json:"substitutes,omitempty"`
}

// Recipe represents a recipe in the system, either a curated catalog entry
// or a user-authored one. Ingredient and step lists are stored as JSON columns.
type Recipe struct {
	ID          uint               `gorm:"primaryKey"`
	Title       string             `gorm:"size:200;not null"`
	Description string             `gorm:"type:text"`
	ImageURL    string             `gorm:"size:500"`
	Ingredients []RecipeIngredient `gorm:"serializer:json"`
	Steps       []string           `gorm:"serializer:json"`
	DietaryTags []string           `gorm:"serializer:json"`
	MealTypes   []string           `gorm:"serializer:json"`
	PrepTime    int                // minutes
	CookTime    int                // minutes
	Servings    int
	IsCatalog   bool `gorm:"not null;default:false;index"`
	UserID      uint `gorm:"index"` // 0 for catalog recipes
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RequiredIngredients はレシピの必須（optionalでない）材料のみを返します。
func (r *Recipe) RequiredIngredients() []RecipeIngredient {
	out := make([]RecipeIngredient, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		if !ing.Optional {
			out = append(out, ing)
		}
	}
	return out
}

// ValidMealType は食事区分が許可された値かどうかを返します。
func ValidMealType(m string) bool {
	for _, v := range MealTypes {
		if v == m {
			return true
		}
	}
	return false
}
