// Package dto はmealplanフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import (
	"time"

	"kitchensync_backend/internal/feature/mealplan/domain/entity"
)

// DateLayout は日付パラメータの書式です。
const DateLayout = "2006-01-02"

// AssignMealReq は献立スロットの割り当てリクエストを表します。
type AssignMealReq struct {
	Date     string `json:"date" binding:"required"`
	MealType string `json:"meal_type" binding:"required"`
	RecipeID uint   `json:"recipe_id" binding:"required"`
}

// RemoveMealReq は献立スロットの解除リクエストを表します。
type RemoveMealReq struct {
	Date     string `json:"date" binding:"required"`
	MealType string `json:"meal_type" binding:"required"`
}

// MealEntryRes は1つの献立スロットのレスポンスを表します。
type MealEntryRes struct {
	Type     string `json:"type"`
	RecipeID uint   `json:"recipe_id"`
}

// MealPlanRes は1日分の献立のレスポンスを表します。
type MealPlanRes struct {
	Date  string         `json:"date"`
	Meals []MealEntryRes `json:"meals"`
}

// FromEntity はドメインエンティティをレスポンスに変換します。
func FromEntity(p *entity.MealPlan) MealPlanRes {
	meals := make([]MealEntryRes, 0, len(p.Meals))
	for _, m := range p.Meals {
		meals = append(meals, MealEntryRes{Type: m.Type, RecipeID: m.RecipeID})
	}
	return MealPlanRes{
		Date:  p.Date.Format(DateLayout),
		Meals: meals,
	}
}

// ParseDate は日付パラメータをUTCの日付として解釈します。
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
