// Package entity はmealplanフィーチャーのドメインモデルを定義します。
package entity

import "time"

// MealEntry は1日の献立のうち1つのスロット（朝食・昼食など）を表します。
type MealEntry struct {
	Type     string `json:"type"`
	RecipeID uint   `json:"recipe_id"`
}

// MealPlan はユーザーの特定の日付の献立を表します。
// ユーザーと日付の組み合わせごとに最大1行です。
type MealPlan struct {
	ID        uint        `gorm:"primaryKey"`
	Date      time.Time   `gorm:"type:date;not null;uniqueIndex:idx_mealplan_user_date"`
	Meals     []MealEntry `gorm:"serializer:json"`
	UserID    uint        `gorm:"not null;uniqueIndex:idx_mealplan_user_date"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EntryFor は指定された食事区分のエントリを返します。
// 存在しない場合は2番目の戻り値がfalseになります。
func (p *MealPlan) EntryFor(mealType string) (MealEntry, bool) {
	for _, m := range p.Meals {
		if m.Type == mealType {
			return m, true
		}
	}
	return MealEntry{}, false
}

// SetEntry は指定された食事区分のエントリを追加または置き換えます。
func (p *MealPlan) SetEntry(e MealEntry) {
	for i, m := range p.Meals {
		if m.Type == e.Type {
			p.Meals[i] = e
			return
		}
	}
	p.Meals = append(p.Meals, e)
}

// RemoveEntry は指定された食事区分のエントリを削除し、
// 削除が行われたかどうかを返します。
func (p *MealPlan) RemoveEntry(mealType string) bool {
	for i, m := range p.Meals {
		if m.Type == mealType {
			p.Meals = append(p.Meals[:i], p.Meals[i+1:]...)
			return true
		}
	}
	return false
}

// TruncateToDay は日付を日単位（UTC）に正規化します。
// 同じ日の異なる時刻が別の献立行にならないようにするための不変条件です。
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
