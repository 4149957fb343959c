// Package adapters はmealplanフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"kitchensync_backend/internal/feature/mealplan/domain/entity"
	"kitchensync_backend/internal/feature/mealplan/usecase"
)

// mealPlanGorm はMealPlanRepositoryインターフェースのGORM実装です。
type mealPlanGorm struct {
	db *gorm.DB
}

// mealPlanGormがMealPlanRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MealPlanRepository = (*mealPlanGorm)(nil)

// NewMealPlanGorm は指定されたgorm.DB接続でmealPlanGormの新しいインスタンスを生成します。
func NewMealPlanGorm(db *gorm.DB) *mealPlanGorm {
	return &mealPlanGorm{db: db}
}

// FindByDate はユーザーの指定日の献立を取得します。
func (r *mealPlanGorm) FindByDate(ctx context.Context, userID uint, date time.Time) (*entity.MealPlan, error) {
	var plan entity.MealPlan
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, entity.TruncateToDay(date)).
		First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// FindRange は[from, to)の範囲の献立を日付順に返します。
func (r *mealPlanGorm) FindRange(ctx context.Context, userID uint, from, to time.Time) ([]entity.MealPlan, error) {
	var plans []entity.MealPlan
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, entity.TruncateToDay(from), entity.TruncateToDay(to)).
		Order("date ASC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// Save は献立を挿入または更新します。
func (r *mealPlanGorm) Save(ctx context.Context, plan *entity.MealPlan) error {
	plan.Date = entity.TruncateToDay(plan.Date)
	return r.db.WithContext(ctx).Save(plan).Error
}

// Delete は献立の行を削除します。所有者の一致を条件に含めます。
func (r *mealPlanGorm) Delete(ctx context.Context, userID uint, id uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entity.MealPlan{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrPlanNotFound
	}
	return nil
}
