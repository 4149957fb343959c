// Package usecase はmealplanフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kitchensync_backend/internal/feature/mealplan/domain/entity"
	recipesentity "kitchensync_backend/internal/feature/recipes/domain/entity"
)

var (
	// ErrPlanNotFound は指定日の献立が存在しない場合にリポジトリが返します。
	ErrPlanNotFound = errors.New("meal plan not found")

	// ErrMealNotPlanned は指定スロットに献立が無い場合に返されます。
	ErrMealNotPlanned = errors.New("no meal planned for this slot")
)

// MealPlanRepository は献立の永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type MealPlanRepository interface {
	// FindByDate はユーザーの指定日の献立を取得します。
	// 存在しない場合、ErrPlanNotFoundを返します。
	FindByDate(ctx context.Context, userID uint, date time.Time) (*entity.MealPlan, error)

	// FindRange は[from, to)の範囲の献立を日付順に返します。
	FindRange(ctx context.Context, userID uint, from, to time.Time) ([]entity.MealPlan, error)

	// Save は献立を挿入または更新します。
	Save(ctx context.Context, plan *entity.MealPlan) error

	// Delete は献立の行を削除します。
	Delete(ctx context.Context, userID uint, id uint) error
}

// RecipeChecker は献立に割り当てるレシピの存在確認を行います。
// recipesフィーチャーが実装を提供します。
type RecipeChecker interface {
	Get(ctx context.Context, id uint) (*recipesentity.Recipe, error)
}

// mealPlanUsecase は献立操作のビジネスロジックを提供します。
type mealPlanUsecase struct {
	repo    MealPlanRepository
	recipes RecipeChecker
}

// NewMealPlanUsecase はmealPlanUsecaseの新しいインスタンスを生成します。
func NewMealPlanUsecase(repo MealPlanRepository, recipes RecipeChecker) *mealPlanUsecase {
	return &mealPlanUsecase{repo: repo, recipes: recipes}
}

// GetByDate はユーザーの指定日の献立を返します。
// 献立が無い日は空のプラン（Mealsが空）を返します。
func (u *mealPlanUsecase) GetByDate(ctx context.Context, userID uint, date time.Time) (*entity.MealPlan, error) {
	day := entity.TruncateToDay(date)
	plan, err := u.repo.FindByDate(ctx, userID, day)
	if errors.Is(err, ErrPlanNotFound) {
		return &entity.MealPlan{Date: day, UserID: userID, Meals: []entity.MealEntry{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// GetWeek は開始日から7日分の献立を返します。献立の無い日は空のプランで埋めます。
func (u *mealPlanUsecase) GetWeek(ctx context.Context, userID uint, start time.Time) ([]entity.MealPlan, error) {
	from := entity.TruncateToDay(start)
	to := from.AddDate(0, 0, 7)

	plans, err := u.repo.FindRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]entity.MealPlan, len(plans))
	for _, p := range plans {
		byDate[p.Date.Format("2006-01-02")] = p
	}

	week := make([]entity.MealPlan, 0, 7)
	for i := 0; i < 7; i++ {
		day := from.AddDate(0, 0, i)
		if p, ok := byDate[day.Format("2006-01-02")]; ok {
			week = append(week, p)
		} else {
			week = append(week, entity.MealPlan{Date: day, UserID: userID, Meals: []entity.MealEntry{}})
		}
	}
	return week, nil
}

// AssignMeal は指定日の指定スロットにレシピを割り当てます。
// その日の献立行が無ければ作成し、同じスロットの既存エントリは置き換えます。
func (u *mealPlanUsecase) AssignMeal(ctx context.Context, userID uint, date time.Time, mealType string, recipeID uint) (*entity.MealPlan, error) {
	if !recipesentity.ValidMealType(mealType) {
		return nil, fmt.Errorf("unknown meal type %q", mealType)
	}
	// レシピの存在確認（消えたレシピを献立に載せない）
	if _, err := u.recipes.Get(ctx, recipeID); err != nil {
		return nil, fmt.Errorf("recipe %d: %w", recipeID, err)
	}

	day := entity.TruncateToDay(date)
	plan, err := u.repo.FindByDate(ctx, userID, day)
	if errors.Is(err, ErrPlanNotFound) {
		plan = &entity.MealPlan{Date: day, UserID: userID}
	} else if err != nil {
		return nil, err
	}

	plan.SetEntry(entity.MealEntry{Type: mealType, RecipeID: recipeID})
	if err := u.repo.Save(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// RemoveMeal は指定日の指定スロットの割り当てを解除します。
// 最後のスロットを外した場合はその日の献立行ごと削除します。
func (u *mealPlanUsecase) RemoveMeal(ctx context.Context, userID uint, date time.Time, mealType string) error {
	day := entity.TruncateToDay(date)
	plan, err := u.repo.FindByDate(ctx, userID, day)
	if err != nil {
		return err
	}
	if !plan.RemoveEntry(mealType) {
		return ErrMealNotPlanned
	}
	if len(plan.Meals) == 0 {
		return u.repo.Delete(ctx, userID, plan.ID)
	}
	return u.repo.Save(ctx, plan)
}
