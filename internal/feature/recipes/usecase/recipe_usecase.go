// Package usecase はrecipesフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"kitchensync_backend/internal/feature/recipes/domain/entity"
)

var (
	// ErrRecipeNotFound はレシピが存在しない場合に返されます。
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrNotOwner は他ユーザーのレシピを変更しようとした場合に返されます。
	// ハンドラー層では404に変換され、所有関係は外部に漏らしません。
	ErrNotOwner = errors.New("recipe is not owned by the user")
)

// DefaultMatchThreshold はパントリーマッチングの既定の一致率です。
const DefaultMatchThreshold = 0.7

// ListFilter はレシピ一覧の絞り込み条件です。
type ListFilter struct {
	MealType   string
	DietaryTag string
}

// RecipeRepository はレシピの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type RecipeRepository interface {
	// List はカタログレシピとユーザー自身のレシピを返します。
	List(ctx context.Context, userID uint, f ListFilter) ([]entity.Recipe, error)

	// FindByID はIDでレシピを取得します。存在しない場合、ErrRecipeNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Recipe, error)

	// Create は新しいレシピを永続化します。
	Create(ctx context.Context, recipe *entity.Recipe) error

	// Update は既存レシピを全体置換で更新します。
	Update(ctx context.Context, recipe *entity.Recipe) error

	// Delete はレシピを削除します。存在しない場合、ErrRecipeNotFoundを返します。
	Delete(ctx context.Context, id uint) error

	// UpsertCatalog はカタログレシピをタイトルをキーに冪等に投入します。
	UpsertCatalog(ctx context.Context, recipes []entity.Recipe) error
}

// PantryReader はマッチング用にパントリーの食材名を参照します。
// pantryフィーチャーのアダプターが実装を提供します。
type PantryReader interface {
	// ListNames はユーザーのパントリーにある食材名（小文字）を返します。
	ListNames(ctx context.Context, userID uint) ([]string, error)
}

// RecipeSuggester は手持ちの食材からレシピ提案文を生成します。
type RecipeSuggester interface {
	// Suggest は食材リストからレシピ提案を生成します。
	Suggest(ctx context.Context, ingredients []string) (string, error)
}

// recipeUsecase はレシピ操作のビジネスロジックを提供します。
type recipeUsecase struct {
	repo      RecipeRepository
	pantry    PantryReader
	suggester RecipeSuggester
}

// NewRecipeUsecase はrecipeUsecaseの新しいインスタンスを生成します。
// suggesterはnil可（その場合Suggestはエラーを返します）。
func NewRecipeUsecase(repo RecipeRepository, pantry PantryReader, suggester RecipeSuggester) *recipeUsecase {
	return &recipeUsecase{repo: repo, pantry: pantry, suggester: suggester}
}

// List はカタログとユーザー自身のレシピを返します。
func (u *recipeUsecase) List(ctx context.Context, userID uint, f ListFilter) ([]entity.Recipe, error) {
	if f.MealType != "" && !entity.ValidMealType(f.MealType) {
		return nil, fmt.Errorf("unknown meal type %q", f.MealType)
	}
	return u.repo.List(ctx, userID, f)
}

// Get はIDでレシピを取得します。
func (u *recipeUsecase) Get(ctx context.Context, id uint) (*entity.Recipe, error) {
	return u.repo.FindByID(ctx, id)
}

// Create はユーザーの新しいレシピを登録します。
func (u *recipeUsecase) Create(ctx context.Context, userID uint, recipe *entity.Recipe) error {
	recipe.ID = 0
	recipe.UserID = userID
	recipe.IsCatalog = false
	return u.repo.Create(ctx, recipe)
}

// Update はユーザー所有のレシピを更新します。
func (u *recipeUsecase) Update(ctx context.Context, userID uint, recipe *entity.Recipe) error {
	existing, err := u.repo.FindByID(ctx, recipe.ID)
	if err != nil {
		return err
	}
	if existing.IsCatalog || existing.UserID != userID {
		return ErrNotOwner
	}
	recipe.UserID = userID
	recipe.IsCatalog = false
	return u.repo.Update(ctx, recipe)
}

// Delete はユーザー所有のレシピを削除します。
func (u *recipeUsecase) Delete(ctx context.Context, userID, id uint) error {
	existing, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.IsCatalog || existing.UserID != userID {
		return ErrNotOwner
	}
	return u.repo.Delete(ctx, id)
}

// Matching はユーザーのパントリーで作れるレシピを返します。
// 必須（optionalでない）材料のうちパントリーにある割合がthreshold以上のものが対象です。
func (u *recipeUsecase) Matching(ctx context.Context, userID uint, threshold float64) ([]entity.Recipe, error) {
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("threshold must be between 0 and 1")
	}
	pantryNames, err := u.pantry.ListNames(ctx, userID)
	if err != nil {
		return nil, err
	}
	recipes, err := u.repo.List(ctx, userID, ListFilter{})
	if err != nil {
		return nil, err
	}

	out := make([]entity.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if matchRatio(&r, pantryNames) >= threshold {
			out = append(out, r)
		}
	}
	return out, nil
}

// Missing はレシピの必須材料のうちパントリーに無いものを返します。
func (u *recipeUsecase) Missing(ctx context.Context, userID, recipeID uint) ([]entity.RecipeIngredient, error) {
	recipe, err := u.repo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	pantryNames, err := u.pantry.ListNames(ctx, userID)
	if err != nil {
		return nil, err
	}

	missing := make([]entity.RecipeIngredient, 0)
	for _, ing := range recipe.RequiredIngredients() {
		if !hasIngredient(pantryNames, ing.Name) {
			missing = append(missing, ing)
		}
	}
	return missing, nil
}

// Suggest はユーザーのパントリーの内容からAIレシピ提案を生成します。
func (u *recipeUsecase) Suggest(ctx context.Context, userID uint) (string, error) {
	if u.suggester == nil {
		return "", errors.New("recipe suggestion is not configured")
	}
	names, err := u.pantry.ListNames(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", errors.New("pantry is empty")
	}
	suggestion, err := u.suggester.Suggest(ctx, names)
	if err != nil {
		return "", fmt.Errorf("recipe suggester failed: %w", err)
	}
	return suggestion, nil
}

// matchRatio は必須材料のうちパントリーにある割合を返します。
// 必須材料が無いレシピは1.0（常にマッチ）とみなします。
func matchRatio(r *entity.Recipe, pantryNames []string) float64 {
	required := r.RequiredIngredients()
	if len(required) == 0 {
		return 1.0
	}
	matched := 0
	for _, ing := range required {
		if hasIngredient(pantryNames, ing.Name) {
			matched++
		}
	}
	return float64(matched) / float64(len(required))
}

// hasIngredient は材料名がパントリーにあるか判定します。
// どちらかの名前がもう一方を含む場合に一致とみなします（大文字小文字は無視）。
func hasIngredient(pantryNames []string, ingredient string) bool {
	ing := strings.ToLower(strings.TrimSpace(ingredient))
	if ing == "" {
		return false
	}
	for _, p := range pantryNames {
		if strings.Contains(p, ing) || strings.Contains(ing, p) {
			return true
		}
	}
	return false
}
