package router

import (
	authhandler "kitchensync_backend/internal/feature/auth/transport/handler"
	mealplanhandler "kitchensync_backend/internal/feature/mealplan/transport/handler"
	pantryhandler "kitchensync_backend/internal/feature/pantry/transport/handler"
	scanhandler "kitchensync_backend/internal/feature/pantryscan/transport/handler"
	recipehandler "kitchensync_backend/internal/feature/recipes/transport/handler"
	shoppinghandler "kitchensync_backend/internal/feature/shoppinglist/transport/handler"
	"kitchensync_backend/internal/platform/http/handler"
	jwtmw "kitchensync_backend/internal/platform/jwt"

	"github.com/gin-gonic/gin"
)

// Handlers は全フィーチャーのHTTPハンドラーをまとめた依存グラフです。
// ScanはVision APIが構成されていない環境ではnilとなり、ルートを登録しません。
type Handlers struct {
	Auth     *authhandler.AuthHandler
	Pantry   *pantryhandler.PantryHandler
	Recipes  *recipehandler.RecipeHandler
	MealPlan *mealplanhandler.MealPlanHandler
	Shopping *shoppinghandler.ShoppingHandler
	Scan     *scanhandler.ScanHandler
}

// NewRouter は全エンドポイントを登録したGinエンジンを生成します。
func NewRouter(h Handlers, jwtSecret string) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/auth/register", h.Auth.Register)
	// ログイン（JWT 発行）
	r.POST("/auth/login", h.Auth.Login)

	// 認証必須のルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired(jwtSecret))
	{
		// パントリー
		auth.GET("/pantry", h.Pantry.List)
		auth.POST("/pantry", h.Pantry.Add)
		auth.PUT("/pantry/:id", h.Pantry.Update)
		auth.DELETE("/pantry/:id", h.Pantry.Remove)
		auth.DELETE("/pantry", h.Pantry.Clear)

		// レシピ
		auth.GET("/recipes", h.Recipes.List)
		auth.GET("/recipes/matching", h.Recipes.Matching)
		auth.POST("/recipes/suggest", h.Recipes.Suggest)
		auth.GET("/recipes/:id", h.Recipes.Get)
		auth.GET("/recipes/:id/missing", h.Recipes.Missing)
		auth.POST("/recipes", h.Recipes.Create)
		auth.PUT("/recipes/:id", h.Recipes.Update)
		auth.DELETE("/recipes/:id", h.Recipes.Delete)

		// 献立
		auth.GET("/mealplans", h.MealPlan.GetByDate)
		auth.GET("/mealplans/week", h.MealPlan.GetWeek)
		auth.PUT("/mealplans", h.MealPlan.AssignMeal)
		auth.DELETE("/mealplans", h.MealPlan.RemoveMeal)

		// 買い物リスト
		auth.GET("/shopping-list", h.Shopping.List)
		auth.POST("/shopping-list", h.Shopping.Add)
		auth.PUT("/shopping-list/:id", h.Shopping.Update)
		auth.PATCH("/shopping-list/:id/toggle", h.Shopping.Toggle)
		auth.DELETE("/shopping-list/:id", h.Shopping.Remove)
		auth.DELETE("/shopping-list", h.Shopping.Clear)
		auth.POST("/shopping-list/from-recipe/:id", h.Shopping.AddFromRecipe)

		// 食材写真スキャン（Vision API構成時のみ）
		if h.Scan != nil {
			auth.POST("/pantry/scan", h.Scan.Scan)
		}
	}

	return r
}
