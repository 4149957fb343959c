package main

import (
	"context"
	"log"
	"log/slog"

	redisv9 "github.com/redis/go-redis/v9"

	"kitchensync_backend/internal/app/di"
	"kitchensync_backend/internal/app/router"
	authadapters "kitchensync_backend/internal/feature/auth/adapters"
	authhandler "kitchensync_backend/internal/feature/auth/transport/handler"
	authusecase "kitchensync_backend/internal/feature/auth/usecase"
	mealplanadapters "kitchensync_backend/internal/feature/mealplan/adapters"
	mealplanhandler "kitchensync_backend/internal/feature/mealplan/transport/handler"
	mealplanusecase "kitchensync_backend/internal/feature/mealplan/usecase"
	pantryadapters "kitchensync_backend/internal/feature/pantry/adapters"
	pantryhandler "kitchensync_backend/internal/feature/pantry/transport/handler"
	pantryusecase "kitchensync_backend/internal/feature/pantry/usecase"
	scanhandler "kitchensync_backend/internal/feature/pantryscan/transport/handler"
	scanusecase "kitchensync_backend/internal/feature/pantryscan/usecase"
	recipeadapters "kitchensync_backend/internal/feature/recipes/adapters"
	recipehandler "kitchensync_backend/internal/feature/recipes/transport/handler"
	recipeusecase "kitchensync_backend/internal/feature/recipes/usecase"
	shoppinghandler "kitchensync_backend/internal/feature/shoppinglist/transport/handler"
	shoppingusecase "kitchensync_backend/internal/feature/shoppinglist/usecase"
	"kitchensync_backend/internal/platform/cache"
	"kitchensync_backend/internal/platform/config"
	platformdb "kitchensync_backend/internal/platform/db"
	jwtmw "kitchensync_backend/internal/platform/jwt"
	platformredis "kitchensync_backend/internal/platform/redis"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// db（Open内でマイグレーションまで実行）
	db, err := platformdb.Open(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		log.Fatal(err)
	}

	// Redis
	var rdb *redisv9.Client
	if cfg.RedisAddr == "" {
		slog.Warn("REDIS_ADDR not set. Running without cache.")
	} else if tmp, err := platformredis.NewClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
		slog.Warn("Redis unavailable. Running without cache.", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("Failed to close Redis client", "error", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	pantryRepo := pantryadapters.NewPantryGorm(db)
	recipeRepo := recipeadapters.NewRecipeGorm(db)
	mealPlanRepo := mealplanadapters.NewMealPlanGorm(db)
	shoppingRepo := di.NewShoppingRepository(rdb, db)

	// レシピ一覧をRedisキャッシュでラップ
	cachedRecipeRepo := cache.NewCachingRecipeRepository(rdb, 0, recipeRepo, "recipes")

	// 外部API（未構成ならnilで縮退運転）
	suggester := di.NewRecipeSuggester(ctx)
	detector := di.NewLabelDetector(ctx)

	// Usecase
	issuer := jwtmw.NewIssuer(cfg.JWTSecret, authusecase.TokenTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, issuer, cfg.BcryptCost)
	pantryUC := pantryusecase.NewPantryUsecase(pantryRepo)
	recipeUC := recipeusecase.NewRecipeUsecase(cachedRecipeRepo, pantryRepo, suggester)
	mealPlanUC := mealplanusecase.NewMealPlanUsecase(mealPlanRepo, recipeUC)
	shoppingUC := shoppingusecase.NewShoppingUsecase(shoppingRepo, recipeUC)

	// Handler
	h := router.Handlers{
		Auth:     authhandler.NewAuthHandler(authUC),
		Pantry:   pantryhandler.NewPantryHandler(pantryUC),
		Recipes:  recipehandler.NewRecipeHandler(recipeUC),
		MealPlan: mealplanhandler.NewMealPlanHandler(mealPlanUC),
		Shopping: shoppinghandler.NewShoppingHandler(shoppingUC),
	}
	if detector != nil {
		h.Scan = scanhandler.NewScanHandler(scanusecase.NewScanUsecase(detector))
	}

	// ルータ生成
	r := router.NewRouter(h, cfg.JWTSecret)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
