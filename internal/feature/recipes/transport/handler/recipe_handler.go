// Package handler はrecipesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kitchensync_backend/internal/feature/recipes/domain/entity"
	"kitchensync_backend/internal/feature/recipes/transport/http/dto"
	"kitchensync_backend/internal/feature/recipes/usecase"
	jwtmw "kitchensync_backend/internal/platform/jwt"
)

// RecipeUsecase はレシピ操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type RecipeUsecase interface {
	List(ctx context.Context, userID uint, f usecase.ListFilter) ([]entity.Recipe, error)
	Get(ctx context.Context, id uint) (*entity.Recipe, error)
	Create(ctx context.Context, userID uint, recipe *entity.Recipe) error
	Update(ctx context.Context, userID uint, recipe *entity.Recipe) error
	Delete(ctx context.Context, userID, id uint) error
	Matching(ctx context.Context, userID uint, threshold float64) ([]entity.Recipe, error)
	Missing(ctx context.Context, userID, recipeID uint) ([]entity.RecipeIngredient, error)
	Suggest(ctx context.Context, userID uint) (string, error)
}

// RecipeHandler はレシピ操作のHTTPリクエストを処理します。
type RecipeHandler struct {
	uc RecipeUsecase
}

// NewRecipeHandler はRecipeHandlerの新しいインスタンスを生成します。
func NewRecipeHandler(uc RecipeUsecase) *RecipeHandler {
	return &RecipeHandler{uc: uc}
}

// List はカタログとユーザー自身のレシピ一覧を返します。
// meal_type / dietary_tag クエリパラメータで絞り込みできます。
func (h *RecipeHandler) List(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	f := usecase.ListFilter{
		MealType:   c.Query("meal_type"),
		DietaryTag: c.Query("dietary_tag"),
	}
	recipes, err := h.uc.List(c.Request.Context(), userID, f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toResList(recipes))
}

// Get は1件のレシピを返します。
func (h *RecipeHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	recipe, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		slog.Error("recipe get failed", "error", err, "recipe_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load recipe"})
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(recipe))
}

// Create は新しいユーザーレシピを登録します。
func (h *RecipeHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var req dto.RecipeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("recipe create validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	recipe := req.ToEntity()
	if err := h.uc.Create(c.Request.Context(), userID, recipe); err != nil {
		slog.Error("recipe create failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create recipe"})
		return
	}
	c.JSON(http.StatusCreated, dto.FromEntity(recipe))
}

// Update はユーザー所有のレシピを更新します。
func (h *RecipeHandler) Update(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req dto.RecipeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	recipe := req.ToEntity()
	recipe.ID = id
	if err := h.uc.Update(c.Request.Context(), userID, recipe); err != nil {
		// 所有関係を漏らさないため、非所有・非存在はどちらも404で返す
		if errors.Is(err, usecase.ErrRecipeNotFound) || errors.Is(err, usecase.ErrNotOwner) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		slog.Error("recipe update failed", "error", err, "user_id", userID, "recipe_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update recipe"})
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(recipe))
}

// Delete はユーザー所有のレシピを削除します。
func (h *RecipeHandler) Delete(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.uc.Delete(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, usecase.ErrRecipeNotFound) || errors.Is(err, usecase.ErrNotOwner) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		slog.Error("recipe delete failed", "error", err, "user_id", userID, "recipe_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete recipe"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Matching はパントリーの食材で作れるレシピ一覧を返します。
// threshold クエリパラメータ（0〜1、デフォルト0.7）で一致率を指定できます。
func (h *RecipeHandler) Matching(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	threshold := usecase.DefaultMatchThreshold
	if s := c.Query("threshold"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid threshold"})
			return
		}
		threshold = v
	}
	recipes, err := h.uc.Matching(c.Request.Context(), userID, threshold)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toResList(recipes))
}

// Missing はレシピの必須材料のうちパントリーに無いものを返します。
func (h *RecipeHandler) Missing(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	missing, err := h.uc.Missing(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, usecase.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		slog.Error("missing ingredients failed", "error", err, "user_id", userID, "recipe_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute missing ingredients"})
		return
	}
	out := make([]dto.IngredientDTO, 0, len(missing))
	for _, ing := range missing {
		out = append(out, dto.IngredientDTO{
			Name:        ing.Name,
			Quantity:    ing.Quantity,
			Unit:        ing.Unit,
			Optional:    ing.Optional,
			Substitutes: ing.Substitutes,
		})
	}
	c.JSON(http.StatusOK, out)
}

// Suggest はパントリーの内容からAIレシピ提案を生成します。
func (h *RecipeHandler) Suggest(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	suggestion, err := h.uc.Suggest(c.Request.Context(), userID)
	if err != nil {
		slog.Error("recipe suggestion failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to generate suggestion"})
		return
	}
	c.JSON(http.StatusOK, dto.SuggestRes{Suggestion: suggestion})
}

func toResList(recipes []entity.Recipe) []dto.RecipeRes {
	out := make([]dto.RecipeRes, 0, len(recipes))
	for i := range recipes {
		out = append(out, dto.FromEntity(&recipes[i]))
	}
	return out
}

func parseID(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	return uint(n), err
}
