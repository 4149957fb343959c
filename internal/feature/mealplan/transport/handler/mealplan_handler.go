// Package handler はmealplanフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kitchensync_backend/internal/feature/mealplan/domain/entity"
	"kitchensync_backend/internal/feature/mealplan/transport/http/dto"
	"kitchensync_backend/internal/feature/mealplan/usecase"
	recipesusecase "kitchensync_backend/internal/feature/recipes/usecase"
	jwtmw "kitchensync_backend/internal/platform/jwt"
)

// MealPlanUsecase は献立操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type MealPlanUsecase interface {
	GetByDate(ctx context.Context, userID uint, date time.Time) (*entity.MealPlan, error)
	GetWeek(ctx context.Context, userID uint, start time.Time) ([]entity.MealPlan, error)
	AssignMeal(ctx context.Context, userID uint, date time.Time, mealType string, recipeID uint) (*entity.MealPlan, error)
	RemoveMeal(ctx context.Context, userID uint, date time.Time, mealType string) error
}

// MealPlanHandler は献立操作のHTTPリクエストを処理します。
type MealPlanHandler struct {
	uc MealPlanUsecase
}

// NewMealPlanHandler はMealPlanHandlerの新しいインスタンスを生成します。
func NewMealPlanHandler(uc MealPlanUsecase) *MealPlanHandler {
	return &MealPlanHandler{uc: uc}
}

// GetByDate は指定日の献立を返します。date クエリパラメータ（YYYY-MM-DD）は必須です。
func (h *MealPlanHandler) GetByDate(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	date, err := dto.ParseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}
	plan, err := h.uc.GetByDate(c.Request.Context(), userID, date)
	if err != nil {
		slog.Error("meal plan lookup failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load meal plan"})
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(plan))
}

// GetWeek は開始日から7日分の献立を返します。
func (h *MealPlanHandler) GetWeek(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	start, err := dto.ParseDate(c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start, expected YYYY-MM-DD"})
		return
	}
	plans, err := h.uc.GetWeek(c.Request.Context(), userID, start)
	if err != nil {
		slog.Error("weekly meal plan lookup failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load meal plans"})
		return
	}
	out := make([]dto.MealPlanRes, 0, len(plans))
	for i := range plans {
		out = append(out, dto.FromEntity(&plans[i]))
	}
	c.JSON(http.StatusOK, out)
}

// AssignMeal は指定日の指定スロットにレシピを割り当てます。
func (h *MealPlanHandler) AssignMeal(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var req dto.AssignMealReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("assign meal validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}
	plan, err := h.uc.AssignMeal(c.Request.Context(), userID, date, req.MealType, req.RecipeID)
	if err != nil {
		if errors.Is(err, recipesusecase.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(plan))
}

// RemoveMeal は指定日の指定スロットの割り当てを解除します。
func (h *MealPlanHandler) RemoveMeal(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var req dto.RemoveMealReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}
	if err := h.uc.RemoveMeal(c.Request.Context(), userID, date, req.MealType); err != nil {
		if errors.Is(err, usecase.ErrPlanNotFound) || errors.Is(err, usecase.ErrMealNotPlanned) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no meal planned for this slot"})
			return
		}
		slog.Error("remove meal failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove meal"})
		return
	}
	c.Status(http.StatusNoContent)
}
