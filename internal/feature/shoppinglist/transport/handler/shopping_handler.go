// Package handler はshoppinglistフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	recipesusecase "kitchensync_backend/internal/feature/recipes/usecase"
	"kitchensync_backend/internal/feature/shoppinglist/domain/entity"
	"kitchensync_backend/internal/feature/shoppinglist/transport/http/dto"
	"kitchensync_backend/internal/feature/shoppinglist/usecase"
	jwtmw "kitchensync_backend/internal/platform/jwt"
)

// ShoppingUsecase は買い物リスト操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type ShoppingUsecase interface {
	List(ctx context.Context, userID uint) ([]entity.ShoppingItem, error)
	Add(ctx context.Context, userID uint, name, category, quantity, unit string) (*entity.ShoppingItem, error)
	Update(ctx context.Context, userID uint, id, name, category, quantity, unit string) (*entity.ShoppingItem, error)
	Toggle(ctx context.Context, userID uint, id string) (*entity.ShoppingItem, error)
	Remove(ctx context.Context, userID uint, id string) error
	Clear(ctx context.Context, userID uint, checkedOnly bool) error
	AddMissingFromRecipe(ctx context.Context, userID, recipeID uint) ([]entity.ShoppingItem, error)
}

// ShoppingHandler は買い物リスト操作のHTTPリクエストを処理します。
type ShoppingHandler struct {
	uc ShoppingUsecase
}

// NewShoppingHandler はShoppingHandlerの新しいインスタンスを生成します。
func NewShoppingHandler(uc ShoppingUsecase) *ShoppingHandler {
	return &ShoppingHandler{uc: uc}
}

// List はユーザーの買い物リストを返します。
func (h *ShoppingHandler) List(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	items, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		slog.Error("shopping list load failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load shopping list"})
		return
	}
	c.JSON(http.StatusOK, toResList(items))
}

// Add は買い物リストにアイテムを追加します。
func (h *ShoppingHandler) Add(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var req dto.ShoppingItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("shopping add validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	item, err := h.uc.Add(c.Request.Context(), userID, req.Name, req.Category, req.Quantity, req.Unit)
	if err != nil {
		slog.Error("shopping add failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add item"})
		return
	}
	c.JSON(http.StatusCreated, dto.FromEntity(*item))
}

// Update は既存アイテムのフィールドを更新します。
func (h *ShoppingHandler) Update(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var req dto.ShoppingItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	item, err := h.uc.Update(c.Request.Context(), userID, c.Param("id"), req.Name, req.Category, req.Quantity, req.Unit)
	if err != nil {
		if errors.Is(err, usecase.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		slog.Error("shopping update failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update item"})
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(*item))
}

// Toggle はアイテムのチェック状態を反転します。
func (h *ShoppingHandler) Toggle(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	item, err := h.uc.Toggle(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		slog.Error("shopping toggle failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle item"})
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(*item))
}

// Remove はアイテムを削除します。
func (h *ShoppingHandler) Remove(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	if err := h.uc.Remove(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		slog.Error("shopping remove failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove item"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Clear は買い物リストを空にします。checked=true クエリでチェック済みのみ削除します。
func (h *ShoppingHandler) Clear(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	checkedOnly := c.Query("checked") == "true"
	if err := h.uc.Clear(c.Request.Context(), userID, checkedOnly); err != nil {
		slog.Error("shopping clear failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear shopping list"})
		return
	}
	c.Status(http.StatusNoContent)
}

// AddFromRecipe はレシピの不足材料をまとめて買い物リストに追加します。
func (h *ShoppingHandler) AddFromRecipe(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	recipeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	added, err := h.uc.AddMissingFromRecipe(c.Request.Context(), userID, uint(recipeID))
	if err != nil {
		if errors.Is(err, recipesusecase.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		slog.Error("add from recipe failed", "error", err, "user_id", userID, "recipe_id", recipeID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add ingredients"})
		return
	}
	c.JSON(http.StatusCreated, toResList(added))
}

func toResList(items []entity.ShoppingItem) []dto.ShoppingItemRes {
	out := make([]dto.ShoppingItemRes, 0, len(items))
	for _, it := range items {
		out = append(out, dto.FromEntity(it))
	}
	return out
}
