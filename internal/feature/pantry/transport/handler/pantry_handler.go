// Package handler はpantryフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kitchensync_backend/internal/feature/pantry/domain/entity"
	"kitchensync_backend/internal/feature/pantry/transport/http/dto"
	"kitchensync_backend/internal/feature/pantry/usecase"
	jwtmw "kitchensync_backend/internal/platform/jwt"
)

// PantryUsecase はパントリー操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type PantryUsecase interface {
	List(ctx context.Context, userID uint, category string) ([]entity.PantryItem, error)
	Add(ctx context.Context, userID uint, name, category, quantity, unit string) (*entity.PantryItem, error)
	Update(ctx context.Context, userID, id uint, name, category, quantity, unit string) (*entity.PantryItem, error)
	Remove(ctx context.Context, userID, id uint) error
	Clear(ctx context.Context, userID uint) error
}

// PantryHandler はパントリー操作のHTTPリクエストを処理します。
type PantryHandler struct {
	uc PantryUsecase
}

// NewPantryHandler はPantryHandlerの新しいインスタンスを生成します。
func NewPantryHandler(uc PantryUsecase) *PantryHandler {
	return &PantryHandler{uc: uc}
}

// List はユーザーのパントリーアイテム一覧を返します。
// クエリパラメータ category で絞り込みできます。
func (h *PantryHandler) List(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	items, err := h.uc.List(c.Request.Context(), userID, c.Query("category"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.PantryItemRes, 0, len(items))
	for _, it := range items {
		out = append(out, toRes(it))
	}
	c.JSON(http.StatusOK, out)
}

// Add はパントリーに食材を追加します。
func (h *PantryHandler) Add(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var req dto.PantryItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("pantry add validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	item, err := h.uc.Add(c.Request.Context(), userID, req.Name, req.Category, req.Quantity, req.Unit)
	if err != nil {
		slog.Error("pantry add failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add pantry item"})
		return
	}
	c.JSON(http.StatusCreated, toRes(*item))
}

// Update はパントリーアイテムを更新します。
func (h *PantryHandler) Update(c *gin.Context) {
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
	var req dto.PantryItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	item, err := h.uc.Update(c.Request.Context(), userID, id, req.Name, req.Category, req.Quantity, req.Unit)
	if err != nil {
		if errors.Is(err, usecase.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "pantry item not found"})
			return
		}
		slog.Error("pantry update failed", "error", err, "user_id", userID, "item_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update pantry item"})
		return
	}
	c.JSON(http.StatusOK, toRes(*item))
}

// Remove はパントリーアイテムを削除します。
func (h *PantryHandler) Remove(c *gin.Context) {
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
	if err := h.uc.Remove(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, usecase.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "pantry item not found"})
			return
		}
		slog.Error("pantry remove failed", "error", err, "user_id", userID, "item_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove pantry item"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Clear はユーザーのパントリーを空にします。
func (h *PantryHandler) Clear(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	if err := h.uc.Clear(c.Request.Context(), userID); err != nil {
		slog.Error("pantry clear failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear pantry"})
		return
	}
	c.Status(http.StatusNoContent)
}

func toRes(it entity.PantryItem) dto.PantryItemRes {
	return dto.PantryItemRes{
		ID:       it.ID,
		Name:     it.Name,
		Category: it.Category,
		Quantity: it.Quantity,
		Unit:     it.Unit,
	}
}

func parseID(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	return uint(n), err
}
