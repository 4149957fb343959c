// Package handler はpantryscanフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"kitchensync_backend/internal/feature/pantryscan/domain/entity"
)

// ScanUsecase は食材写真スキャンのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ScanUsecase interface {
	ScanImage(ctx context.Context, imageData []byte) ([]entity.DetectedIngredient, error)
}

// DetectedIngredientRes は1件の検出結果のレスポンスを表します。
type DetectedIngredientRes struct {
	Name       string  `json:"name"`
	Confidence float32 `json:"confidence"`
}

// ScanHandler は食材写真スキャンのHTTPリクエストを処理します。
type ScanHandler struct {
	uc ScanUsecase
}

// NewScanHandler はScanHandlerの新しいインスタンスを生成します。
func NewScanHandler(uc ScanUsecase) *ScanHandler {
	return &ScanHandler{uc: uc}
}

// Scan は食材写真をアップロードして食材候補を検出します。
//
// エンドポイント: POST /pantry/scan
// Content-Type: multipart/form-data
// フィールド: image（画像ファイル、最大10MB）
func (h *ScanHandler) Scan(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		slog.Warn("画像ファイルの取得に失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("画像ファイルのオープンに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read image"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("画像ファイルのクローズに失敗", "error", err)
		}
	}()

	imageData, err := io.ReadAll(f)
	if err != nil {
		slog.Error("画像データの読み取りに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read image"})
		return
	}

	ingredients, err := h.uc.ScanImage(c.Request.Context(), imageData)
	if err != nil {
		slog.Error("食材検出に失敗", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "ingredient detection failed"})
		return
	}

	out := make([]DetectedIngredientRes, 0, len(ingredients))
	for _, ing := range ingredients {
		out = append(out, DetectedIngredientRes{
			Name:       ing.Name,
			Confidence: ing.Confidence,
		})
	}
	c.JSON(http.StatusOK, out)
}
