// Package usecase はpantryscanフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"strings"

	"kitchensync_backend/internal/feature/pantryscan/domain/entity"
)

const (
	// MaxImageSize は画像アップロードの最大サイズ（10MB）です。
	MaxImageSize = 10 * 1024 * 1024
	// MinConfidence はこの信頼度未満の検出結果を除外します。
	MinConfidence = 0.6
)

// foodLabelBlocklist は食材として意味を持たない汎用ラベルです。
// Vision APIは "Food" や "Ingredient" のような包括ラベルも返すため除外します。
var foodLabelBlocklist = map[string]struct{}{
	"food":            {},
	"ingredient":      {},
	"produce":         {},
	"cuisine":         {},
	"dish":            {},
	"recipe":          {},
	"tableware":       {},
	"natural foods":   {},
	"whole food":      {},
	"superfood":       {},
	"staple food":     {},
	"vegan nutrition": {},
}

// LabelDetector は画像からラベルを検出するリポジトリインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type LabelDetector interface {
	// DetectLabels は画像バイト列からラベルを検出し、検出結果を返します。
	DetectLabels(ctx context.Context, imageData []byte) ([]entity.DetectedIngredient, error)
}

// scanUsecase は食材写真スキャンのビジネスロジックを提供します。
type scanUsecase struct {
	detector LabelDetector
}

// NewScanUsecase はscanUsecaseの新しいインスタンスを生成します。
func NewScanUsecase(detector LabelDetector) *scanUsecase {
	return &scanUsecase{detector: detector}
}

// ScanImage は食材写真から食材候補を検出します。
// 汎用ラベルと低信頼度の検出結果は除外します。
func (u *scanUsecase) ScanImage(ctx context.Context, imageData []byte) ([]entity.DetectedIngredient, error) {
	if len(imageData) == 0 {
		return nil, fmt.Errorf("image data is empty")
	}
	if len(imageData) > MaxImageSize {
		return nil, fmt.Errorf("image size exceeds maximum of %d bytes", MaxImageSize)
	}

	labels, err := u.detector.DetectLabels(ctx, imageData)
	if err != nil {
		return nil, err
	}

	out := make([]entity.DetectedIngredient, 0, len(labels))
	for _, l := range labels {
		if l.Confidence < MinConfidence {
			continue
		}
		if _, blocked := foodLabelBlocklist[strings.ToLower(l.Name)]; blocked {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}
