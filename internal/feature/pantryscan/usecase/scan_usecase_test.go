package usecase

import (
	"context"
	"errors"
	"testing"

	"kitchensync_backend/internal/feature/pantryscan/domain/entity"
)

// mockLabelDetector はテスト用のLabelDetectorモック実装です。
type mockLabelDetector struct {
	DetectLabelsFunc func(ctx context.Context, imageData []byte) ([]entity.DetectedIngredient, error)
}

func (m *mockLabelDetector) DetectLabels(ctx context.Context, imageData []byte) ([]entity.DetectedIngredient, error) {
	if m.DetectLabelsFunc != nil {
		return m.DetectLabelsFunc(ctx, imageData)
	}
	return nil, nil
}

func TestScanUsecase_ScanImage(t *testing.T) {
	ctx := context.Background()

	t.Run("filters generic and low-confidence labels", func(t *testing.T) {
		detector := &mockLabelDetector{
			DetectLabelsFunc: func(ctx context.Context, imageData []byte) ([]entity.DetectedIngredient, error) {
				return []entity.DetectedIngredient{
					{Name: "Tomato", Confidence: 0.95},
					{Name: "Food", Confidence: 0.99},        // generic label
					{Name: "Broccoli", Confidence: 0.45},    // below MinConfidence
					{Name: "Natural foods", Confidence: 0.9}, // generic, case-insensitive
					{Name: "Carrot", Confidence: 0.7},
				}, nil
			},
		}

		uc := NewScanUsecase(detector)
		got, err := uc.ScanImage(ctx, []byte("fake-image-bytes"))

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 ingredients, got %d: %v", len(got), got)
		}
		if got[0].Name != "Tomato" || got[1].Name != "Carrot" {
			t.Errorf("unexpected ingredients: %v", got)
		}
	})

	t.Run("empty image is rejected", func(t *testing.T) {
		uc := NewScanUsecase(&mockLabelDetector{})

		if _, err := uc.ScanImage(ctx, nil); err == nil {
			t.Error("expected error for empty image")
		}
	})

	t.Run("oversized image is rejected", func(t *testing.T) {
		detector := &mockLabelDetector{
			DetectLabelsFunc: func(ctx context.Context, imageData []byte) ([]entity.DetectedIngredient, error) {
				t.Error("detector should not be called for oversized images")
				return nil, nil
			},
		}

		uc := NewScanUsecase(detector)
		big := make([]byte, MaxImageSize+1)

		if _, err := uc.ScanImage(ctx, big); err == nil {
			t.Error("expected error for oversized image")
		}
	})

	t.Run("detector failure propagates", func(t *testing.T) {
		expectedErr := errors.New("vision API unavailable")
		detector := &mockLabelDetector{
			DetectLabelsFunc: func(ctx context.Context, imageData []byte) ([]entity.DetectedIngredient, error) {
				return nil, expectedErr
			},
		}

		uc := NewScanUsecase(detector)
		_, err := uc.ScanImage(ctx, []byte("fake-image-bytes"))

		if !errors.Is(err, expectedErr) {
			t.Errorf("expected error '%v', got: %v", expectedErr, err)
		}
	})
}
