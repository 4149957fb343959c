package di

import (
	"context"
	"log/slog"
	"time"

	"kitchensync_backend/internal/feature/pantryscan/adapters/vision"
	scanusecase "kitchensync_backend/internal/feature/pantryscan/usecase"
	"kitchensync_backend/internal/feature/recipes/adapters/gemini"
	recipeusecase "kitchensync_backend/internal/feature/recipes/usecase"
	"kitchensync_backend/internal/shared/ratelimiter"
)

// NewRecipeSuggester creates a Gemini-backed RecipeSuggester with rate limiting.
// Returns nil when the Gemini client cannot be initialized (e.g. no credentials);
// callers treat a nil suggester as "suggestions unavailable".
func NewRecipeSuggester(ctx context.Context) recipeusecase.RecipeSuggester {
	limiter := ratelimiter.NewRateLimiter(8, time.Minute) // 1分に8回まで
	suggester, err := gemini.NewGeminiSuggester(ctx, limiter)
	if err != nil {
		slog.Warn("Gemini unavailable. Recipe suggestions disabled.", "error", err)
		return nil
	}
	return suggester
}

// NewLabelDetector creates a Vision API-backed LabelDetector.
// Returns nil when the Vision client cannot be initialized; callers skip
// registering the scan endpoint in that case.
func NewLabelDetector(ctx context.Context) scanusecase.LabelDetector {
	detector, err := vision.NewVisionLabelDetector(ctx)
	if err != nil {
		slog.Warn("Vision API unavailable. Pantry scan disabled.", "error", err)
		return nil
	}
	return detector
}
