// Package gemini はGoogle Gemini APIを使用したレシピ提案クライアントを提供します。
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"kitchensync_backend/internal/feature/recipes/usecase"
	"kitchensync_backend/internal/shared/ratelimiter"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.5-flash"

	// suggestPromptTemplate はレシピ提案のプロンプトテンプレートです。
	suggestPromptTemplate = "You are a home cooking assistant. Using only common staples plus these pantry ingredients: %s — suggest one realistic recipe. Reply with the recipe title, a short ingredient list, and numbered steps."
)

// GeminiSuggester はGoogle Gemini APIを使用してレシピ提案を生成します。
type GeminiSuggester struct {
	client  *genai.Client
	model   string
	limiter ratelimiter.RateLimiterInterface
}

// GeminiSuggesterがRecipeSuggesterを実装していることをコンパイル時に検証します。
var _ usecase.RecipeSuggester = (*GeminiSuggester)(nil)

// NewGeminiSuggester はADCを使用してGeminiSuggesterの新しいインスタンスを生成します。
// 環境変数 GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT, GOOGLE_CLOUD_LOCATION が必要です。
// limiterは外部APIのクォータ保護のため、リクエストごとに適用されます。
func NewGeminiSuggester(ctx context.Context, limiter ratelimiter.RateLimiterInterface) (*GeminiSuggester, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiSuggester{client: client, model: DefaultModel, limiter: limiter}, nil
}

// Suggest は食材リストからレシピ提案を生成します。
func (g *GeminiSuggester) Suggest(ctx context.Context, ingredients []string) (string, error) {
	if g.limiter != nil {
		g.limiter.WaitIfNeeded()
	}

	prompt := fmt.Sprintf(suggestPromptTemplate, strings.Join(ingredients, ", "))
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}

	return resp.Text(), nil
}
