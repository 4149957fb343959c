// Package entity はpantryscanフィーチャーのドメインモデルを定義します。
package entity

// DetectedIngredient は食材写真から検出された食材候補を表します。
type DetectedIngredient struct {
	Name       string  // 検出された食材名
	Confidence float32 // 信頼度スコア（0.0 ~ 1.0）
}
