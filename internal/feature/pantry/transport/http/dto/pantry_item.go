// Package dto はpantryフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// PantryItemReq は/pantryへの追加・更新リクエストボディを表します。
type PantryItemReq struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

// PantryItemRes は1件のパントリーアイテムのレスポンスを表します。
type PantryItemRes struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity string `json:"quantity,omitempty"`
	Unit     string `json:"unit,omitempty"`
}
