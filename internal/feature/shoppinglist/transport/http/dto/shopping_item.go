// Package dto はshoppinglistフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import "kitchensync_backend/internal/feature/shoppinglist/domain/entity"

// ShoppingItemReq は買い物リストへの追加・更新リクエストを表します。
type ShoppingItemReq struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

// ShoppingItemRes は1件の買い物リストアイテムのレスポンスを表します。
type ShoppingItemRes struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Quantity string `json:"quantity,omitempty"`
	Unit     string `json:"unit,omitempty"`
	Checked  bool   `json:"checked"`
}

// FromEntity はドメインエンティティをレスポンスに変換します。
func FromEntity(e entity.ShoppingItem) ShoppingItemRes {
	return ShoppingItemRes{
		ID:       e.ID,
		Name:     e.Name,
		Category: e.Category,
		Quantity: e.Quantity,
		Unit:     e.Unit,
		Checked:  e.Checked,
	}
}
