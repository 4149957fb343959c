// Package adapters はshoppinglistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"time"

	"kitchensync_backend/internal/feature/shoppinglist/domain/entity"
)

// ShoppingItemModel is the relational representation of a shopping list item,
// used by the gorm fallback store when Redis is unavailable.
type ShoppingItemModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	UserID    uint   `gorm:"index;not null"`
	Name      string `gorm:"size:100;not null"`
	Category  string `gorm:"size:50"`
	Quantity  string `gorm:"size:50"`
	Unit      string `gorm:"size:50"`
	Checked   bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName force-names the table so both stores share one vocabulary.
func (ShoppingItemModel) TableName() string {
	return "shopping_items"
}

// ModelFromEntity converts a domain item into its relational model.
func ModelFromEntity(userID uint, e entity.ShoppingItem) *ShoppingItemModel {
	return &ShoppingItemModel{
		ID:       e.ID,
		UserID:   userID,
		Name:     e.Name,
		Category: e.Category,
		Quantity: e.Quantity,
		Unit:     e.Unit,
		Checked:  e.Checked,
	}
}

// ToEntity converts a relational model back into a domain item.
func (m *ShoppingItemModel) ToEntity() entity.ShoppingItem {
	return entity.ShoppingItem{
		ID:       m.ID,
		Name:     m.Name,
		Category: m.Category,
		Quantity: m.Quantity,
		Unit:     m.Unit,
		Checked:  m.Checked,
	}
}
