// Package entity はpantryフィーチャーのドメインモデルを定義します。
package entity

import "time"

// Categories はパントリーアイテムに許可される食材カテゴリの一覧です。
var Categories = []string{"Produce", "Meat", "Dairy", "Grains", "Seasonings", "Other"}

// PantryItem はユーザーのパントリー（食材庫）にある食材を表します。
type PantryItem struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	Category  string `gorm:"size:50;not null"`
	Quantity  string `gorm:"size:50"`
	Unit      string `gorm:"size:50"`
	UserID    uint   `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidCategory はカテゴリが許可された値かどうかを返します。
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}
