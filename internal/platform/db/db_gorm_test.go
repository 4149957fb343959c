package db

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestOpen_SQLiteFallback はDATABASE_URL未設定時にSQLiteへフォールバックして
// マイグレーション済みのDBが返されることを検証します。
func TestOpen_SQLiteFallback(t *testing.T) {
	db, err := Open("", ":memory:")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, table := range []string{"users", "pantry_items", "recipes", "meal_plans", "shopping_items"} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("expected table %q to exist after Open", table)
		}
	}
}

// TestMigrate_Idempotent はMigrateを複数回実行してもエラーにならないことを検証します。
func TestMigrate_Idempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	if err := Migrate(db); err != nil {
		t.Fatalf("first migrate failed: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}
}

// TestOpen_UniqueViolationTranslated はTranslateErrorにより一意制約違反が
// ドライバ非依存のgorm.ErrDuplicatedKeyへ変換されることを検証します。
func TestOpen_UniqueViolationTranslated(t *testing.T) {
	db, err := Open("", ":memory:")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	type row struct {
		ID   uint   `gorm:"primaryKey"`
		Code string `gorm:"uniqueIndex"`
	}
	if err := db.AutoMigrate(&row{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if err := db.Create(&row{Code: "a"}).Error; err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	err = db.Create(&row{Code: "a"}).Error
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("expected gorm.ErrDuplicatedKey, got %v", err)
	}
}
