// Package db はGORMによるデータベース接続とマイグレーションを提供します。
package db

import (
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "kitchensync_backend/internal/feature/auth/domain/entity"
	mealplanentity "kitchensync_backend/internal/feature/mealplan/domain/entity"
	pantryentity "kitchensync_backend/internal/feature/pantry/domain/entity"
	recipesentity "kitchensync_backend/internal/feature/recipes/domain/entity"
	shoppingadapters "kitchensync_backend/internal/feature/shoppinglist/adapters"
)

// Open はDSNに応じてPostgreSQLまたはSQLiteへ接続し、マイグレーションを実行します。
// databaseURLが空の場合はsqlitePathのファイルDBにフォールバックします（開発用）。
// TranslateErrorを有効にしているため、ユニーク制約違反は
// gorm.ErrDuplicatedKeyとしてドライバ非依存に扱えます。
func Open(databaseURL, sqlitePath string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if databaseURL != "" {
		dialector = postgres.Open(databaseURL)
	} else {
		slog.Warn("DATABASE_URL is not set. Falling back to SQLite.", "path", sqlitePath)
		dialector = sqlite.Open(sqlitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate は全フィーチャーのスキーマをAutoMigrateで適用します。
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&authentity.User{},
		&pantryentity.PantryItem{},
		&recipesentity.Recipe{},
		&mealplanentity.MealPlan{},
		&shoppingadapters.ShoppingItemModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
