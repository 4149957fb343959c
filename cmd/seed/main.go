package main

import (
	"context"
	"log"
	"time"

	recipeadapters "kitchensync_backend/internal/feature/recipes/adapters"
	"kitchensync_backend/internal/platform/config"
	platformdb "kitchensync_backend/internal/platform/db"
)

func main() {
	cfg := config.Load()

	db, err := platformdb.Open(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		log.Fatal(err)
	}

	recipeRepo := recipeadapters.NewRecipeGorm(db)

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	if err := recipeRepo.UpsertCatalog(ctx, catalogRecipes); err != nil {
		log.Fatal("failed to seed catalog recipes:", err)
	}
	log.Printf("seed ok: %d catalog recipes", len(catalogRecipes))
}
