package main

import (
	"context"
	"log"

	"resume-builder-backend/internal/shared/config"
	"resume-builder-backend/internal/shared/storage/db"
	"resume-builder-backend/internal/templates"
)

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultMigrateOptions()))
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	repo := &templates.PGRepo{DB: sqlDB}
	if err := repo.Seed(ctx, templates.Builtin()); err != nil {
		log.Fatalf("seed templates: %v", err)
	}

	log.Println("migrations applied")
}
