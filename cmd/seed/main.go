package main

import (
	"context"
	"log"

	"solar-catalog-be/internal/config"
	"solar-catalog-be/internal/pkg/logger"
	"solar-catalog-be/internal/repository/unitofwork"
	"solar-catalog-be/internal/service"
	"solar-catalog-be/pkg/database"
)

func main() {
	cfg := config.Load()

	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, cfg.IsProduction())
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	seeder := service.NewSeedService(unitofwork.NewRepositoryFactory(db), logger.NewNopLogger())
	ctx := context.Background()

	log.Println("Seeding demo catalog...")
	catalog, err := seeder.SeedCatalog(ctx)
	if err != nil {
		log.Fatalf("Error: catalog seed failed: %v", err)
	}
	log.Printf("Series: %d created, %d reused. Products: %d created, %d skipped.",
		catalog.SeriesCreated, catalog.SeriesReused, catalog.ProductsCreated, catalog.ProductsSkipped)

	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	admin, err := seeder.SeedAdmin(ctx, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword)
	if err != nil {
		log.Fatalf("Error: admin seed failed: %v", err)
	}
	if admin.Created {
		log.Printf("Admin %s created", admin.Email)
	} else {
		log.Printf("Admin %s already exists", admin.Email)
	}

	log.Println("Seeding completed!")
}
