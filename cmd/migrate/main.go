package main

import (
	"log"

	"solar-catalog-be/internal/config"
	"solar-catalog-be/internal/model"
	"solar-catalog-be/pkg/database"

	"gorm.io/gorm"
)

type step struct {
	name     string
	run      func(db *gorm.DB) error
	optional bool
}

var steps = []step{
	{
		name:     "pgcrypto extension",
		optional: true,
		run: func(db *gorm.DB) error {
			return db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error
		},
	},
	{
		name: "catalog tables",
		run: func(db *gorm.DB) error {
			return db.AutoMigrate(model.Tables...)
		},
	},
	{
		name:     "listing indexes",
		optional: true,
		run: func(db *gorm.DB) error {
			return db.Exec(`CREATE INDEX IF NOT EXISTS idx_products_listing ON products (series_id, active, display_order, created_at);`).Error
		},
	},
	{
		name:     "inbox index",
		optional: true,
		run: func(db *gorm.DB) error {
			return db.Exec(`CREATE INDEX IF NOT EXISTS idx_contact_messages_created_at ON contact_messages (created_at DESC);`).Error
		},
	},
}

func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.Open(cfg.Database.Connection, database.Options{Production: cfg.IsProduction(), MaxOpenConns: 2})
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	for i, s := range steps {
		log.Printf("Step %d/%d: %s", i+1, len(steps), s.name)
		if err := s.run(db); err != nil {
			if s.optional {
				log.Printf("Warn: %s failed: %v. Continuing...", s.name, err)
				continue
			}
			log.Fatalf("Error: %s failed: %v", s.name, err)
		}
	}

	for _, table := range model.Tables {
		if !db.Migrator().HasTable(table) {
			log.Fatalf("Error: table for %T missing after migration", table)
		}
	}
	log.Println("Success: Database migration completed.")
}
