package integration

import (
	"os"
	"testing"

	"solar-catalog-be/internal/model"
	"solar-catalog-be/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// openDB connects to DB_CONNECTION_STRING and migrates the catalog tables.
func openDB(t *testing.T) *gorm.DB {
	t.Helper()

	// tests run in the package dir
	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("No ../../.env file, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(dsn, true)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}
	if err := db.AutoMigrate(model.Tables...); err != nil {
		t.Fatalf("AutoMigrate failed: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
