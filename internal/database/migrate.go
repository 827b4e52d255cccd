package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/recipesnap/backend/internal/models"
)

// RunMigrations brings the schema up to date. On PostgreSQL the vector
// extension is required for the saved-recipe embedding column; SQLite (used
// in tests) skips it and stores the vector as text.
func RunMigrations(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
			return fmt.Errorf("failed to create vector extension: %w", err)
		}
	} else {
		log.Printf("[Database] Dialect %s: skipping vector extension", db.Dialector.Name())
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.SavedRecipe{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
