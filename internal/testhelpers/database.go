package testhelpers

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqliteSchema mirrors the production tables closely enough for service
// tests. The CHECK on saved_recipes.name gives tests a way to force a write
// failure for one recipe in a batch.
const sqliteSchema = `
CREATE TABLE users (
	id varchar(36) PRIMARY KEY,
	created_at datetime,
	updated_at datetime,
	deleted_at datetime,
	email varchar(255) NOT NULL UNIQUE,
	password_hash varchar(255) NOT NULL
);

CREATE TABLE saved_recipes (
	id varchar(36) PRIMARY KEY,
	created_at datetime,
	name varchar(255) NOT NULL CHECK (name <> ''),
	ingredients text NOT NULL DEFAULT '[]',
	instructions text NOT NULL DEFAULT '[]',
	match_quality real NOT NULL,
	calories varchar(50),
	protein varchar(50),
	fat varchar(50),
	carbohydrates varchar(50),
	user_id varchar(36) NOT NULL,
	user_email varchar(255),
	embedding text
);
CREATE INDEX idx_saved_recipes_user_id ON saved_recipes (user_id);
`

// SetupTestDB creates an in-memory SQLite database with the application
// schema. Each call gets its own database; it disappears when the test's
// connections close.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:test-%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Exec(sqliteSchema).Error; err != nil {
		t.Fatalf("failed to create test schema: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}
