package database

import (
	"fmt"
	"testing"

	"expensetracker/internal/config"
	"expensetracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"transactions",
		"categories",
		"goals",
		"assets",
		"liabilities",
		"net_worth_snapshots",
		"settings",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}

func CreateTestCategory(t *testing.T, db *DB, name, kind string) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:  name,
		Icon:  "📂",
		Color: "#6366f1",
		Kind:  kind,
	}

	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}

	return category
}

func CreateTestTransaction(t *testing.T, db *DB, title, txType, date string, amount int64, categoryID *uuid.UUID) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		Title:      title,
		Amount:     decimal.NewFromInt(amount),
		Type:       txType,
		Date:       date,
		CategoryID: categoryID,
	}

	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return transaction
}
