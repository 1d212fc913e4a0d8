package database

import (
	"fmt"

	"expensetracker/internal/models"
)

// EnsureDefaults seeds the default category set and scalar settings on
// first run. Existing rows are left alone, so user edits and deletions
// survive restarts.
func (db *DB) EnsureDefaults() error {
	var categoryCount int64
	if err := db.Model(&models.Category{}).Count(&categoryCount).Error; err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}

	if categoryCount == 0 {
		defaults := models.DefaultCategories()
		if err := db.Create(&defaults).Error; err != nil {
			return fmt.Errorf("failed to seed default categories: %w", err)
		}
	}

	defaults := map[string]string{
		models.SettingIncomeTarget: models.DefaultIncomeTarget,
		models.SettingBudget:       models.DefaultBudget,
		models.SettingTheme:        models.DefaultTheme,
	}
	for key, value := range defaults {
		var count int64
		if err := db.Model(&models.Setting{}).Where("key = ?", key).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check setting %s: %w", key, err)
		}
		if count == 0 {
			if err := db.Create(&models.Setting{Key: key, Value: value}).Error; err != nil {
				return fmt.Errorf("failed to seed setting %s: %w", key, err)
			}
		}
	}

	return nil
}
