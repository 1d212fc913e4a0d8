package repositories

import (
	"errors"
	"fmt"

	"expensetracker/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrSettingNotFound = errors.New("setting not found")

// settingsRepository implements SettingsRepositoryInterface
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) SettingsRepositoryInterface {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(key string) (string, error) {
	var setting models.Setting
	if err := r.db.First(&setting, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrSettingNotFound
		}
		return "", fmt.Errorf("failed to get setting: %w", err)
	}
	return setting.Value, nil
}

func (r *settingsRepository) GetDecimal(key string) (decimal.Decimal, error) {
	value, err := r.Get(key)
	if err != nil {
		return decimal.Zero, err
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse setting %s as decimal: %w", key, err)
	}
	return amount, nil
}

func (r *settingsRepository) Set(key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return fmt.Errorf("failed to set setting: %w", err)
	}
	return nil
}
