package services

import (
	"errors"
	"log/slog"

	"expensetracker/internal/models"
	"expensetracker/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownSettingKey   = errors.New("unknown setting key")
	ErrInvalidSettingValue = errors.New("invalid setting value")
)

// SettingsService exposes the small key-value preference store with typed
// fallbacks to the built-in defaults.
type SettingsService struct {
	settingsRepo repositories.SettingsRepositoryInterface
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repositories.SettingsRepositoryInterface) SettingsServiceInterface {
	return &SettingsService{settingsRepo: settingsRepo}
}

var settingDefaults = map[string]string{
	models.SettingIncomeTarget: models.DefaultIncomeTarget,
	models.SettingBudget:       models.DefaultBudget,
	models.SettingTheme:        models.DefaultTheme,
}

// GetSettings returns every known setting, filling defaults for rows that
// have never been written.
func (s *SettingsService) GetSettings() (map[string]string, error) {
	settings := make(map[string]string, len(settingDefaults))
	for key, fallback := range settingDefaults {
		value, err := s.settingsRepo.Get(key)
		if err != nil {
			if errors.Is(err, repositories.ErrSettingNotFound) {
				settings[key] = fallback
				continue
			}
			return nil, err
		}
		settings[key] = value
	}
	return settings, nil
}

// UpdateSetting writes one preference. Numeric settings must parse as
// non-negative decimals.
func (s *SettingsService) UpdateSetting(key, value string) error {
	if _, known := settingDefaults[key]; !known {
		return ErrUnknownSettingKey
	}
	if key == models.SettingIncomeTarget || key == models.SettingBudget {
		amount, err := decimal.NewFromString(value)
		if err != nil || amount.IsNegative() {
			return ErrInvalidSettingValue
		}
	}
	if err := s.settingsRepo.Set(key, value); err != nil {
		return err
	}
	slog.Info("setting updated", slog.String("key", key))
	return nil
}

// IncomeTarget reads the monthly income target, defaulting when unset
func (s *SettingsService) IncomeTarget() decimal.Decimal {
	return s.decimalSetting(models.SettingIncomeTarget, models.DefaultIncomeTarget)
}

// Budget reads the monthly budget, defaulting when unset
func (s *SettingsService) Budget() decimal.Decimal {
	return s.decimalSetting(models.SettingBudget, models.DefaultBudget)
}

func (s *SettingsService) decimalSetting(key, fallback string) decimal.Decimal {
	value, err := s.settingsRepo.GetDecimal(key)
	if err != nil {
		return decimal.RequireFromString(fallback)
	}
	return value
}
