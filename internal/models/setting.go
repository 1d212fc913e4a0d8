package models

import "time"

// Well-known setting keys. These mirror the storage keys the application
// has always used for its scalar preferences.
const (
	SettingIncomeTarget = "income_target"
	SettingBudget       = "budget"
	SettingTheme        = "theme"
)

// Default setting values applied on first run.
const (
	DefaultIncomeTarget = "75000"
	DefaultBudget       = "50000"
	DefaultTheme        = "light"
)

// Setting is a single persisted key-value preference.
type Setting struct {
	Key       string    `gorm:"type:varchar(50);primary_key" json:"key"`
	Value     string    `gorm:"type:varchar(255);not null" json:"value"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
