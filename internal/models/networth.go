package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Asset is a flat owned-value record. No per-item history is kept.
type Asset struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name      string          `gorm:"type:varchar(255);not null" json:"name"`
	Value     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"value"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Asset
func (a *Asset) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// Liability is a flat owed-value record.
type Liability struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name      string          `gorm:"type:varchar(255);not null" json:"name"`
	Value     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"value"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Liability
func (l *Liability) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// NetWorthSnapshot is the recorded net worth for one past calendar month,
// keyed by the month bucket label. Immutable once written: the current
// month is always recomputed live and past months are never recomputed
// from today's asset list.
type NetWorthSnapshot struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Month     string          `gorm:"type:varchar(10);uniqueIndex;not null" json:"month"`
	NetWorth  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"net_worth"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for NetWorthSnapshot
func (s *NetWorthSnapshot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// NetWorthPoint is one month of the net worth trend series.
type NetWorthPoint struct {
	Label    string          `json:"label"`
	NetWorth decimal.Decimal `json:"net_worth"`
}

// NetWorthSummary is the live assets-minus-liabilities computation plus
// the snapshot-blended trend series.
type NetWorthSummary struct {
	TotalAssets      decimal.Decimal `json:"total_assets"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities"`
	NetWorth         decimal.Decimal `json:"net_worth"`
	Trend            []NetWorthPoint `json:"trend,omitempty"`
}
