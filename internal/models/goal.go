package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidTargetAmount = errors.New("goal target amount must be positive")
	ErrNegativeDeposit     = errors.New("goal deposit must be positive")
)

// Goal is a savings target. CurrentAmount only ever grows, through
// explicit deposits; there is no withdrawal operation.
type Goal struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Title               string          `gorm:"type:varchar(255);not null" json:"title"`
	TargetAmount        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"target_amount"`
	CurrentAmount       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"current_amount"`
	Deadline            string          `gorm:"type:varchar(10)" json:"deadline,omitempty"`
	MonthlyContribution decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"monthly_contribution"`
	CreatedAt           time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Goal
func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// Validate performs model-level validation on a goal.
func (g *Goal) Validate() error {
	if !g.TargetAmount.IsPositive() {
		return ErrInvalidTargetAmount
	}
	return nil
}

// GoalProjection is a goal enriched with derived progress fields.
// Computed by the analytics engine, never persisted.
type GoalProjection struct {
	Goal
	ProgressPct           float64         `json:"progress_pct"`
	Remaining             decimal.Decimal `json:"remaining"`
	MonthsLeft            *int            `json:"months_left"`
	RequiredMonthlySaving *int64          `json:"required_monthly_saving"`
	EstimatedCompletion   *string         `json:"estimated_completion"`
	IsAchieved            bool            `json:"is_achieved"`
}
