package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"

	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
	FrequencyYearly  = "yearly"

	// DateLayout is the calendar-date format used for transaction dates.
	// Transactions carry no time-of-day semantics.
	DateLayout = "2006-01-02"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidFrequency       = errors.New("invalid recurrence frequency")
	ErrNegativeAmount         = errors.New("transaction amount cannot be negative")
)

// Transaction represents a single logged financial event.
type Transaction struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Title      string          `gorm:"type:varchar(255);not null" json:"title"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Type       string          `gorm:"type:varchar(10);not null;index" json:"type"`
	CategoryID *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Date       string          `gorm:"type:varchar(10);not null;index" json:"date"`
	Recurring  bool            `gorm:"not null;default:false" json:"recurring"`
	Frequency  string          `gorm:"type:varchar(10)" json:"frequency,omitempty"`
	NextDate   string          `gorm:"type:varchar(10);index" json:"next_date,omitempty"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// IsValidTransactionType checks whether a type string is income or expense.
func IsValidTransactionType(transactionType string) bool {
	return transactionType == TransactionTypeIncome || transactionType == TransactionTypeExpense
}

// IsValidFrequency checks whether a recurrence frequency is supported.
func IsValidFrequency(frequency string) bool {
	return frequency == FrequencyWeekly || frequency == FrequencyMonthly || frequency == FrequencyYearly
}

// Validate performs model-level validation on a transaction.
func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}
	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if t.Recurring && !IsValidFrequency(t.Frequency) {
		return ErrInvalidFrequency
	}
	return nil
}
