package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category kinds. The investment kind drives the carve-out in the stats
// aggregator: transactions in an investment category are excluded from
// expense totals and counted as investment outflow instead.
const (
	CategoryKindIncome     = "income"
	CategoryKindExpense    = "expense"
	CategoryKindInvestment = "investment"
)

// Fallback display attributes for transactions whose category reference
// no longer resolves. Category deletion does not cascade.
const (
	FallbackCategoryName  = "General"
	FallbackCategoryIcon  = "📂"
	FallbackCategoryColor = "#64748b"
)

var (
	ErrInvalidCategoryKind = errors.New("invalid category kind")
	ErrEmptyCategoryName   = errors.New("category name cannot be empty")
)

// Category is a user-extensible label for transactions.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Icon      string    `gorm:"type:varchar(10)" json:"icon"`
	Color     string    `gorm:"type:varchar(10)" json:"color"`
	Kind      string    `gorm:"type:varchar(12);not null;index" json:"kind"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// AllCategoryKinds returns all valid category kind constants.
func AllCategoryKinds() []string {
	return []string{CategoryKindIncome, CategoryKindExpense, CategoryKindInvestment}
}

// IsValidCategoryKind checks if a kind string is valid.
func IsValidCategoryKind(kind string) bool {
	for _, validKind := range AllCategoryKinds() {
		if kind == validKind {
			return true
		}
	}
	return false
}

// Validate performs model-level validation on a category.
func (c *Category) Validate() error {
	if c.Name == "" {
		return ErrEmptyCategoryName
	}
	if !IsValidCategoryKind(c.Kind) {
		return ErrInvalidCategoryKind
	}
	return nil
}

// IsOutflowKind reports whether transactions in this category spend money.
// Both expense and investment categories are outflows.
func (c *Category) IsOutflowKind() bool {
	return c.Kind == CategoryKindExpense || c.Kind == CategoryKindInvestment
}

// DefaultCategories returns the seed category set created on first run.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Food", Icon: "🍔", Color: "#6366f1", Kind: CategoryKindExpense},
		{Name: "Rent", Icon: "🏠", Color: "#8b5cf6", Kind: CategoryKindExpense},
		{Name: "Salary", Icon: "💰", Color: "#10b981", Kind: CategoryKindIncome},
		{Name: "Shopping", Icon: "🛍️", Color: "#f59e0b", Kind: CategoryKindExpense},
		{Name: "Freelance", Icon: "💻", Color: "#8b5cf6", Kind: CategoryKindIncome},
		{Name: "Investment", Icon: "📈", Color: "#10b981", Kind: CategoryKindInvestment},
		{Name: "Travel", Icon: "✈️", Color: "#06b6d4", Kind: CategoryKindExpense},
		{Name: "Entertainment", Icon: "🎬", Color: "#ec4899", Kind: CategoryKindExpense},
	}
}
