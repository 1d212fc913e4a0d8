package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_Validate(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		wantErr  error
	}{
		{
			name:     "valid expense category",
			category: Category{Name: "Food", Icon: "🍔", Color: "#6366f1", Kind: CategoryKindExpense},
		},
		{
			name:     "valid income category",
			category: Category{Name: "Salary", Kind: CategoryKindIncome},
		},
		{
			name:     "valid investment category",
			category: Category{Name: "Stocks", Kind: CategoryKindInvestment},
		},
		{
			name:     "empty name",
			category: Category{Kind: CategoryKindExpense},
			wantErr:  ErrEmptyCategoryName,
		},
		{
			name:     "invalid kind",
			category: Category{Name: "Transfers", Kind: "transfer"},
			wantErr:  ErrInvalidCategoryKind,
		},
		{
			name:     "kind is case-sensitive",
			category: Category{Name: "Food", Kind: "Expense"},
			wantErr:  ErrInvalidCategoryKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.category.Validate()
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestIsValidCategoryKind(t *testing.T) {
	tests := []struct {
		kind     string
		expected bool
	}{
		{CategoryKindIncome, true},
		{CategoryKindExpense, true},
		{CategoryKindInvestment, true},
		{"transfer", false},
		{"Income", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidCategoryKind(tt.kind))
		})
	}
}

func TestAllCategoryKinds(t *testing.T) {
	kinds := AllCategoryKinds()
	assert.Len(t, kinds, 3)
	assert.Contains(t, kinds, CategoryKindIncome)
	assert.Contains(t, kinds, CategoryKindExpense)
	assert.Contains(t, kinds, CategoryKindInvestment)
}

func TestCategory_IsOutflowKind(t *testing.T) {
	tests := []struct {
		kind     string
		expected bool
	}{
		{CategoryKindExpense, true},
		{CategoryKindInvestment, true},
		{CategoryKindIncome, false},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			category := Category{Kind: tt.kind}
			assert.Equal(t, tt.expected, category.IsOutflowKind())
		})
	}
}

func TestDefaultCategories(t *testing.T) {
	categories := DefaultCategories()
	require.NotEmpty(t, categories)

	names := make(map[string]bool)
	for _, c := range categories {
		assert.NoError(t, c.Validate())
		assert.False(t, names[c.Name], "duplicate default category %q", c.Name)
		names[c.Name] = true
	}

	// The seed set must cover every kind so the stats carve-out and
	// income grouping have something to attach to on first run.
	kinds := make(map[string]bool)
	for _, c := range categories {
		kinds[c.Kind] = true
	}
	assert.True(t, kinds[CategoryKindIncome])
	assert.True(t, kinds[CategoryKindExpense])
	assert.True(t, kinds[CategoryKindInvestment])
}

func TestCategory_BeforeCreate(t *testing.T) {
	category := Category{Name: "Food", Kind: CategoryKindExpense}

	err := category.BeforeCreate(nil)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, category.ID)
}
