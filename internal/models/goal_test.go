package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoal_Validate(t *testing.T) {
	tests := []struct {
		name    string
		goal    Goal
		wantErr error
	}{
		{
			name: "valid goal",
			goal: Goal{Title: "Emergency fund", TargetAmount: decimal.NewFromInt(100000)},
		},
		{
			name: "valid goal with deadline and contribution",
			goal: Goal{
				Title:               "New laptop",
				TargetAmount:        decimal.NewFromInt(150000),
				Deadline:            "2027-06-01",
				MonthlyContribution: decimal.NewFromInt(10000),
			},
		},
		{
			name:    "zero target",
			goal:    Goal{Title: "Nothing", TargetAmount: decimal.Zero},
			wantErr: ErrInvalidTargetAmount,
		},
		{
			name:    "negative target",
			goal:    Goal{Title: "Debt?", TargetAmount: decimal.NewFromInt(-500)},
			wantErr: ErrInvalidTargetAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.goal.Validate()
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestGoal_BeforeCreate(t *testing.T) {
	goal := Goal{Title: "Emergency fund", TargetAmount: decimal.NewFromInt(100000)}

	err := goal.BeforeCreate(nil)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, goal.ID)
}
