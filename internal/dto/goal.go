package dto

// CreateGoalRequest represents the request payload for adding a savings goal
type CreateGoalRequest struct {
	Title               string `json:"title" validate:"required,min=1,max=255"`
	TargetAmount        string `json:"target_amount" validate:"required,decimal_amount"`
	CurrentAmount       string `json:"current_amount" validate:"omitempty,decimal_amount"`
	Deadline            string `json:"deadline" validate:"omitempty,calendar_date"`
	MonthlyContribution string `json:"monthly_contribution" validate:"omitempty,decimal_amount"`
}

// UpdateGoalRequest represents the request payload for editing a savings goal
type UpdateGoalRequest struct {
	Title               string `json:"title" validate:"required,min=1,max=255"`
	TargetAmount        string `json:"target_amount" validate:"required,decimal_amount"`
	CurrentAmount       string `json:"current_amount" validate:"omitempty,decimal_amount"`
	Deadline            string `json:"deadline" validate:"omitempty,calendar_date"`
	MonthlyContribution string `json:"monthly_contribution" validate:"omitempty,decimal_amount"`
}

// DepositRequest represents the request payload for a goal deposit
type DepositRequest struct {
	Amount string `json:"amount" validate:"required,decimal_amount"`
}
