package dto

// Transaction Request DTOs

// CreateTransactionRequest represents the request payload for logging a transaction
type CreateTransactionRequest struct {
	Title      string `json:"title" validate:"required,min=1,max=255"`
	Amount     string `json:"amount" validate:"required,decimal_amount"`
	Type       string `json:"type" validate:"required,transaction_type"`
	CategoryID string `json:"category_id" validate:"omitempty,uuid"`
	Date       string `json:"date" validate:"required,calendar_date"`
	Recurring  bool   `json:"recurring"`
	Frequency  string `json:"frequency" validate:"required_if=Recurring true,omitempty,frequency"`
}

// UpdateTransactionRequest represents the request payload for editing a transaction
type UpdateTransactionRequest struct {
	Title      string `json:"title" validate:"required,min=1,max=255"`
	Amount     string `json:"amount" validate:"required,decimal_amount"`
	Type       string `json:"type" validate:"required,transaction_type"`
	CategoryID string `json:"category_id" validate:"omitempty,uuid"`
	Date       string `json:"date" validate:"required,calendar_date"`
	Recurring  bool   `json:"recurring"`
	Frequency  string `json:"frequency" validate:"required_if=Recurring true,omitempty,frequency"`
}

// ComparisonRequest carries the comparison mode and optional custom window
type ComparisonRequest struct {
	Mode  string `query:"mode" validate:"omitempty,comparison_mode"`
	Start string `query:"start" validate:"omitempty,calendar_date"`
	End   string `query:"end" validate:"omitempty,calendar_date"`
}
