package dto

// CreateAssetRequest represents the request payload for adding an asset
type CreateAssetRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=255"`
	Value string `json:"value" validate:"required,decimal_amount"`
}

// CreateLiabilityRequest represents the request payload for adding a liability
type CreateLiabilityRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=255"`
	Value string `json:"value" validate:"required,decimal_amount"`
}
