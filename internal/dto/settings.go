package dto

// UpdateSettingRequest represents the request payload for writing a setting
type UpdateSettingRequest struct {
	Key   string `json:"key" validate:"required,oneof=income_target budget theme"`
	Value string `json:"value" validate:"required,max=255"`
}
