package dto

// CreateCategoryRequest represents the request payload for adding a category
type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Icon  string `json:"icon" validate:"omitempty,max=10"`
	Color string `json:"color" validate:"omitempty,max=10"`
	Kind  string `json:"kind" validate:"required,category_kind"`
}
