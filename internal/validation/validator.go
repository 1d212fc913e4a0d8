package validation

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"expensetracker/internal/models"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("category_kind", validateCategoryKind)
	_ = v.RegisterValidation("frequency", validateFrequency)
	_ = v.RegisterValidation("calendar_date", validateCalendarDate)
	_ = v.RegisterValidation("comparison_mode", validateComparisonMode)
	_ = v.RegisterValidation("decimal_amount", validateDecimalAmount)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateTransactionType validates that a transaction type is income or expense
func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(fl.Field().String())
}

// validateCategoryKind validates that a category kind is one of the allowed kinds
func validateCategoryKind(fl validator.FieldLevel) bool {
	return models.IsValidCategoryKind(fl.Field().String())
}

// validateFrequency validates that a recurrence frequency is supported
func validateFrequency(fl validator.FieldLevel) bool {
	return models.IsValidFrequency(fl.Field().String())
}

// validateCalendarDate validates that a date string uses the YYYY-MM-DD format
func validateCalendarDate(fl validator.FieldLevel) bool {
	dateStr := fl.Field().String()
	if dateStr == "" {
		return false
	}
	_, err := time.Parse(models.DateLayout, dateStr)
	return err == nil
}

// validateComparisonMode validates a monthly comparison mode string
func validateComparisonMode(fl validator.FieldLevel) bool {
	return models.IsValidComparisonMode(fl.Field().String())
}

// validateDecimalAmount validates that a string amount parses as a
// non-negative decimal with at most 2 decimal places
func validateDecimalAmount(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return false
	}

	parts := strings.Split(raw, ".")
	if len(parts) > 2 {
		return false
	}
	if len(parts) == 2 && len(parts[1]) > 2 {
		return false
	}

	for i, part := range parts {
		if part == "" && i == 0 {
			return false
		}
		for _, r := range part {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}
