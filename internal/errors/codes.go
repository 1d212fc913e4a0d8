package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount ErrorCode = "TRANSACTION_002"
	TransactionInvalidType   ErrorCode = "TRANSACTION_003"
	TransactionInvalidDate   ErrorCode = "TRANSACTION_004"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound    ErrorCode = "CATEGORY_001"
	CategoryInvalidKind ErrorCode = "CATEGORY_002"
)

// Goal error codes (GOAL_*)
const (
	GoalNotFound       ErrorCode = "GOAL_001"
	GoalInvalidTarget  ErrorCode = "GOAL_002"
	GoalInvalidDeposit ErrorCode = "GOAL_003"
)

// Net worth error codes (NETWORTH_*)
const (
	AssetNotFound     ErrorCode = "NETWORTH_001"
	LiabilityNotFound ErrorCode = "NETWORTH_002"
	SnapshotExists    ErrorCode = "NETWORTH_003"
)

// Settings error codes (SETTINGS_*)
const (
	SettingNotFound     ErrorCode = "SETTINGS_001"
	SettingInvalidValue ErrorCode = "SETTINGS_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	ValidationGeneral:       "Request validation failed",
	ValidationRequiredField: "A required field is missing",
	ValidationInvalidFormat: "A field has an invalid format",
	ValidationOutOfRange:    "A field value is out of range",
	ValidationInvalidDate:   "Date must use the YYYY-MM-DD format",

	TransactionNotFound:      "Transaction not found",
	TransactionInvalidAmount: "Transaction amount must be a non-negative number",
	TransactionInvalidType:   "Transaction type must be income or expense",
	TransactionInvalidDate:   "Transaction date must use the YYYY-MM-DD format",

	CategoryNotFound:    "Category not found",
	CategoryInvalidKind: "Category kind must be income, expense or investment",

	GoalNotFound:       "Goal not found",
	GoalInvalidTarget:  "Goal target amount must be positive",
	GoalInvalidDeposit: "Goal deposit must be positive",

	AssetNotFound:     "Asset not found",
	LiabilityNotFound: "Liability not found",
	SnapshotExists:    "A snapshot is already recorded for that month",

	SettingNotFound:     "Setting not found",
	SettingInvalidValue: "Setting value is invalid",

	SystemInternalError:      "An internal error occurred",
	SystemDatabaseError:      "A database error occurred",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Too many requests, please slow down",
}

// GetErrorMessage returns the default message for an error code
func GetErrorMessage(code ErrorCode) string {
	if message, ok := errorMessages[code]; ok {
		return message
	}
	return "An unexpected error occurred"
}
