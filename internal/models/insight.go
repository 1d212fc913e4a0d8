package models

// Insight severity types.
const (
	InsightTypeDanger  = "danger"
	InsightTypeWarning = "warning"
	InsightTypeSuccess = "success"
	InsightTypeInfo    = "info"
)

// MaxInsights caps the insight list. Rules are evaluated in a fixed
// order so the most structural issues survive truncation.
const MaxInsights = 8

// Insight is one qualitative finding emitted by the rule engine.
type Insight struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Emoji   string `json:"emoji"`
	Title   string `json:"title"`
	Message string `json:"message"`
}
