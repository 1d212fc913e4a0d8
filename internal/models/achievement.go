package models

// Achievement badge identifiers.
const (
	AchievementBudget3   = "budget3"
	AchievementEmergency = "emergency"
	AchievementInvest20  = "invest20"
	AchievementSave6     = "save6"
	AchievementRate30    = "rate30"
)

// Achievement is a fixed badge with an earned flag. There is no partial
// credit and no first-earned timestamp.
type Achievement struct {
	ID          string `json:"id"`
	Emoji       string `json:"emoji"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
}
