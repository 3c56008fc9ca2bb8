package game

import (
	"fmt"
	"time"
)

// Rating tiers, evaluated on the final attempt count (hint penalties included).
const (
	TierIncredible     = "incredible"
	TierExcellent      = "excellent"
	TierGood           = "good"
	TierKeepPracticing = "keep practicing"
)

// Rating is the performance label shown on the victory screen.
type Rating struct {
	Tier    string `json:"tier"`
	Message string `json:"message"`
	Emoji   string `json:"emoji"`
}

// RatingFor maps an attempt count to its tier: ≤5, 6–8, 9–12, >12.
func RatingFor(attempts int) Rating {
	switch {
	case attempts <= 5:
		return Rating{Tier: TierIncredible, Message: "🏆 Incredible! You're a genius!", Emoji: "🏆"}
	case attempts <= 8:
		return Rating{Tier: TierExcellent, Message: "⭐ Excellent! Great performance!", Emoji: "⭐"}
	case attempts <= 12:
		return Rating{Tier: TierGood, Message: "👍 Well played! That was a good game!", Emoji: "👍"}
	default:
		return Rating{Tier: TierKeepPracticing, Message: "💪 Keep practicing!", Emoji: "💪"}
	}
}

// FormatElapsed renders whole seconds as "Ms Ss", or "Ss" under a minute.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	minutes, seconds := total/60, total%60
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
