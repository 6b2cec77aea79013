package domain

// TabooCard is one target word plus the words the clue giver must not say.
// Card content is read-only and shared across all rooms.
type TabooCard struct {
	ID         int      `json:"id"`
	TargetWord string   `json:"targetWord"`
	TabooWords []string `json:"tabooWords"`
	Category   string   `json:"category,omitempty"`
}
