package model

import "time"

type SuggestionSeverity string
type SuggestionStatus string

const (
	SeverityLow    SuggestionSeverity = "low"
	SeverityMedium SuggestionSeverity = "medium"
	SeverityHigh   SuggestionSeverity = "high"

	SuggestionOpen      SuggestionStatus = "open"
	SuggestionApplied   SuggestionStatus = "applied"
	SuggestionDismissed SuggestionStatus = "dismissed"
)

// SuggestionAction describes what applying a suggestion does; Label becomes the
// created todo's label when present.
type SuggestionAction struct {
	Type  string `bson:"type" json:"type"`
	Label string `bson:"label,omitempty" json:"label,omitempty"`
}

// Suggestion is a coaching recommendation. Applying one materializes a todo
// item in a resolved category; applied and dismissed are terminal states.
type Suggestion struct {
	SuggestionID string             `bson:"_id,omitempty" json:"id"`
	UserID       string             `bson:"user_id" json:"user_id"`
	Category     string             `bson:"category" json:"category"` // free-text label, resolved on apply
	Severity     SuggestionSeverity `bson:"severity" json:"severity"`
	Title        string             `bson:"title" json:"title"`
	Rationale    string             `bson:"rationale" json:"rationale"`
	Action       SuggestionAction   `bson:"action" json:"action"`
	Status       SuggestionStatus   `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// SeedSuggestions is the starter set inserted for a new user.
func SeedSuggestions(userID string, now time.Time) []*Suggestion {
	return []*Suggestion{
		{
			UserID:    userID,
			Category:  "어휘",
			Severity:  SeverityHigh,
			Title:     "Add a 15-minute vocabulary block after workouts",
			Rationale: "Vocabulary progress 10%p under target for 2 weeks; focus rises right after exercise",
			Action:    SuggestionAction{Type: "schedule_add", Label: "Vocabulary 15 min (post-workout)"},
			Status:    SuggestionOpen,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			UserID:    userID,
			Category:  "오답노트",
			Severity:  SeverityMedium,
			Title:     "Daily 10-minute mistake-note checklist",
			Rationale: "Same mistake tag repeated twice or more",
			Action:    SuggestionAction{Type: "checklist", Label: "Start mistake checklist"},
			Status:    SuggestionOpen,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			UserID:    userID,
			Category:  "유산소",
			Severity:  SeverityLow,
			Title:     "Move cardio to Tue/Thu to clear the Wednesday conflict",
			Rationale: "Overlaps with PT session",
			Action:    SuggestionAction{Type: "reorder", Label: "Move cardio sessions"},
			Status:    SuggestionOpen,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
