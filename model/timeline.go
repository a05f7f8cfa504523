package model

import "time"

// TimelineEntry records a single todo completion. One entry exists per
// (todo_id, date_key) pair at most; untoggling removes every match.
type TimelineEntry struct {
	EntryID    string    `bson:"_id,omitempty" json:"id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	Text       string    `bson:"text" json:"text"` // "<category> - <label>"
	CategoryID string    `bson:"category_id" json:"category_id"`
	Label      string    `bson:"label" json:"label"`
	TodoID     string    `bson:"todo_id" json:"todo_id"`
	DateKey    DateKey   `bson:"date_key" json:"date_key"`
	Time       string    `bson:"time" json:"time"` // formatted clock time, e.g. "14:05"
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
