package model

import "time"

// Built-in category IDs. User-defined categories get generated "cat-" IDs and
// live in the categories collection alongside these.
const (
	CategoryWorkout      = "workout"
	CategoryExamPrep     = "exam_prep"
	CategoryConversation = "conversation"
	CategoryStudy        = "study"
)

// BuiltinCategoryIDs lists the fixed categories every user starts with.
var BuiltinCategoryIDs = []string{
	CategoryWorkout,
	CategoryExamPrep,
	CategoryConversation,
	CategoryStudy,
}

func IsBuiltinCategory(id string) bool {
	for _, b := range BuiltinCategoryIDs {
		if b == id {
			return true
		}
	}
	return false
}

type TodoItem struct {
	TodoID     string    `bson:"_id,omitempty" json:"id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	CategoryID string    `bson:"category_id" json:"category_id"`
	DateKey    DateKey   `bson:"date_key" json:"date_key"`
	Label      string    `bson:"label" json:"label" binding:"required"`
	Done       bool      `bson:"done" json:"done"`
	Time       int       `bson:"time_minutes,omitempty" json:"time,omitempty"` // estimated minutes
	Seeded     bool      `bson:"seeded,omitempty" json:"-"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// Category is a named bucket of todo items. Built-in categories are implicit
// and never stored; only user-defined ("extra") ones are persisted.
type Category struct {
	CategoryID string    `bson:"_id,omitempty" json:"id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	Name       string    `bson:"name" json:"name" binding:"required"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

// DefaultDayItems holds the labels seeded into a built-in category the first
// time a day is visited.
var DefaultDayItems = map[string][]string{
	CategoryWorkout:  {"Cardio 30 min", "Stretching 10 min"},
	CategoryExamPrep: {"Vocabulary drill", "Review mistake notes"},
}
