package model

import "time"

// CalendarEvent is the calendar projection of one todo item. Events with a
// parseable time range in their label are timed; everything else is all-day.
type CalendarEvent struct {
	EventID    string    `json:"id"`
	CategoryID string    `json:"calendar_id"`
	Title      string    `json:"title"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	IsAllDay   bool      `json:"is_all_day"`
}
