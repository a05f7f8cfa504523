package model

import "time"

// UserStats is the dashboard aggregate across a user's stores.
type UserStats struct {
	TodoStats struct {
		Total     int `json:"total"`
		Completed int `json:"completed"`
		Pending   int `json:"pending"`
	} `json:"todo_stats"`
	TimelineStats struct {
		Entries int `json:"entries"`
	} `json:"timeline_stats"`
	SuggestionStats struct {
		Open      int `json:"open"`
		Applied   int `json:"applied"`
		Dismissed int `json:"dismissed"`
		High      int `json:"high"`
	} `json:"suggestion_stats"`
	ActivityStats struct {
		LastActive     time.Time `json:"last_active"`
		AccountCreated time.Time `json:"account_created"`
		TotalSessions  int       `json:"total_sessions"`
	} `json:"activity_stats"`
}

// KPISummary is the headline row of the insight dashboard.
type KPISummary struct {
	AvgProgress     int `json:"avg_progress"`
	AvgTarget       int `json:"avg_target"`
	AtRiskCount     int `json:"at_risk_count"`
	ImprovingCount  int `json:"improving_count"`
	OpenSuggestions int `json:"open_suggestions"`
	HighSeverity    int `json:"high_severity"`
}

// WeeklyDeltaPoint is one category's this-week minus last-week completion count.
type WeeklyDeltaPoint struct {
	CategoryID string `json:"category_id"`
	Label      string `json:"label"`
	Value      int    `json:"value"`
}
