package model

import "time"

type KPIStatus string

const (
	KPIAtRisk             KPIStatus = "at_risk"
	KPIOnTrack            KPIStatus = "on_track"
	KPINeedsReinforcement KPIStatus = "needs_reinforcement"
)

// KPIRow is reference data for the insight dashboard. Rows are seeded, not
// derived from the live todo store.
type KPIRow struct {
	RowID     string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Category  string    `bson:"category" json:"category"`
	Progress  int       `bson:"progress" json:"progress"` // 0..100
	Target    int       `bson:"target" json:"target"`     // 0..100
	Delta     int       `bson:"delta" json:"delta"`       // signed week-over-week change
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// SeedKPIRows is the starter dashboard dataset for a new user.
func SeedKPIRows(userID string, now time.Time) []*KPIRow {
	rows := []struct {
		category string
		progress int
		target   int
		delta    int
	}{
		{"Cardio", 62, 70, 8},
		{"Upper body", 54, 65, 3},
		{"Lower body", 41, 60, -4},
		{"Vocabulary", 72, 75, 5},
		{"Mistake notes", 39, 55, -6},
		{"Mock exams", 58, 70, 2},
	}
	out := make([]*KPIRow, len(rows))
	for i, r := range rows {
		out[i] = &KPIRow{
			UserID:    userID,
			Category:  r.category,
			Progress:  r.progress,
			Target:    r.target,
			Delta:     r.delta,
			CreatedAt: now,
		}
	}
	return out
}
