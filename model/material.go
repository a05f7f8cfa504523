package model

import "time"

// Material is an uploaded study text. Segments are derived once at upload time
// by splitting on heading-like markers; only a segment's completion state is
// mutable afterwards.
type Material struct {
	MaterialID string    `bson:"_id,omitempty" json:"id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	Name       string    `bson:"name" json:"name" binding:"required"`
	Text       string    `bson:"text" json:"text"`
	Segments   []Segment `bson:"segments" json:"segments"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

type Segment struct {
	SegmentID string     `bson:"segment_id" json:"id"`
	Title     string     `bson:"title" json:"title"`
	Length    int        `bson:"length_minutes" json:"length"` // estimated study minutes
	Completed bool       `bson:"completed" json:"completed"`
	Category  string     `bson:"category" json:"category"`
	DoneAt    *time.Time `bson:"done_at,omitempty" json:"done_at,omitempty"`
}

// MaterialSummary is the tracker view over one material's segments.
type MaterialSummary struct {
	TotalMinutes int                `json:"total_minutes"`
	DoneMinutes  int                `json:"done_minutes"`
	Rate         int                `json:"rate"` // 0..100
	ByCategory   []CategoryMinutes  `json:"by_category"`
	Daily        []DailyStudyPoint  `json:"daily"`
}

type CategoryMinutes struct {
	Category     string `json:"category"`
	TotalMinutes int    `json:"total_minutes"`
	DoneMinutes  int    `json:"done_minutes"`
	Remaining    int    `json:"remaining_minutes"`
}

type DailyStudyPoint struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Minutes int    `json:"minutes"`
}

// ChatCitation points an answer bullet back at the source sentence.
type ChatCitation struct {
	ChunkIndex int    `json:"chunk_index"`
	Title      string `json:"title"`
	Snippet    string `json:"snippet"`
}

// ChatAnswer is the retrieval chat response. Refused answers carry no
// citations; the service never fabricates evidence.
type ChatAnswer struct {
	Text      string         `json:"text"`
	Refused   bool           `json:"refused"`
	Citations []ChatCitation `json:"citations,omitempty"`
}
