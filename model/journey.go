package model

import "time"

// JourneyStage names one step of the guided diagnosis pipeline. Stages only
// move forward; there is no retry or branching.
type JourneyStage string

const (
	StageUpload   JourneyStage = "upload"
	StageIdentify JourneyStage = "identify"
	StageScope    JourneyStage = "scope"
	StageOCR      JourneyStage = "ocr"
	StageDiagnose JourneyStage = "diagnose"
	StageCoach    JourneyStage = "coach"
	StageExport   JourneyStage = "export"
	StageHandoff  JourneyStage = "handoff"
)

// JourneyStages is the pipeline in execution order.
var JourneyStages = []JourneyStage{
	StageUpload,
	StageIdentify,
	StageScope,
	StageOCR,
	StageDiagnose,
	StageCoach,
	StageExport,
	StageHandoff,
}

type Journey struct {
	JourneyID string       `bson:"_id,omitempty" json:"id"`
	UserID    string       `bson:"user_id" json:"user_id"`
	Current   JourneyStage `bson:"current" json:"current"`
	Completed bool         `bson:"completed" json:"completed"`
	Uploads   []UploadInfo `bson:"uploads,omitempty" json:"uploads,omitempty"`
	Identify  *IdentifyResult `bson:"identify,omitempty" json:"identify,omitempty"`
	Scope     []string        `bson:"scope,omitempty" json:"scope,omitempty"`
	OCR       *OCRResult      `bson:"ocr,omitempty" json:"ocr,omitempty"`
	Diagnosis *DiagnosisResult `bson:"diagnosis,omitempty" json:"diagnosis,omitempty"`
	Coaching  *CoachingPlan    `bson:"coaching,omitempty" json:"coaching,omitempty"`
	Export    *ExportResult    `bson:"export,omitempty" json:"export,omitempty"`
	Logs      []JourneyLog     `bson:"logs,omitempty" json:"logs,omitempty"`
	CreatedAt time.Time        `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time        `bson:"updated_at" json:"updated_at"`
}

type UploadInfo struct {
	Name string `bson:"name" json:"name"`
	Size int64  `bson:"size" json:"size"`
}

type IdentifyAlternative struct {
	Label      string  `bson:"label" json:"label"`
	Confidence float64 `bson:"confidence" json:"confidence"`
}

type IdentifyResult struct {
	Label        string                `bson:"label" json:"label"`
	Confidence   float64               `bson:"confidence" json:"confidence"`
	Decision     string                `bson:"decision" json:"decision"` // "auto" or "manual"
	Scope        []string              `bson:"scope" json:"scope"`
	Alternatives []IdentifyAlternative `bson:"alternatives" json:"alternatives"`
	Signals      map[string]float64    `bson:"signals" json:"signals"`
}

type OCRResult struct {
	Pages         int  `bson:"pages" json:"pages"`
	Questions     int  `bson:"questions" json:"questions"`
	NotesDetected bool `bson:"notes_detected" json:"notes_detected"`
}

type Mistake struct {
	Number int    `bson:"number" json:"number"`
	Text   string `bson:"text" json:"text"`
}

type DiagnosisResult struct {
	Score        int       `bson:"score" json:"score"`
	Accuracy     int       `bson:"accuracy" json:"accuracy"`
	WeakConcepts []string  `bson:"weak_concepts" json:"weak_concepts"`
	Mistakes     []Mistake `bson:"mistakes" json:"mistakes"`
}

type PlanBlock struct {
	Title   string `bson:"title" json:"title"`
	Time    string `bson:"time" json:"time"`
	Details string `bson:"details" json:"details"`
}

type CoachingPlan struct {
	Plan  []PlanBlock `bson:"plan" json:"plan"`
	Scope []string    `bson:"scope" json:"scope"`
}

type ExportResult struct {
	ReportURL string `bson:"report_url" json:"report_url"`
	NoteURL   string `bson:"note_url" json:"note_url"`
	QuizURL   string `bson:"quiz_url" json:"quiz_url"`
}

type JourneyLog struct {
	Stage JourneyStage `bson:"stage" json:"stage"`
	Text  string       `bson:"text" json:"text"`
	At    time.Time    `bson:"at" json:"at"`
}
