package usecase

import (
	"context"
	"fmt"
	"time"

	"main/model"

	"github.com/google/uuid"
)

// JourneyService drives the guided diagnosis pipeline: upload → identify →
// scope → ocr → diagnose → coach → export → handoff. The machine is strictly
// forward-only; each stage runs once, honors context cancellation, and
// persists a typed result on the journey document.
type JourneyService struct {
	journeys JourneyStore

	// stageDelay simulates stage work; tests shrink it to zero.
	stageDelay func(stage model.JourneyStage) time.Duration
}

func NewJourneyService(journeys JourneyStore) *JourneyService {
	return &JourneyService{journeys: journeys, stageDelay: defaultStageDelay}
}

func defaultStageDelay(stage model.JourneyStage) time.Duration {
	switch stage {
	case model.StageOCR:
		return 900 * time.Millisecond
	case model.StageDiagnose:
		return 800 * time.Millisecond
	case model.StageIdentify, model.StageCoach:
		return 700 * time.Millisecond
	case model.StageExport:
		return 600 * time.Millisecond
	default:
		return 0
	}
}

// Start creates a journey at the upload stage.
func (s *JourneyService) Start(ctx context.Context, userID string) (*model.Journey, error) {
	now := time.Now()
	j := &model.Journey{
		JourneyID: "jr-" + uuid.NewString(),
		UserID:    userID,
		Current:   model.StageUpload,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.journeys.Insert(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

func (s *JourneyService) Get(ctx context.Context, userID, journeyID string) (*model.Journey, error) {
	j, err := s.journeys.Get(ctx, userID, journeyID)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, ErrJourneyNotFound
	}
	return j, nil
}

// Advance runs the journey's current stage and moves the pointer forward.
// upload is only consulted at the upload stage. After the handoff stage runs,
// the journey is complete and further advances fail.
func (s *JourneyService) Advance(ctx context.Context, userID, journeyID string, upload *model.UploadInfo) (*model.Journey, error) {
	j, err := s.Get(ctx, userID, journeyID)
	if err != nil {
		return nil, err
	}
	if j.Completed {
		return nil, ErrJourneyFinished
	}

	if err := s.simulateWork(ctx, j.Current); err != nil {
		return nil, err
	}

	now := time.Now()
	switch j.Current {
	case model.StageUpload:
		if upload == nil {
			upload = &model.UploadInfo{Name: "sample-exam.jpg", Size: 245_760}
		}
		j.Uploads = append(j.Uploads, *upload)
		s.log(j, now, "uploaded %s", upload.Name)
	case model.StageIdentify:
		j.Identify = identifyFixture()
		s.log(j, now, "identified exam: %s (confidence %.2f)", j.Identify.Label, j.Identify.Confidence)
	case model.StageScope:
		if j.Identify != nil {
			j.Scope = j.Identify.Scope
		}
		s.log(j, now, "scope confirmed: %d units", len(j.Scope))
	case model.StageOCR:
		j.OCR = &model.OCRResult{Pages: 8, Questions: 20, NotesDetected: true}
		s.log(j, now, "ocr done: %d pages, %d questions", j.OCR.Pages, j.OCR.Questions)
	case model.StageDiagnose:
		j.Diagnosis = diagnosisFixture()
		s.log(j, now, "diagnosis: score %d, accuracy %d%%", j.Diagnosis.Score, j.Diagnosis.Accuracy)
	case model.StageCoach:
		j.Coaching = coachingFixture(j.Scope)
		s.log(j, now, "coaching plan: %d blocks", len(j.Coaching.Plan))
	case model.StageExport:
		j.Export = &model.ExportResult{
			ReportURL: "demo://report.pdf",
			NoteURL:   "demo://note.md",
			QuizURL:   "demo://quiz.pdf",
		}
		s.log(j, now, "export artifacts ready")
	case model.StageHandoff:
		j.Completed = true
		s.log(j, now, "handed off to chat")
	}

	if !j.Completed {
		j.Current = nextStage(j.Current)
	}
	j.UpdatedAt = now
	if err := s.journeys.Update(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

func (s *JourneyService) simulateWork(ctx context.Context, stage model.JourneyStage) error {
	delay := s.stageDelay(stage)
	if delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

func (s *JourneyService) log(j *model.Journey, at time.Time, format string, args ...any) {
	j.Logs = append(j.Logs, model.JourneyLog{
		Stage: j.Current,
		Text:  fmt.Sprintf(format, args...),
		At:    at,
	})
}

func nextStage(current model.JourneyStage) model.JourneyStage {
	for i, stage := range model.JourneyStages {
		if stage == current && i+1 < len(model.JourneyStages) {
			return model.JourneyStages[i+1]
		}
	}
	return current
}

func identifyFixture() *model.IdentifyResult {
	return &model.IdentifyResult{
		Label:      "CSAT math",
		Confidence: 0.86,
		Decision:   "auto",
		Scope:      []string{"Probability & statistics", "Math II"},
		Alternatives: []model.IdentifyAlternative{
			{Label: "Civil service exam", Confidence: 0.61},
			{Label: "SQLD", Confidence: 0.34},
		},
		Signals: map[string]float64{"rule": 0.92, "clf": 0.83, "embed": 0.78},
	}
}

func diagnosisFixture() *model.DiagnosisResult {
	return &model.DiagnosisResult{
		Score:    78,
		Accuracy: 65,
		WeakConcepts: []string{
			"Fraction division",
			"Speed formula",
			"Basic probability",
			"Geometric properties",
			"Ratios and rates",
		},
		Mistakes: []model.Mistake{
			{Number: 5, Text: "fraction division"},
			{Number: 8, Text: "speed vs time mix-up"},
			{Number: 11, Text: "probability miscalculation"},
		},
	}
}

func coachingFixture(scope []string) *model.CoachingPlan {
	return &model.CoachingPlan{
		Plan: []model.PlanBlock{
			{Title: "Review fraction division", Time: "25 min", Details: "Connect division to multiplying by the reciprocal with visual examples"},
			{Title: "Speed/distance/time unit drills", Time: "20 min", Details: "10-question km/h ↔ m/s conversion quiz"},
			{Title: "Probability basics retraining", Time: "30 min", Details: "Sample-space quizzes with cards and dice"},
		},
		Scope: scope,
	}
}
