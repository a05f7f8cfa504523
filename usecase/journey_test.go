package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"main/model"
)

func newJourneyService() (*JourneyService, *memJourneyStore) {
	journeys := &memJourneyStore{}
	svc := NewJourneyService(journeys)
	svc.stageDelay = func(model.JourneyStage) time.Duration { return 0 }
	return svc, journeys
}

func TestJourneyStart(t *testing.T) {
	ctx := context.Background()
	svc, _ := newJourneyService()

	j, err := svc.Start(ctx, testUser)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if j.Current != model.StageUpload {
		t.Errorf("new journey at %s, want %s", j.Current, model.StageUpload)
	}
	if j.Completed {
		t.Error("new journey marked completed")
	}
	if j.JourneyID == "" {
		t.Error("journey ID not assigned")
	}

	got, err := svc.Get(ctx, testUser, j.JourneyID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.JourneyID != j.JourneyID {
		t.Error("Get returned a different journey")
	}
}

func TestJourneyGetNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newJourneyService()

	if _, err := svc.Get(ctx, testUser, "jr-missing"); !errors.Is(err, ErrJourneyNotFound) {
		t.Fatalf("expected ErrJourneyNotFound, got %v", err)
	}
}

func TestJourneyAdvanceFullPipeline(t *testing.T) {
	ctx := context.Background()
	svc, _ := newJourneyService()

	j, err := svc.Start(ctx, testUser)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	upload := &model.UploadInfo{Name: "exam-photo.jpg", Size: 1024}
	j, err = svc.Advance(ctx, testUser, j.JourneyID, upload)
	if err != nil {
		t.Fatalf("Advance(upload): %v", err)
	}
	if len(j.Uploads) != 1 || j.Uploads[0].Name != "exam-photo.jpg" {
		t.Error("upload not recorded")
	}
	if j.Current != model.StageIdentify {
		t.Fatalf("after upload at %s, want %s", j.Current, model.StageIdentify)
	}

	// Walk the rest of the pipeline; each stage persists its result.
	expected := []struct {
		after model.JourneyStage
		check func(*model.Journey) bool
	}{
		{model.StageScope, func(j *model.Journey) bool { return j.Identify != nil && j.Identify.Label != "" }},
		{model.StageOCR, func(j *model.Journey) bool { return len(j.Scope) > 0 }},
		{model.StageDiagnose, func(j *model.Journey) bool { return j.OCR != nil && j.OCR.Questions > 0 }},
		{model.StageCoach, func(j *model.Journey) bool { return j.Diagnosis != nil && len(j.Diagnosis.WeakConcepts) > 0 }},
		{model.StageExport, func(j *model.Journey) bool { return j.Coaching != nil && len(j.Coaching.Plan) > 0 }},
		{model.StageHandoff, func(j *model.Journey) bool { return j.Export != nil && j.Export.ReportURL != "" }},
	}
	for _, step := range expected {
		j, err = svc.Advance(ctx, testUser, j.JourneyID, nil)
		if err != nil {
			t.Fatalf("Advance to %s: %v", step.after, err)
		}
		if j.Current != step.after {
			t.Fatalf("at %s, want %s", j.Current, step.after)
		}
		if !step.check(j) {
			t.Fatalf("stage before %s left no result", step.after)
		}
	}

	// Handoff completes the journey and stops the pointer.
	j, err = svc.Advance(ctx, testUser, j.JourneyID, nil)
	if err != nil {
		t.Fatalf("Advance(handoff): %v", err)
	}
	if !j.Completed {
		t.Fatal("journey not completed after handoff")
	}
	if j.Current != model.StageHandoff {
		t.Errorf("completed journey at %s", j.Current)
	}
	if len(j.Logs) != len(model.JourneyStages) {
		t.Errorf("expected %d log lines, got %d", len(model.JourneyStages), len(j.Logs))
	}

	if _, err := svc.Advance(ctx, testUser, j.JourneyID, nil); !errors.Is(err, ErrJourneyFinished) {
		t.Fatalf("expected ErrJourneyFinished, got %v", err)
	}
}

func TestJourneyAdvanceDefaultUpload(t *testing.T) {
	ctx := context.Background()
	svc, _ := newJourneyService()

	j, _ := svc.Start(ctx, testUser)
	j, err := svc.Advance(ctx, testUser, j.JourneyID, nil)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if len(j.Uploads) != 1 || j.Uploads[0].Name == "" {
		t.Error("upload stage without a file did not record the sample upload")
	}
}

func TestJourneyAdvanceHonorsCancellation(t *testing.T) {
	svc, _ := newJourneyService()
	// Restore a real delay so cancellation races the stage work.
	svc.stageDelay = func(model.JourneyStage) time.Duration { return 50 * time.Millisecond }

	j, err := svc.Start(context.Background(), testUser)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.Advance(ctx, testUser, j.JourneyID, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	// The cancelled advance must not have moved the journey.
	got, err := svc.Get(context.Background(), testUser, j.JourneyID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Current != model.StageUpload {
		t.Errorf("cancelled advance moved journey to %s", got.Current)
	}
}

func TestJourneyIsolatedPerUser(t *testing.T) {
	ctx := context.Background()
	svc, _ := newJourneyService()

	j, _ := svc.Start(ctx, testUser)
	if _, err := svc.Get(ctx, "user-2", j.JourneyID); !errors.Is(err, ErrJourneyNotFound) {
		t.Fatalf("expected ErrJourneyNotFound for foreign user, got %v", err)
	}
}
