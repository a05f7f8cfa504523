package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"main/config"
)

func newCoachService() (*CoachService, *memMaterialStore) {
	materials := &memMaterialStore{}
	svc := NewCoachService(materials, config.RetrievalConfig{
		MinScore:      2,
		MaxEvidence:   3,
		MaxCandidates: 5,
	})
	return svc, materials
}

func TestParseSegments(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantTitles []string
	}{
		{
			"markdown headings",
			"# Gerunds\nA gerund is a verb form ending in -ing.\n# Infinitives\nTo-infinitives follow certain verbs.",
			[]string{"Gerunds", "Infinitives"},
		},
		{
			"numbered sections",
			"1. Present perfect\nHave + past participle.\n2. Past perfect\nHad + past participle.",
			[]string{"1. Present perfect", "2. Past perfect"},
		},
		{
			"bullet markers",
			"* Relative pronouns\nWho, which, that.\n* Relative adverbs\nWhere, when, why.",
			[]string{"Relative pronouns", "Relative adverbs"},
		},
		{
			"no markers becomes one segment titled from the first line",
			"Plain prose without any heading structure at all.\nA second line of the same prose.",
			[]string{"Plain prose without any heading structure at all."},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			segments := ParseSegments(tc.text)
			if len(segments) != len(tc.wantTitles) {
				t.Fatalf("expected %d segments, got %d", len(tc.wantTitles), len(segments))
			}
			for i, want := range tc.wantTitles {
				if segments[i].Title != want {
					t.Errorf("segment %d title = %q, want %q", i, segments[i].Title, want)
				}
				if segments[i].SegmentID == "" {
					t.Errorf("segment %d has no ID", i)
				}
				if segments[i].Length < 5 {
					t.Errorf("segment %d length %d below floor", i, segments[i].Length)
				}
			}
		})
	}
}

func TestParseSegmentsBlankText(t *testing.T) {
	// Blank uploads are rejected before parsing; the parser itself produces
	// nothing for them rather than a placeholder segment.
	for _, text := range []string{"", "   ", "\n\n"} {
		if segments := ParseSegments(text); len(segments) != 0 {
			t.Errorf("ParseSegments(%q) = %d segments, want 0", text, len(segments))
		}
	}
}

func TestParseSegmentsCategories(t *testing.T) {
	text := "# 동명사 기초\nGerunds act as nouns.\n# 시제 정리\nPerfect tenses.\n# 쇼핑 목록\nMilk and eggs."
	segments := ParseSegments(text)
	if len(segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segments))
	}
	want := []string{"verbals", "tenses", "etc"}
	for i, w := range want {
		if segments[i].Category != w {
			t.Errorf("segment %d category = %q, want %q", i, segments[i].Category, w)
		}
	}
}

func TestRankChunks(t *testing.T) {
	svc, _ := newCoachService()
	text := "A gerund is a verb form ending in -ing used as a noun. " +
		"The past participle forms the perfect tenses. " +
		"Relative pronouns connect clauses."

	ranked := svc.RankChunks("what is a gerund", text)
	if len(ranked) == 0 {
		t.Fatal("no chunks ranked")
	}
	if !strings.Contains(strings.ToLower(ranked[0].Text), "gerund") {
		t.Errorf("top chunk %q does not mention the query term", ranked[0].Text)
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Fatal("chunks not in descending score order")
		}
	}
}

func TestRankChunksCapsCandidates(t *testing.T) {
	svc, _ := newCoachService()
	var b strings.Builder
	for i := 0; i < 10; i++ {
		b.WriteString("A sentence about gerund usage in practice. ")
	}
	ranked := svc.RankChunks("gerund", b.String())
	if len(ranked) > 5 {
		t.Errorf("candidate cap exceeded: %d chunks", len(ranked))
	}
}

func TestUploadMaterial(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCoachService()

	mat, err := svc.UploadMaterial(ctx, testUser, "  grammar.txt  ", "# Gerunds\nGerunds act as nouns.")
	if err != nil {
		t.Fatalf("UploadMaterial: %v", err)
	}
	if mat.Name != "grammar.txt" {
		t.Errorf("name not trimmed: %q", mat.Name)
	}
	if len(mat.Segments) == 0 {
		t.Error("no segments parsed at upload")
	}

	unnamed, err := svc.UploadMaterial(ctx, testUser, "", "Some text.")
	if err != nil {
		t.Fatalf("UploadMaterial (unnamed): %v", err)
	}
	if unnamed.Name != "material.txt" {
		t.Errorf("default name = %q, want material.txt", unnamed.Name)
	}

	if _, err := svc.UploadMaterial(ctx, testUser, "empty.txt", "   "); !errors.Is(err, ErrEmptyMaterial) {
		t.Fatalf("expected ErrEmptyMaterial, got %v", err)
	}
}

func TestAnswerQueryRefusal(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCoachService()

	mat, err := svc.UploadMaterial(ctx, testUser, "grammar.txt",
		"A gerund is a verb form ending in -ing. It acts as a noun in a sentence.")
	if err != nil {
		t.Fatalf("UploadMaterial: %v", err)
	}

	answer, err := svc.AnswerQuery(ctx, testUser, mat.MaterialID, "quantum entanglement thermodynamics")
	if err != nil {
		t.Fatalf("AnswerQuery: %v", err)
	}
	if !answer.Refused {
		t.Fatal("expected a refusal for an off-topic question")
	}
	if answer.Text != RefusalMessage {
		t.Errorf("refusal text = %q", answer.Text)
	}
	if len(answer.Citations) != 0 {
		t.Errorf("refusal carried %d citations", len(answer.Citations))
	}
}

func TestAnswerQueryWithEvidence(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCoachService()

	mat, err := svc.UploadMaterial(ctx, testUser, "grammar.txt",
		"A gerund is a verb form ending in -ing that acts as a noun. "+
			"Gerunds often follow verbs like enjoy and avoid. "+
			"The weather today is sunny.")
	if err != nil {
		t.Fatalf("UploadMaterial: %v", err)
	}

	answer, err := svc.AnswerQuery(ctx, testUser, mat.MaterialID, "how does a gerund work as a noun")
	if err != nil {
		t.Fatalf("AnswerQuery: %v", err)
	}
	if answer.Refused {
		t.Fatal("unexpected refusal with matching evidence")
	}
	if len(answer.Citations) == 0 {
		t.Fatal("answer carries no citations")
	}
	if len(answer.Citations) > 3 {
		t.Errorf("evidence cap exceeded: %d citations", len(answer.Citations))
	}
	if !strings.Contains(answer.Text, "Key evidence:") {
		t.Errorf("answer missing evidence section: %q", answer.Text)
	}
	for _, c := range answer.Citations {
		if c.Title != mat.Name {
			t.Errorf("citation title = %q, want %q", c.Title, mat.Name)
		}
	}
}

func TestAnswerQueryUnknownMaterial(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCoachService()

	if _, err := svc.AnswerQuery(ctx, testUser, "mat-missing", "anything"); !errors.Is(err, ErrMaterialNotFound) {
		t.Fatalf("expected ErrMaterialNotFound, got %v", err)
	}
}

func TestMarkSegmentAndSummary(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCoachService()

	mat, err := svc.UploadMaterial(ctx, testUser, "grammar.txt",
		"# Gerunds\nGerunds act as nouns.\n# Tenses\nPerfect tenses use have.")
	if err != nil {
		t.Fatalf("UploadMaterial: %v", err)
	}
	if len(mat.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(mat.Segments))
	}

	if err := svc.MarkSegment(ctx, testUser, mat.MaterialID, mat.Segments[0].SegmentID, true); err != nil {
		t.Fatalf("MarkSegment: %v", err)
	}

	summary, err := svc.Summary(ctx, testUser, mat.MaterialID)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	wantTotal := mat.Segments[0].Length + mat.Segments[1].Length
	if summary.TotalMinutes != wantTotal {
		t.Errorf("TotalMinutes = %d, want %d", summary.TotalMinutes, wantTotal)
	}
	if summary.DoneMinutes != mat.Segments[0].Length {
		t.Errorf("DoneMinutes = %d, want %d", summary.DoneMinutes, mat.Segments[0].Length)
	}
	if summary.Rate != 50 {
		t.Errorf("Rate = %d, want 50", summary.Rate)
	}
	if len(summary.Daily) != 1 {
		t.Fatalf("expected 1 daily point, got %d", len(summary.Daily))
	}
	if summary.Daily[0].Date != time.Now().Format("2006-01-02") {
		t.Errorf("daily point dated %s", summary.Daily[0].Date)
	}

	// Unmark clears the completion and the daily line with it.
	if err := svc.MarkSegment(ctx, testUser, mat.MaterialID, mat.Segments[0].SegmentID, false); err != nil {
		t.Fatalf("MarkSegment (undo): %v", err)
	}
	summary, err = svc.Summary(ctx, testUser, mat.MaterialID)
	if err != nil {
		t.Fatalf("Summary (after undo): %v", err)
	}
	if summary.DoneMinutes != 0 || summary.Rate != 0 || len(summary.Daily) != 0 {
		t.Errorf("undo left done=%d rate=%d daily=%d", summary.DoneMinutes, summary.Rate, len(summary.Daily))
	}
}

func TestDeleteMaterial(t *testing.T) {
	ctx := context.Background()
	svc, materials := newCoachService()

	mat, _ := svc.UploadMaterial(ctx, testUser, "grammar.txt", "Some text.")
	if err := svc.DeleteMaterial(ctx, testUser, mat.MaterialID); err != nil {
		t.Fatalf("DeleteMaterial: %v", err)
	}
	if got, _ := materials.Get(ctx, testUser, mat.MaterialID); got != nil {
		t.Error("material still present after delete")
	}
	if err := svc.DeleteMaterial(ctx, testUser, mat.MaterialID); !errors.Is(err, ErrMaterialNotFound) {
		t.Fatalf("expected ErrMaterialNotFound, got %v", err)
	}
}
