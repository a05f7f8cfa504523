package usecase

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"main/config"
	"main/model"

	"github.com/google/uuid"
)

// CoachService owns study materials and the evidence-gated retrieval chat over
// them. The chat never asserts an answer without enough lexical matches to the
// source text: below the configured score it refuses instead of guessing.
type CoachService struct {
	materials MaterialStore
	cfg       config.RetrievalConfig
}

func NewCoachService(materials MaterialStore, cfg config.RetrievalConfig) *CoachService {
	return &CoachService{materials: materials, cfg: cfg}
}

// RefusalMessage is the fixed no-evidence reply. It carries no citations.
const RefusalMessage = "No supporting evidence for this question was found in the material. Upload a file that covers the topic and ask again."

var (
	segmentMarker = regexp.MustCompile(`^(#|\d+\.|\*)`)
	verbalsHint   = regexp.MustCompile(`(?i)gerund|동명사|infinitive|부정사`)
	tensesHint    = regexp.MustCompile(`(?i)tense|시제|perfect`)
	relativesHint = regexp.MustCompile(`(?i)relative|관계대명사|that|which`)
	queryToken    = regexp.MustCompile(`[^a-z0-9가-힣]+`)
)

// guessCategory assigns a coarse topic from fixed keyword patterns; the list
// is extendable but deliberately small.
func guessCategory(text string) string {
	switch {
	case verbalsHint.MatchString(text):
		return "verbals"
	case tensesHint.MatchString(text):
		return "tenses"
	case relativesHint.MatchString(text):
		return "relatives"
	default:
		return "etc"
	}
}

// estimateMinutes converts text volume to study minutes: 900 characters ≈ 10
// minutes, 5 minutes at least.
func estimateMinutes(text string, floor int) int {
	n := len([]rune(text))
	est := int(math.Round(float64(n) / 900 * 10))
	if est < floor {
		return floor
	}
	return est
}

// ParseSegments splits material text into segments on heading-like lines
// (markdown headings, numbered points, bullets). A text with no markers
// becomes a single segment titled from its first line; blank text yields
// no segments (callers reject blank uploads before parsing).
func ParseSegments(text string) []model.Segment {
	var parts []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			part := strings.TrimSpace(strings.Join(current, "\n"))
			if part != "" {
				parts = append(parts, part)
			}
			current = nil
		}
	}
	for _, line := range strings.Split(text, "\n") {
		if segmentMarker.MatchString(line) {
			flush()
		}
		current = append(current, line)
	}
	flush()

	segments := make([]model.Segment, len(parts))
	for i, part := range parts {
		title := strings.TrimSpace(strings.TrimLeft(strings.SplitN(part, "\n", 2)[0], "#* "))
		if runes := []rune(title); len(runes) > 80 {
			title = string(runes[:80])
		}
		if title == "" {
			title = fmt.Sprintf("Section %d", i+1)
		}
		segments[i] = model.Segment{
			SegmentID: "seg-" + uuid.NewString(),
			Title:     title,
			Length:    estimateMinutes(part, 5),
			Category:  guessCategory(part),
		}
	}
	return segments
}

// ScoredChunk is one sentence of the material with its retrieval score.
type ScoredChunk struct {
	Index int
	Text  string
	Score float64
}

// splitSentences breaks text on ". " boundaries, the same coarse chunking the
// segment estimates use.
func splitSentences(text string) []string {
	var chunks []string
	rest := text
	for {
		i := strings.Index(rest, ". ")
		if i < 0 {
			break
		}
		chunks = append(chunks, rest[:i+1])
		rest = rest[i+2:]
	}
	chunks = append(chunks, rest)

	out := chunks[:0]
	for _, c := range chunks {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// RankChunks scores each sentence of the text against the query: one point
// per query token present as a substring (case-insensitive, tokens longer
// than one character) plus a length bonus capped at 2. Top candidates are
// returned in descending score order.
func (s *CoachService) RankChunks(query, text string) []ScoredChunk {
	terms := queryToken.Split(strings.ToLower(query), -1)
	scored := make([]ScoredChunk, 0)
	for idx, chunk := range splitSentences(text) {
		lc := strings.ToLower(chunk)
		score := math.Min(2, float64(len([]rune(chunk)))/200)
		for _, t := range terms {
			if len([]rune(t)) > 1 && strings.Contains(lc, t) {
				score++
			}
		}
		scored = append(scored, ScoredChunk{Index: idx, Text: chunk, Score: score})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if len(scored) > s.cfg.MaxCandidates {
		scored = scored[:s.cfg.MaxCandidates]
	}
	return scored
}

// AnswerQuery builds an evidence-gated answer over one material. Chunks at or
// above the configured score are evidence; with none, the fixed refusal is
// returned and no citations are produced.
func (s *CoachService) AnswerQuery(ctx context.Context, userID, materialID, query string) (*model.ChatAnswer, error) {
	mat, err := s.mustGetMaterial(ctx, userID, materialID)
	if err != nil {
		return nil, err
	}

	top := s.RankChunks(query, mat.Text)
	strong := top[:0:0]
	for _, c := range top {
		if c.Score >= s.cfg.MinScore {
			strong = append(strong, c)
		}
	}
	if len(strong) == 0 {
		return &model.ChatAnswer{Text: RefusalMessage, Refused: true}, nil
	}
	if len(strong) > s.cfg.MaxEvidence {
		strong = strong[:s.cfg.MaxEvidence]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n", query)
	b.WriteString("Key evidence:\n")
	citations := make([]model.ChatCitation, len(strong))
	for i, c := range strong {
		fmt.Fprintf(&b, "• %s\n", c.Text)
		snippet := c.Text
		if runes := []rune(snippet); len(runes) > 120 {
			snippet = string(runes[:120]) + "…"
		}
		citations[i] = model.ChatCitation{ChunkIndex: c.Index, Title: mat.Name, Snippet: snippet}
	}
	b.WriteString("\nTIP: set a goal and deadline, then schedule focus sessions for the weakest category.")

	return &model.ChatAnswer{Text: b.String(), Citations: citations}, nil
}

// UploadMaterial stores a text and materializes its segments once, at parse
// time.
func (s *CoachService) UploadMaterial(ctx context.Context, userID, name, text string) (*model.Material, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "material.txt"
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMaterial
	}
	now := time.Now()
	mat := &model.Material{
		MaterialID: "mat-" + uuid.NewString(),
		UserID:     userID,
		Name:       name,
		Text:       text,
		Segments:   ParseSegments(text),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.materials.Insert(ctx, mat); err != nil {
		return nil, err
	}
	return mat, nil
}

func (s *CoachService) ListMaterials(ctx context.Context, userID string) ([]*model.Material, error) {
	return s.materials.List(ctx, userID)
}

func (s *CoachService) GetMaterial(ctx context.Context, userID, materialID string) (*model.Material, error) {
	return s.mustGetMaterial(ctx, userID, materialID)
}

func (s *CoachService) DeleteMaterial(ctx context.Context, userID, materialID string) error {
	if _, err := s.mustGetMaterial(ctx, userID, materialID); err != nil {
		return err
	}
	return s.materials.Delete(ctx, userID, materialID)
}

// MarkSegment sets a segment's completion; completed segments record when.
// Completion state is the only mutable part of a material.
func (s *CoachService) MarkSegment(ctx context.Context, userID, materialID, segmentID string, done bool) error {
	if _, err := s.mustGetMaterial(ctx, userID, materialID); err != nil {
		return err
	}
	var doneAt *time.Time
	if done {
		now := time.Now()
		doneAt = &now
	}
	return s.materials.SetSegmentDone(ctx, userID, materialID, segmentID, done, doneAt)
}

// Summary aggregates segment minutes into the tracker view: totals, rate,
// per-category split and a per-day completion line.
func (s *CoachService) Summary(ctx context.Context, userID, materialID string) (*model.MaterialSummary, error) {
	mat, err := s.mustGetMaterial(ctx, userID, materialID)
	if err != nil {
		return nil, err
	}

	summary := &model.MaterialSummary{}
	byCat := map[string]*model.CategoryMinutes{}
	var catOrder []string
	daily := map[string]int{}

	for _, seg := range mat.Segments {
		summary.TotalMinutes += seg.Length
		cm, ok := byCat[seg.Category]
		if !ok {
			cm = &model.CategoryMinutes{Category: seg.Category}
			byCat[seg.Category] = cm
			catOrder = append(catOrder, seg.Category)
		}
		cm.TotalMinutes += seg.Length
		if seg.Completed {
			summary.DoneMinutes += seg.Length
			cm.DoneMinutes += seg.Length
			if seg.DoneAt != nil {
				daily[seg.DoneAt.Format("2006-01-02")] += seg.Length
			}
		}
	}
	if summary.TotalMinutes > 0 {
		summary.Rate = int(math.Round(float64(summary.DoneMinutes) / float64(summary.TotalMinutes) * 100))
	}
	for _, cat := range catOrder {
		cm := byCat[cat]
		cm.Remaining = cm.TotalMinutes - cm.DoneMinutes
		summary.ByCategory = append(summary.ByCategory, *cm)
	}

	days := make([]string, 0, len(daily))
	for d := range daily {
		days = append(days, d)
	}
	sort.Strings(days)
	for _, d := range days {
		summary.Daily = append(summary.Daily, model.DailyStudyPoint{Date: d, Minutes: daily[d]})
	}
	return summary, nil
}

func (s *CoachService) mustGetMaterial(ctx context.Context, userID, materialID string) (*model.Material, error) {
	mat, err := s.materials.Get(ctx, userID, materialID)
	if err != nil {
		return nil, err
	}
	if mat == nil {
		return nil, ErrMaterialNotFound
	}
	return mat, nil
}
