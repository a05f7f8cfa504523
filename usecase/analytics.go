package usecase

import (
	"context"
	"math"
	"time"

	"main/config"
	"main/model"
)

// AnalyticsService computes completion metrics over the todo stores and risk
// classifications over the seeded KPI rows.
type AnalyticsService struct {
	todos       TodoStore
	categories  CategoryStore
	suggestions SuggestionStore
	kpis        KPIStore
	cfg         config.AnalyticsConfig
}

func NewAnalyticsService(todos TodoStore, categories CategoryStore, suggestions SuggestionStore, kpis KPIStore, cfg config.AnalyticsConfig) *AnalyticsService {
	return &AnalyticsService{
		todos:       todos,
		categories:  categories,
		suggestions: suggestions,
		kpis:        kpis,
		cfg:         cfg,
	}
}

// CompletionRate is the done percentage of a sequence, rounded; 0 for an empty
// sequence.
func CompletionRate(items []*model.TodoItem) int {
	if len(items) == 0 {
		return 0
	}
	done := 0
	for _, it := range items {
		if it.Done {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(items)) * 100))
}

// TimeWeightedCompletion weights completion by estimated minutes; 0 when the
// sequence carries no time at all.
func TimeWeightedCompletion(items []*model.TodoItem) int {
	total, done := 0, 0
	for _, it := range items {
		total += it.Time
		if it.Done {
			done += it.Time
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}

// WeeklyDelta is doneCount(this week) - doneCount(last week) for one category,
// weeks being the Monday-start 7-day windows around the reference date.
func (s *AnalyticsService) WeeklyDelta(ctx context.Context, userID, categoryID string, reference time.Time) (int, error) {
	thisWeek, err := s.todos.CountDone(ctx, userID, categoryID, model.WeekDateKeys(reference, 0))
	if err != nil {
		return 0, err
	}
	lastWeek, err := s.todos.CountDone(ctx, userID, categoryID, model.WeekDateKeys(reference, -1))
	if err != nil {
		return 0, err
	}
	return thisWeek - lastWeek, nil
}

// WeeklyDeltaSeries computes the weekly delta for every category the user has,
// built-ins first, in the order the dashboard charts them.
func (s *AnalyticsService) WeeklyDeltaSeries(ctx context.Context, userID string, reference time.Time) ([]model.WeeklyDeltaPoint, error) {
	extras, err := s.categories.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	points := make([]model.WeeklyDeltaPoint, 0, len(model.BuiltinCategoryIDs)+len(extras))
	for _, id := range model.BuiltinCategoryIDs {
		delta, err := s.WeeklyDelta(ctx, userID, id, reference)
		if err != nil {
			return nil, err
		}
		points = append(points, model.WeeklyDeltaPoint{CategoryID: id, Label: builtinLabels[id], Value: delta})
	}
	for _, cat := range extras {
		delta, err := s.WeeklyDelta(ctx, userID, cat.CategoryID, reference)
		if err != nil {
			return nil, err
		}
		points = append(points, model.WeeklyDeltaPoint{CategoryID: cat.CategoryID, Label: cat.Name, Value: delta})
	}
	return points, nil
}

// ClassifyKPI buckets a row by how far progress sits from target. The risk
// margin comes from configuration, not a hardcoded constant.
func (s *AnalyticsService) ClassifyKPI(row *model.KPIRow) model.KPIStatus {
	switch {
	case row.Progress < row.Target-s.cfg.RiskMargin:
		return model.KPIAtRisk
	case row.Progress >= row.Target:
		return model.KPIOnTrack
	default:
		return model.KPINeedsReinforcement
	}
}

// KPIRowView is a KPI row with its classification attached.
type KPIRowView struct {
	model.KPIRow
	Status model.KPIStatus `json:"status"`
}

// KPIRows returns the user's seeded dashboard rows, classified.
func (s *AnalyticsService) KPIRows(ctx context.Context, userID string) ([]KPIRowView, error) {
	rows, err := s.kpis.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	views := make([]KPIRowView, len(rows))
	for i, row := range rows {
		views[i] = KPIRowView{KPIRow: *row, Status: s.ClassifyKPI(row)}
	}
	return views, nil
}

// KPISummary aggregates the dashboard headline numbers: average progress and
// target, at-risk and improving row counts, and open suggestion counts.
func (s *AnalyticsService) KPISummary(ctx context.Context, userID string) (*model.KPISummary, error) {
	rows, err := s.kpis.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &model.KPISummary{}
	if len(rows) > 0 {
		progressSum, targetSum := 0, 0
		for _, row := range rows {
			progressSum += row.Progress
			targetSum += row.Target
			if s.ClassifyKPI(row) == model.KPIAtRisk {
				summary.AtRiskCount++
			}
			if row.Delta > 0 {
				summary.ImprovingCount++
			}
		}
		summary.AvgProgress = int(math.Round(float64(progressSum) / float64(len(rows))))
		summary.AvgTarget = int(math.Round(float64(targetSum) / float64(len(rows))))
	}

	open, err := s.suggestions.List(ctx, userID, model.SuggestionOpen)
	if err != nil {
		return nil, err
	}
	summary.OpenSuggestions = len(open)
	for _, sg := range open {
		if sg.Severity == model.SeverityHigh {
			summary.HighSeverity++
		}
	}
	return summary, nil
}

// DayCompletion reports plain and time-weighted completion for one
// (category, day) bucket.
func (s *AnalyticsService) DayCompletion(ctx context.Context, userID, categoryID string, key model.DateKey) (rate, weighted int, err error) {
	items, err := s.todos.ListDay(ctx, userID, categoryID, key)
	if err != nil {
		return 0, 0, err
	}
	return CompletionRate(items), TimeWeightedCompletion(items), nil
}
