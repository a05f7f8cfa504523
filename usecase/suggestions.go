package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"main/model"
)

// SuggestionService manages coaching suggestions. Applying one materializes a
// todo item dated today in a resolved category; both apply and dismiss are
// terminal.
type SuggestionService struct {
	suggestions SuggestionStore
	todos       *TodoService
}

func NewSuggestionService(suggestions SuggestionStore, todos *TodoService) *SuggestionService {
	return &SuggestionService{suggestions: suggestions, todos: todos}
}

// Suggestion category labels are free text; keyword matching maps them onto
// the built-in categories, anything unmatched becomes (or reuses) an extra
// category named exactly after the label.
var categoryKeywords = []struct {
	id    string
	words []string
}{
	{model.CategoryWorkout, []string{"운동", "유산소", "workout", "cardio", "fitness"}},
	{model.CategoryExamPrep, []string{"토익", "toeic", "시험", "exam"}},
	{model.CategoryConversation, []string{"회화", "conversation", "speaking"}},
	{model.CategoryStudy, []string{"공부", "학습", "study"}},
}

// ResolveCategory maps a suggestion's category label to a category ID,
// creating an extra category when no keyword matches.
func (s *SuggestionService) ResolveCategory(ctx context.Context, userID, label string) (string, error) {
	lc := strings.ToLower(strings.TrimSpace(label))
	for _, ck := range categoryKeywords {
		for _, w := range ck.words {
			if strings.Contains(lc, w) {
				return ck.id, nil
			}
		}
	}
	cat, err := s.todos.EnsureCategoryByName(ctx, userID, label)
	if err != nil {
		return "", err
	}
	return cat.CategoryID, nil
}

// List returns suggestions, optionally filtered by status ("" = all).
func (s *SuggestionService) List(ctx context.Context, userID string, status model.SuggestionStatus) ([]*model.Suggestion, error) {
	return s.suggestions.List(ctx, userID, status)
}

// Apply marks a suggestion applied and creates one todo item dated today in
// the resolved category, labeled by the suggestion's action (title as
// fallback). Re-applying is a no-op error: only open suggestions apply.
func (s *SuggestionService) Apply(ctx context.Context, userID, suggestionID string) (*model.TodoItem, error) {
	sg, err := s.suggestions.Get(ctx, userID, suggestionID)
	if err != nil {
		return nil, err
	}
	if sg == nil {
		return nil, ErrSuggestionNotFound
	}
	if sg.Status != model.SuggestionOpen {
		return nil, ErrSuggestionClosed
	}

	categoryID, err := s.ResolveCategory(ctx, userID, sg.Category)
	if err != nil {
		return nil, err
	}

	label := sg.Action.Label
	if label == "" {
		label = sg.Title
	}

	now := time.Now()
	item, err := s.todos.AddTodo(ctx, userID, categoryID, model.FormatDateKey(now), label, 0)
	if err != nil {
		return nil, err
	}
	if err := s.suggestions.SetStatus(ctx, userID, suggestionID, model.SuggestionApplied, now); err != nil {
		// The suggestion is still open; remove the todo so a retry does not
		// duplicate it.
		if derr := s.todos.DeleteTodo(ctx, userID, item.TodoID); derr != nil {
			log.Printf("failed to remove todo %s after status update error: %v", item.TodoID, derr)
		}
		return nil, err
	}
	return item, nil
}

// Dismiss marks an open suggestion dismissed.
func (s *SuggestionService) Dismiss(ctx context.Context, userID, suggestionID string) error {
	sg, err := s.suggestions.Get(ctx, userID, suggestionID)
	if err != nil {
		return err
	}
	if sg == nil {
		return ErrSuggestionNotFound
	}
	if sg.Status != model.SuggestionOpen {
		return ErrSuggestionClosed
	}
	return s.suggestions.SetStatus(ctx, userID, suggestionID, model.SuggestionDismissed, time.Now())
}
