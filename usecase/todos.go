package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"main/model"

	"github.com/google/uuid"
)

// TodoService owns the date-bucketed todo stores and their timeline
// side effects. Completing an item appends a timeline entry; untoggling or
// deleting the item retracts every entry for that (todo, day) pair.
type TodoService struct {
	todos      TodoStore
	days       DayMarkStore
	categories CategoryStore
	timeline   TimelineStore
}

func NewTodoService(todos TodoStore, days DayMarkStore, categories CategoryStore, timeline TimelineStore) *TodoService {
	return &TodoService{
		todos:      todos,
		days:       days,
		categories: categories,
		timeline:   timeline,
	}
}

var builtinLabels = map[string]string{
	model.CategoryWorkout:      "Workout",
	model.CategoryExamPrep:     "Exam prep",
	model.CategoryConversation: "Conversation",
	model.CategoryStudy:        "Study",
}

// CategoryLabel resolves a category's display name. Unknown IDs fall back to
// the ID itself, the way the dashboard renders them.
func (s *TodoService) CategoryLabel(ctx context.Context, userID, categoryID string) string {
	if label, ok := builtinLabels[categoryID]; ok {
		return label
	}
	if cat, err := s.categories.Get(ctx, userID, categoryID); err == nil && cat != nil {
		return cat.Name
	}
	return categoryID
}

// EnsureDay returns the item list for one (category, day) bucket, seeding the
// category's default set the first time that day is visited. Seeding runs once
// per bucket: a day mark is written alongside the seed, so deleting every item
// later does not bring the defaults back.
func (s *TodoService) EnsureDay(ctx context.Context, userID, categoryID string, key model.DateKey) ([]*model.TodoItem, error) {
	if !key.IsValid() {
		return nil, fmt.Errorf("invalid date key %q", key)
	}
	marked, err := s.days.Marked(ctx, userID, categoryID, key)
	if err != nil {
		return nil, err
	}
	if marked {
		return s.todos.ListDay(ctx, userID, categoryID, key)
	}

	now := time.Now()
	defaults := model.DefaultDayItems[categoryID]
	seeded := make([]*model.TodoItem, 0, len(defaults))
	for _, label := range defaults {
		seeded = append(seeded, &model.TodoItem{
			TodoID:     newTodoID(categoryID),
			UserID:     userID,
			CategoryID: categoryID,
			DateKey:    key,
			Label:      label,
			Seeded:     true,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}
	if len(seeded) > 0 {
		if err := s.todos.InsertMany(ctx, seeded); err != nil {
			return nil, err
		}
	}
	if err := s.days.Mark(ctx, userID, categoryID, key); err != nil {
		return nil, err
	}
	return s.todos.ListDay(ctx, userID, categoryID, key)
}

// AddTodo appends a new item to a day bucket. Empty or whitespace-only labels
// are rejected.
func (s *TodoService) AddTodo(ctx context.Context, userID, categoryID string, key model.DateKey, label string, minutes int) (*model.TodoItem, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, ErrEmptyLabel
	}
	if minutes < 0 {
		return nil, ErrNegativeTime
	}
	if !key.IsValid() {
		return nil, fmt.Errorf("invalid date key %q", key)
	}
	if !model.IsBuiltinCategory(categoryID) {
		if _, err := s.mustGetCategory(ctx, userID, categoryID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	item := &model.TodoItem{
		TodoID:     newTodoID(categoryID),
		UserID:     userID,
		CategoryID: categoryID,
		DateKey:    key,
		Label:      label,
		Time:       minutes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.todos.Insert(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ToggleTodo flips an item's done flag. Completing records a timeline entry;
// untoggling retracts all entries for that (todo, day) pair. A re-completed
// item's entry is appended at the end of the timeline, not restored in place.
func (s *TodoService) ToggleTodo(ctx context.Context, userID, todoID string) (*model.TodoItem, error) {
	item, err := s.todos.Get(ctx, userID, todoID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrTodoNotFound
	}

	now := time.Now()
	next := !item.Done
	if err := s.todos.SetDone(ctx, userID, todoID, next, now); err != nil {
		return nil, err
	}
	item.Done = next
	item.UpdatedAt = now

	if next {
		label := s.CategoryLabel(ctx, userID, item.CategoryID)
		entry := &model.TimelineEntry{
			UserID:     userID,
			Text:       fmt.Sprintf("%s - %s", label, item.Label),
			CategoryID: item.CategoryID,
			Label:      item.Label,
			TodoID:     item.TodoID,
			DateKey:    item.DateKey,
			Time:       now.Format("15:04"),
			CreatedAt:  now,
		}
		if err := s.timeline.Append(ctx, entry); err != nil {
			return nil, err
		}
	} else {
		if err := s.timeline.DeleteByTodo(ctx, userID, item.TodoID, item.DateKey); err != nil {
			return nil, err
		}
	}
	return item, nil
}

// DeleteTodo removes an item and purges its timeline entries for that day.
// Seeded defaults are ordinary items once materialized; deleting them does not
// re-trigger seeding.
func (s *TodoService) DeleteTodo(ctx context.Context, userID, todoID string) error {
	item, err := s.todos.Get(ctx, userID, todoID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrTodoNotFound
	}
	if err := s.todos.Delete(ctx, userID, todoID); err != nil {
		return err
	}
	return s.timeline.DeleteByTodo(ctx, userID, item.TodoID, item.DateKey)
}

// ListCategories returns the user's extra categories.
func (s *TodoService) ListCategories(ctx context.Context, userID string) ([]*model.Category, error) {
	return s.categories.List(ctx, userID)
}

// CreateCategory adds a user-defined category.
func (s *TodoService) CreateCategory(ctx context.Context, userID, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyCategoryName
	}
	cat := &model.Category{
		CategoryID: "cat-" + uuid.NewString(),
		UserID:     userID,
		Name:       name,
		CreatedAt:  time.Now(),
	}
	if err := s.categories.Insert(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// EnsureCategoryByName reuses the extra category matching the exact name or
// creates a new one.
func (s *TodoService) EnsureCategoryByName(ctx context.Context, userID, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyCategoryName
	}
	found, err := s.categories.FindByName(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	if found != nil {
		return found, nil
	}
	return s.CreateCategory(ctx, userID, name)
}

// DeleteCategory removes an extra category and cascades: every todo under it
// for every date, its day marks, and every timeline entry referencing it.
func (s *TodoService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	if model.IsBuiltinCategory(categoryID) {
		return ErrBuiltinCategory
	}
	if _, err := s.mustGetCategory(ctx, userID, categoryID); err != nil {
		return err
	}
	if err := s.todos.DeleteByCategory(ctx, userID, categoryID); err != nil {
		return err
	}
	if err := s.days.DeleteByCategory(ctx, userID, categoryID); err != nil {
		return err
	}
	if err := s.timeline.DeleteByCategory(ctx, userID, categoryID); err != nil {
		return err
	}
	return s.categories.Delete(ctx, userID, categoryID)
}

// Timeline returns the user's completion log, oldest first.
func (s *TodoService) Timeline(ctx context.Context, userID string) ([]*model.TimelineEntry, error) {
	return s.timeline.List(ctx, userID)
}

func (s *TodoService) mustGetCategory(ctx context.Context, userID, categoryID string) (*model.Category, error) {
	cat, err := s.categories.Get(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, ErrCategoryNotFound
	}
	return cat, nil
}

func newTodoID(categoryID string) string {
	return categoryID + "-" + uuid.NewString()
}
