package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"main/model"
)

const testUser = "user-1"

func TestEnsureDaySeedsOnce(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTodoService()
	key := model.FormatDateKey(time.Now())

	first, err := svc.EnsureDay(ctx, testUser, model.CategoryWorkout, key)
	if err != nil {
		t.Fatalf("EnsureDay: %v", err)
	}
	want := len(model.DefaultDayItems[model.CategoryWorkout])
	if len(first) != want {
		t.Fatalf("expected %d seeded items, got %d", want, len(first))
	}
	for _, it := range first {
		if !it.Seeded {
			t.Errorf("item %q not flagged as seeded", it.Label)
		}
	}

	second, err := svc.EnsureDay(ctx, testUser, model.CategoryWorkout, key)
	if err != nil {
		t.Fatalf("EnsureDay (revisit): %v", err)
	}
	if len(second) != want {
		t.Fatalf("revisit reseeded: expected %d items, got %d", want, len(second))
	}
}

func TestEnsureDayDoesNotReseedClearedDay(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTodoService()
	key := model.FormatDateKey(time.Now())

	items, err := svc.EnsureDay(ctx, testUser, model.CategoryWorkout, key)
	if err != nil {
		t.Fatalf("EnsureDay: %v", err)
	}
	for _, it := range items {
		if err := svc.DeleteTodo(ctx, testUser, it.TodoID); err != nil {
			t.Fatalf("DeleteTodo: %v", err)
		}
	}

	after, err := svc.EnsureDay(ctx, testUser, model.CategoryWorkout, key)
	if err != nil {
		t.Fatalf("EnsureDay (after clear): %v", err)
	}
	if len(after) != 0 {
		t.Fatalf("cleared day was reseeded: got %d items", len(after))
	}
}

func TestEnsureDayUnseededCategories(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTodoService()
	key := model.FormatDateKey(time.Now())

	items, err := svc.EnsureDay(ctx, testUser, model.CategoryStudy, key)
	if err != nil {
		t.Fatalf("EnsureDay: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("category without defaults seeded %d items", len(items))
	}
}

func TestEnsureDayRejectsInvalidKey(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTodoService()

	if _, err := svc.EnsureDay(ctx, testUser, model.CategoryWorkout, "2025-07-09"); err == nil {
		t.Fatal("expected error for malformed date key")
	}
}

func TestAddTodoValidation(t *testing.T) {
	ctx := context.Background()
	key := model.FormatDateKey(time.Now())

	tests := []struct {
		name       string
		categoryID string
		dateKey    model.DateKey
		label      string
		minutes    int
		wantErr    error
	}{
		{"empty label", model.CategoryStudy, key, "", 0, ErrEmptyLabel},
		{"whitespace label", model.CategoryStudy, key, "   ", 0, ErrEmptyLabel},
		{"negative minutes", model.CategoryStudy, key, "Read chapter 3", -10, ErrNegativeTime},
		{"unknown extra category", "cat-missing", key, "Read chapter 3", 0, ErrCategoryNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, _, _ := newTodoService()
			_, err := svc.AddTodo(ctx, testUser, tc.categoryID, tc.dateKey, tc.label, tc.minutes)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestAddTodoTrimsLabel(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTodoService()
	key := model.FormatDateKey(time.Now())

	item, err := svc.AddTodo(ctx, testUser, model.CategoryStudy, key, "  Read chapter 3  ", 30)
	if err != nil {
		t.Fatalf("AddTodo: %v", err)
	}
	if item.Label != "Read chapter 3" {
		t.Errorf("label not trimmed: %q", item.Label)
	}
	if item.Time != 30 {
		t.Errorf("expected 30 minutes, got %d", item.Time)
	}
	if item.Done {
		t.Error("new item should not be done")
	}
}

func TestToggleTodoTimeline(t *testing.T) {
	ctx := context.Background()
	svc, _, timeline, _ := newTodoService()
	key := model.FormatDateKey(time.Now())

	item, err := svc.AddTodo(ctx, testUser, model.CategoryExamPrep, key, "Vocabulary drill", 15)
	if err != nil {
		t.Fatalf("AddTodo: %v", err)
	}

	toggled, err := svc.ToggleTodo(ctx, testUser, item.TodoID)
	if err != nil {
		t.Fatalf("ToggleTodo: %v", err)
	}
	if !toggled.Done {
		t.Fatal("expected item done after toggle")
	}
	entries, _ := timeline.List(ctx, testUser)
	if len(entries) != 1 {
		t.Fatalf("expected 1 timeline entry, got %d", len(entries))
	}
	if entries[0].Text != "Exam prep - Vocabulary drill" {
		t.Errorf("unexpected timeline text %q", entries[0].Text)
	}
	if entries[0].TodoID != item.TodoID || entries[0].DateKey != key {
		t.Error("timeline entry does not reference the toggled item")
	}

	untoggled, err := svc.ToggleTodo(ctx, testUser, item.TodoID)
	if err != nil {
		t.Fatalf("ToggleTodo (undo): %v", err)
	}
	if untoggled.Done {
		t.Fatal("expected item not done after second toggle")
	}
	entries, _ = timeline.List(ctx, testUser)
	if len(entries) != 0 {
		t.Fatalf("untoggle left %d timeline entries", len(entries))
	}
}

func TestToggleTodoReappendsAtEnd(t *testing.T) {
	ctx := context.Background()
	svc, _, timeline, _ := newTodoService()
	key := model.FormatDateKey(time.Now())

	first, _ := svc.AddTodo(ctx, testUser, model.CategoryWorkout, key, "Cardio 30 min", 30)
	second, _ := svc.AddTodo(ctx, testUser, model.CategoryWorkout, key, "Stretching 10 min", 10)

	if _, err := svc.ToggleTodo(ctx, testUser, first.TodoID); err != nil {
		t.Fatalf("toggle first: %v", err)
	}
	if _, err := svc.ToggleTodo(ctx, testUser, second.TodoID); err != nil {
		t.Fatalf("toggle second: %v", err)
	}
	// Undo and redo the first item: its entry moves to the end of the log.
	if _, err := svc.ToggleTodo(ctx, testUser, first.TodoID); err != nil {
		t.Fatalf("untoggle first: %v", err)
	}
	if _, err := svc.ToggleTodo(ctx, testUser, first.TodoID); err != nil {
		t.Fatalf("retoggle first: %v", err)
	}

	entries, _ := timeline.List(ctx, testUser)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].TodoID != second.TodoID || entries[1].TodoID != first.TodoID {
		t.Error("re-completed item was not appended at the end")
	}
}

func TestToggleTodoNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTodoService()

	if _, err := svc.ToggleTodo(ctx, testUser, "missing"); !errors.Is(err, ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound, got %v", err)
	}
}

func TestDeleteTodoPurgesTimeline(t *testing.T) {
	ctx := context.Background()
	svc, todos, timeline, _ := newTodoService()
	key := model.FormatDateKey(time.Now())

	item, _ := svc.AddTodo(ctx, testUser, model.CategoryStudy, key, "Grammar review", 20)
	if _, err := svc.ToggleTodo(ctx, testUser, item.TodoID); err != nil {
		t.Fatalf("ToggleTodo: %v", err)
	}
	if err := svc.DeleteTodo(ctx, testUser, item.TodoID); err != nil {
		t.Fatalf("DeleteTodo: %v", err)
	}

	if got, _ := todos.Get(ctx, testUser, item.TodoID); got != nil {
		t.Error("item still present after delete")
	}
	if entries, _ := timeline.List(ctx, testUser); len(entries) != 0 {
		t.Errorf("delete left %d timeline entries", len(entries))
	}
}

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTodoService()

	cat, err := svc.CreateCategory(ctx, testUser, "  어휘  ")
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if cat.Name != "어휘" {
		t.Errorf("name not trimmed: %q", cat.Name)
	}
	if cat.CategoryID == "" {
		t.Error("category ID not assigned")
	}

	if _, err := svc.CreateCategory(ctx, testUser, "   "); !errors.Is(err, ErrEmptyCategoryName) {
		t.Fatalf("expected ErrEmptyCategoryName, got %v", err)
	}
}

func TestEnsureCategoryByNameReuses(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTodoService()

	first, err := svc.EnsureCategoryByName(ctx, testUser, "어휘")
	if err != nil {
		t.Fatalf("EnsureCategoryByName: %v", err)
	}
	second, err := svc.EnsureCategoryByName(ctx, testUser, "어휘")
	if err != nil {
		t.Fatalf("EnsureCategoryByName (again): %v", err)
	}
	if first.CategoryID != second.CategoryID {
		t.Errorf("same name produced two categories: %s vs %s", first.CategoryID, second.CategoryID)
	}
}

func TestDeleteCategoryCascades(t *testing.T) {
	ctx := context.Background()
	svc, todos, timeline, _ := newTodoService()
	key := model.FormatDateKey(time.Now())

	cat, err := svc.CreateCategory(ctx, testUser, "어휘")
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	item, err := svc.AddTodo(ctx, testUser, cat.CategoryID, key, "Word list 1-50", 15)
	if err != nil {
		t.Fatalf("AddTodo: %v", err)
	}
	if _, err := svc.ToggleTodo(ctx, testUser, item.TodoID); err != nil {
		t.Fatalf("ToggleTodo: %v", err)
	}

	if err := svc.DeleteCategory(ctx, testUser, cat.CategoryID); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}

	if remaining, _ := todos.ListAll(ctx, testUser); len(remaining) != 0 {
		t.Errorf("cascade left %d todos", len(remaining))
	}
	if entries, _ := timeline.List(ctx, testUser); len(entries) != 0 {
		t.Errorf("cascade left %d timeline entries", len(entries))
	}
	if cats, _ := svc.ListCategories(ctx, testUser); len(cats) != 0 {
		t.Errorf("category document survived: %d left", len(cats))
	}
}

func TestDeleteCategoryGuards(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTodoService()

	if err := svc.DeleteCategory(ctx, testUser, model.CategoryWorkout); !errors.Is(err, ErrBuiltinCategory) {
		t.Fatalf("expected ErrBuiltinCategory, got %v", err)
	}
	if err := svc.DeleteCategory(ctx, testUser, "cat-missing"); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCategoryLabel(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTodoService()
	cat, _ := svc.CreateCategory(ctx, testUser, "어휘")

	tests := []struct {
		categoryID string
		want       string
	}{
		{model.CategoryWorkout, "Workout"},
		{model.CategoryExamPrep, "Exam prep"},
		{cat.CategoryID, "어휘"},
		{"cat-unknown", "cat-unknown"},
	}
	for _, tc := range tests {
		if got := svc.CategoryLabel(ctx, testUser, tc.categoryID); got != tc.want {
			t.Errorf("CategoryLabel(%s) = %q, want %q", tc.categoryID, got, tc.want)
		}
	}
}

func TestTodosIsolatedPerUser(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTodoService()
	key := model.FormatDateKey(time.Now())

	for i := 0; i < 3; i++ {
		if _, err := svc.AddTodo(ctx, testUser, model.CategoryStudy, key, fmt.Sprintf("Task %d", i), 0); err != nil {
			t.Fatalf("AddTodo: %v", err)
		}
	}
	other, err := svc.EnsureDay(ctx, "user-2", model.CategoryStudy, key)
	if err != nil {
		t.Fatalf("EnsureDay: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("second user sees %d foreign items", len(other))
	}
}
