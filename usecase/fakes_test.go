package usecase

import (
	"context"
	"fmt"
	"time"

	"main/model"
)

// In-memory store fakes backing the service tests. Each fake keeps the same
// filtering semantics as the mongo repositories (per-user isolation, nil for
// missing documents) without a running database.

type memTodoStore struct {
	items []*model.TodoItem
}

func (m *memTodoStore) ListDay(_ context.Context, userID, categoryID string, key model.DateKey) ([]*model.TodoItem, error) {
	var out []*model.TodoItem
	for _, it := range m.items {
		if it.UserID == userID && it.CategoryID == categoryID && it.DateKey == key {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *memTodoStore) ListAll(_ context.Context, userID string) ([]*model.TodoItem, error) {
	var out []*model.TodoItem
	for _, it := range m.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *memTodoStore) Get(_ context.Context, userID, todoID string) (*model.TodoItem, error) {
	for _, it := range m.items {
		if it.UserID == userID && it.TodoID == todoID {
			return it, nil
		}
	}
	return nil, nil
}

func (m *memTodoStore) Insert(_ context.Context, item *model.TodoItem) error {
	m.items = append(m.items, item)
	return nil
}

func (m *memTodoStore) InsertMany(_ context.Context, items []*model.TodoItem) error {
	m.items = append(m.items, items...)
	return nil
}

func (m *memTodoStore) SetDone(_ context.Context, userID, todoID string, done bool, at time.Time) error {
	for _, it := range m.items {
		if it.UserID == userID && it.TodoID == todoID {
			it.Done = done
			it.UpdatedAt = at
			return nil
		}
	}
	return fmt.Errorf("todo %s not found", todoID)
}

func (m *memTodoStore) Delete(_ context.Context, userID, todoID string) error {
	kept := m.items[:0]
	for _, it := range m.items {
		if !(it.UserID == userID && it.TodoID == todoID) {
			kept = append(kept, it)
		}
	}
	m.items = kept
	return nil
}

func (m *memTodoStore) DeleteByCategory(_ context.Context, userID, categoryID string) error {
	kept := m.items[:0]
	for _, it := range m.items {
		if !(it.UserID == userID && it.CategoryID == categoryID) {
			kept = append(kept, it)
		}
	}
	m.items = kept
	return nil
}

func (m *memTodoStore) CountDone(_ context.Context, userID, categoryID string, keys []model.DateKey) (int, error) {
	inKeys := make(map[model.DateKey]bool, len(keys))
	for _, k := range keys {
		inKeys[k] = true
	}
	count := 0
	for _, it := range m.items {
		if it.UserID == userID && it.CategoryID == categoryID && it.Done && inKeys[it.DateKey] {
			count++
		}
	}
	return count, nil
}

func (m *memTodoStore) Count(_ context.Context, userID string, done *bool) (int, error) {
	count := 0
	for _, it := range m.items {
		if it.UserID != userID {
			continue
		}
		if done != nil && it.Done != *done {
			continue
		}
		count++
	}
	return count, nil
}

type memDayMarkStore struct {
	marks map[string]bool
}

func newMemDayMarkStore() *memDayMarkStore {
	return &memDayMarkStore{marks: make(map[string]bool)}
}

func dayMarkKey(userID, categoryID string, key model.DateKey) string {
	return userID + "|" + categoryID + "|" + string(key)
}

func (m *memDayMarkStore) Marked(_ context.Context, userID, categoryID string, key model.DateKey) (bool, error) {
	return m.marks[dayMarkKey(userID, categoryID, key)], nil
}

func (m *memDayMarkStore) Mark(_ context.Context, userID, categoryID string, key model.DateKey) error {
	m.marks[dayMarkKey(userID, categoryID, key)] = true
	return nil
}

func (m *memDayMarkStore) DeleteByCategory(_ context.Context, userID, categoryID string) error {
	prefix := userID + "|" + categoryID + "|"
	for k := range m.marks {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(m.marks, k)
		}
	}
	return nil
}

type memCategoryStore struct {
	cats []*model.Category
}

func (m *memCategoryStore) List(_ context.Context, userID string) ([]*model.Category, error) {
	var out []*model.Category
	for _, c := range m.cats {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCategoryStore) Get(_ context.Context, userID, categoryID string) (*model.Category, error) {
	for _, c := range m.cats {
		if c.UserID == userID && c.CategoryID == categoryID {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memCategoryStore) FindByName(_ context.Context, userID, name string) (*model.Category, error) {
	for _, c := range m.cats {
		if c.UserID == userID && c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memCategoryStore) Insert(_ context.Context, cat *model.Category) error {
	m.cats = append(m.cats, cat)
	return nil
}

func (m *memCategoryStore) Delete(_ context.Context, userID, categoryID string) error {
	kept := m.cats[:0]
	for _, c := range m.cats {
		if !(c.UserID == userID && c.CategoryID == categoryID) {
			kept = append(kept, c)
		}
	}
	m.cats = kept
	return nil
}

type memTimelineStore struct {
	entries []*model.TimelineEntry
}

func (m *memTimelineStore) List(_ context.Context, userID string) ([]*model.TimelineEntry, error) {
	var out []*model.TimelineEntry
	for _, e := range m.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memTimelineStore) Append(_ context.Context, entry *model.TimelineEntry) error {
	m.entries = append(m.entries, entry)
	return nil
}

func (m *memTimelineStore) DeleteByTodo(_ context.Context, userID, todoID string, key model.DateKey) error {
	kept := m.entries[:0]
	for _, e := range m.entries {
		if !(e.UserID == userID && e.TodoID == todoID && e.DateKey == key) {
			kept = append(kept, e)
		}
	}
	m.entries = kept
	return nil
}

func (m *memTimelineStore) DeleteByCategory(_ context.Context, userID, categoryID string) error {
	kept := m.entries[:0]
	for _, e := range m.entries {
		if !(e.UserID == userID && e.CategoryID == categoryID) {
			kept = append(kept, e)
		}
	}
	m.entries = kept
	return nil
}

func (m *memTimelineStore) Count(_ context.Context, userID string) (int, error) {
	count := 0
	for _, e := range m.entries {
		if e.UserID == userID {
			count++
		}
	}
	return count, nil
}

type memSuggestionStore struct {
	suggestions []*model.Suggestion
}

func (m *memSuggestionStore) List(_ context.Context, userID string, status model.SuggestionStatus) ([]*model.Suggestion, error) {
	var out []*model.Suggestion
	for _, s := range m.suggestions {
		if s.UserID != userID {
			continue
		}
		if status != "" && s.Status != status {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (m *memSuggestionStore) Get(_ context.Context, userID, suggestionID string) (*model.Suggestion, error) {
	for _, s := range m.suggestions {
		if s.UserID == userID && s.SuggestionID == suggestionID {
			return s, nil
		}
	}
	return nil, nil
}

func (m *memSuggestionStore) InsertMany(_ context.Context, suggestions []*model.Suggestion) error {
	m.suggestions = append(m.suggestions, suggestions...)
	return nil
}

func (m *memSuggestionStore) SetStatus(_ context.Context, userID, suggestionID string, status model.SuggestionStatus, at time.Time) error {
	for _, s := range m.suggestions {
		if s.UserID == userID && s.SuggestionID == suggestionID {
			s.Status = status
			s.UpdatedAt = at
			return nil
		}
	}
	return fmt.Errorf("suggestion %s not found", suggestionID)
}

func (m *memSuggestionStore) CountByStatus(_ context.Context, userID string) (map[model.SuggestionStatus]int, error) {
	counts := make(map[model.SuggestionStatus]int)
	for _, s := range m.suggestions {
		if s.UserID == userID {
			counts[s.Status]++
		}
	}
	return counts, nil
}

func (m *memSuggestionStore) CountOpenBySeverity(_ context.Context, userID string, severity model.SuggestionSeverity) (int, error) {
	count := 0
	for _, s := range m.suggestions {
		if s.UserID == userID && s.Status == model.SuggestionOpen && s.Severity == severity {
			count++
		}
	}
	return count, nil
}

type memKPIStore struct {
	rows []*model.KPIRow
}

func (m *memKPIStore) List(_ context.Context, userID string) ([]*model.KPIRow, error) {
	var out []*model.KPIRow
	for _, r := range m.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memKPIStore) InsertMany(_ context.Context, rows []*model.KPIRow) error {
	m.rows = append(m.rows, rows...)
	return nil
}

type memMaterialStore struct {
	materials []*model.Material
}

func (m *memMaterialStore) List(_ context.Context, userID string) ([]*model.Material, error) {
	var out []*model.Material
	for _, mat := range m.materials {
		if mat.UserID == userID {
			out = append(out, mat)
		}
	}
	return out, nil
}

func (m *memMaterialStore) Get(_ context.Context, userID, materialID string) (*model.Material, error) {
	for _, mat := range m.materials {
		if mat.UserID == userID && mat.MaterialID == materialID {
			return mat, nil
		}
	}
	return nil, nil
}

func (m *memMaterialStore) Insert(_ context.Context, mat *model.Material) error {
	m.materials = append(m.materials, mat)
	return nil
}

func (m *memMaterialStore) SetSegmentDone(_ context.Context, userID, materialID, segmentID string, done bool, doneAt *time.Time) error {
	for _, mat := range m.materials {
		if mat.UserID != userID || mat.MaterialID != materialID {
			continue
		}
		for i := range mat.Segments {
			if mat.Segments[i].SegmentID == segmentID {
				mat.Segments[i].Completed = done
				mat.Segments[i].DoneAt = doneAt
				return nil
			}
		}
	}
	return fmt.Errorf("segment %s not found", segmentID)
}

func (m *memMaterialStore) Delete(_ context.Context, userID, materialID string) error {
	kept := m.materials[:0]
	for _, mat := range m.materials {
		if !(mat.UserID == userID && mat.MaterialID == materialID) {
			kept = append(kept, mat)
		}
	}
	m.materials = kept
	return nil
}

type memJourneyStore struct {
	journeys []*model.Journey
}

func (m *memJourneyStore) Get(_ context.Context, userID, journeyID string) (*model.Journey, error) {
	for _, j := range m.journeys {
		if j.UserID == userID && j.JourneyID == journeyID {
			return j, nil
		}
	}
	return nil, nil
}

func (m *memJourneyStore) Insert(_ context.Context, j *model.Journey) error {
	m.journeys = append(m.journeys, j)
	return nil
}

func (m *memJourneyStore) Update(_ context.Context, j *model.Journey) error {
	for i, existing := range m.journeys {
		if existing.UserID == j.UserID && existing.JourneyID == j.JourneyID {
			m.journeys[i] = j
			return nil
		}
	}
	return fmt.Errorf("journey %s not found", j.JourneyID)
}

func newTodoService() (*TodoService, *memTodoStore, *memTimelineStore, *memCategoryStore) {
	todos := &memTodoStore{}
	timeline := &memTimelineStore{}
	cats := &memCategoryStore{}
	svc := NewTodoService(todos, newMemDayMarkStore(), cats, timeline)
	return svc, todos, timeline, cats
}
