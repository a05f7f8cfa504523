package usecase

import (
	"context"
	"time"

	"main/model"
)

// Store interfaces consumed by the services. The mongo-backed implementations
// live in the repository package; tests substitute in-memory fakes.

type TodoStore interface {
	ListDay(ctx context.Context, userID, categoryID string, key model.DateKey) ([]*model.TodoItem, error)
	ListAll(ctx context.Context, userID string) ([]*model.TodoItem, error)
	Get(ctx context.Context, userID, todoID string) (*model.TodoItem, error)
	Insert(ctx context.Context, item *model.TodoItem) error
	InsertMany(ctx context.Context, items []*model.TodoItem) error
	SetDone(ctx context.Context, userID, todoID string, done bool, at time.Time) error
	Delete(ctx context.Context, userID, todoID string) error
	DeleteByCategory(ctx context.Context, userID, categoryID string) error
	CountDone(ctx context.Context, userID, categoryID string, keys []model.DateKey) (int, error)
	Count(ctx context.Context, userID string, done *bool) (int, error)
}

type DayMarkStore interface {
	Marked(ctx context.Context, userID, categoryID string, key model.DateKey) (bool, error)
	Mark(ctx context.Context, userID, categoryID string, key model.DateKey) error
	DeleteByCategory(ctx context.Context, userID, categoryID string) error
}

type CategoryStore interface {
	List(ctx context.Context, userID string) ([]*model.Category, error)
	Get(ctx context.Context, userID, categoryID string) (*model.Category, error)
	FindByName(ctx context.Context, userID, name string) (*model.Category, error)
	Insert(ctx context.Context, cat *model.Category) error
	Delete(ctx context.Context, userID, categoryID string) error
}

type TimelineStore interface {
	List(ctx context.Context, userID string) ([]*model.TimelineEntry, error)
	Append(ctx context.Context, entry *model.TimelineEntry) error
	DeleteByTodo(ctx context.Context, userID, todoID string, key model.DateKey) error
	DeleteByCategory(ctx context.Context, userID, categoryID string) error
	Count(ctx context.Context, userID string) (int, error)
}

type SuggestionStore interface {
	List(ctx context.Context, userID string, status model.SuggestionStatus) ([]*model.Suggestion, error)
	Get(ctx context.Context, userID, suggestionID string) (*model.Suggestion, error)
	InsertMany(ctx context.Context, suggestions []*model.Suggestion) error
	SetStatus(ctx context.Context, userID, suggestionID string, status model.SuggestionStatus, at time.Time) error
	CountByStatus(ctx context.Context, userID string) (map[model.SuggestionStatus]int, error)
	CountOpenBySeverity(ctx context.Context, userID string, severity model.SuggestionSeverity) (int, error)
}

type KPIStore interface {
	List(ctx context.Context, userID string) ([]*model.KPIRow, error)
	InsertMany(ctx context.Context, rows []*model.KPIRow) error
}

type MaterialStore interface {
	List(ctx context.Context, userID string) ([]*model.Material, error)
	Get(ctx context.Context, userID, materialID string) (*model.Material, error)
	Insert(ctx context.Context, mat *model.Material) error
	SetSegmentDone(ctx context.Context, userID, materialID, segmentID string, done bool, doneAt *time.Time) error
	Delete(ctx context.Context, userID, materialID string) error
}

type JourneyStore interface {
	Get(ctx context.Context, userID, journeyID string) (*model.Journey, error)
	Insert(ctx context.Context, j *model.Journey) error
	Update(ctx context.Context, j *model.Journey) error
}
