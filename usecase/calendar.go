package usecase

import (
	"context"
	"regexp"
	"strconv"
	"time"

	"main/model"
)

// CalendarService projects todo items into calendar events. The projection is
// pure and stateless: it is recomputed from the stores on every request.
type CalendarService struct {
	todos TodoStore
}

func NewCalendarService(todos TodoStore) *CalendarService {
	return &CalendarService{todos: todos}
}

// Labels may embed a clock range like "Cardio 10:00-11:30"; `-`, `–` and `~`
// all separate start from end.
var timeRangePattern = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*[~–-]\s*(\d{1,2}):(\d{2})`)

// TimeRange is the parsed start/end of a labeled time slot.
type TimeRange struct {
	StartHour, StartMinute int
	EndHour, EndMinute     int
}

// ParseTimeRange extracts an embedded clock range from a label. Parsing is
// best-effort: anything that does not match cleanly yields ok=false and the
// caller falls back to an all-day event.
func ParseTimeRange(label string) (TimeRange, bool) {
	m := timeRangePattern.FindStringSubmatch(label)
	if m == nil {
		return TimeRange{}, false
	}
	sh, _ := strconv.Atoi(m[1])
	sm, _ := strconv.Atoi(m[2])
	eh, _ := strconv.Atoi(m[3])
	em, _ := strconv.Atoi(m[4])
	if sh > 23 || eh > 23 || sm > 59 || em > 59 {
		return TimeRange{}, false
	}
	return TimeRange{StartHour: sh, StartMinute: sm, EndHour: eh, EndMinute: em}, true
}

// EventForItem maps one todo item to its calendar event.
func EventForItem(item *model.TodoItem) (model.CalendarEvent, error) {
	day, err := model.ParseDateKey(item.DateKey)
	if err != nil {
		return model.CalendarEvent{}, err
	}
	event := model.CalendarEvent{
		EventID:    item.TodoID,
		CategoryID: item.CategoryID,
		Title:      item.Label,
	}
	if tr, ok := ParseTimeRange(item.Label); ok {
		event.Start = time.Date(day.Year(), day.Month(), day.Day(), tr.StartHour, tr.StartMinute, 0, 0, day.Location())
		event.End = time.Date(day.Year(), day.Month(), day.Day(), tr.EndHour, tr.EndMinute, 0, 0, day.Location())
		return event, nil
	}
	event.Start = day
	event.End = time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 999000000, day.Location())
	event.IsAllDay = true
	return event, nil
}

// Events produces one calendar event per todo item across every category and
// day the user has.
func (s *CalendarService) Events(ctx context.Context, userID string) ([]model.CalendarEvent, error) {
	items, err := s.todos.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	events := make([]model.CalendarEvent, 0, len(items))
	for _, item := range items {
		event, err := EventForItem(item)
		if err != nil {
			// Skip items with corrupt date keys rather than failing the view.
			continue
		}
		events = append(events, event)
	}
	return events, nil
}
