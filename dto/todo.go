package dto

import (
	"time"

	"main/model"
)

type AddTodoRequest struct {
	CategoryID string `json:"category_id" binding:"required"`
	DateKey    string `json:"date_key" binding:"required,datekey"`
	Label      string `json:"label" binding:"required"`
	Time       int    `json:"time,omitempty"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type TodoResponse struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"category_id"`
	DateKey    string    `json:"date_key"`
	Label      string    `json:"label"`
	Done       bool      `json:"done"`
	Time       int       `json:"time,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToTodoResponse(item *model.TodoItem) TodoResponse {
	return TodoResponse{
		ID:         item.TodoID,
		CategoryID: item.CategoryID,
		DateKey:    string(item.DateKey),
		Label:      item.Label,
		Done:       item.Done,
		Time:       item.Time,
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}
}

func ToTodoResponses(items []*model.TodoItem) []TodoResponse {
	responses := make([]TodoResponse, len(items))
	for i, item := range items {
		responses[i] = ToTodoResponse(item)
	}
	return responses
}

type CategoryResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Builtin bool   `json:"builtin"`
}

type TimelineEntryResponse struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	DateKey string `json:"date_key"`
	Time    string `json:"time"`
}

func ToTimelineResponses(entries []*model.TimelineEntry) []TimelineEntryResponse {
	responses := make([]TimelineEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = TimelineEntryResponse{
			ID:      e.EntryID,
			Text:    e.Text,
			DateKey: string(e.DateKey),
			Time:    e.Time,
		}
	}
	return responses
}
