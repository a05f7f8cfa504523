package dto

import (
	"time"

	"main/model"
)

type UploadMaterialRequest struct {
	Name string `json:"name" binding:"required"`
	Text string `json:"text" binding:"required"`
}

type AskRequest struct {
	Question string `json:"question" binding:"required"`
}

type MarkSegmentRequest struct {
	Done bool `json:"done"`
}

type SegmentResponse struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Length    int        `json:"length"`
	Completed bool       `json:"completed"`
	Category  string     `json:"category"`
	DoneAt    *time.Time `json:"done_at,omitempty"`
}

type MaterialResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Segments  []SegmentResponse `json:"segments"`
	CreatedAt time.Time         `json:"created_at"`
}

func ToMaterialResponse(mat *model.Material) MaterialResponse {
	segments := make([]SegmentResponse, len(mat.Segments))
	for i, seg := range mat.Segments {
		segments[i] = SegmentResponse{
			ID:        seg.SegmentID,
			Title:     seg.Title,
			Length:    seg.Length,
			Completed: seg.Completed,
			Category:  seg.Category,
			DoneAt:    seg.DoneAt,
		}
	}
	return MaterialResponse{
		ID:        mat.MaterialID,
		Name:      mat.Name,
		Segments:  segments,
		CreatedAt: mat.CreatedAt,
	}
}

func ToMaterialResponses(materials []*model.Material) []MaterialResponse {
	responses := make([]MaterialResponse, len(materials))
	for i, mat := range materials {
		responses[i] = ToMaterialResponse(mat)
	}
	return responses
}
