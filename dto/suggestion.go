package dto

import "main/model"

type SuggestionResponse struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	Severity  string `json:"severity"`
	Title     string `json:"title"`
	Rationale string `json:"rationale"`
	Status    string `json:"status"`
}

func ToSuggestionResponses(suggestions []*model.Suggestion) []SuggestionResponse {
	responses := make([]SuggestionResponse, len(suggestions))
	for i, s := range suggestions {
		responses[i] = SuggestionResponse{
			ID:        s.SuggestionID,
			Category:  s.Category,
			Severity:  string(s.Severity),
			Title:     s.Title,
			Rationale: s.Rationale,
			Status:    string(s.Status),
		}
	}
	return responses
}

// ApplySuggestionResponse carries both the closed suggestion and the todo it
// materialized.
type ApplySuggestionResponse struct {
	SuggestionID string       `json:"suggestion_id"`
	Status       string       `json:"status"`
	Created      TodoResponse `json:"created"`
}
