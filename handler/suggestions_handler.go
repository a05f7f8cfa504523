package handler

import (
	"errors"

	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type SuggestionsHandler struct {
	suggestions *usecase.SuggestionService
}

func NewSuggestionsHandler(suggestions *usecase.SuggestionService) *SuggestionsHandler {
	return &SuggestionsHandler{suggestions: suggestions}
}

func (h *SuggestionsHandler) List(c *gin.Context) {
	userID := c.GetString("user_id")
	status := model.SuggestionStatus(c.Query("status"))

	list, err := h.suggestions.List(c.Request.Context(), userID, status)
	if err != nil {
		utils.InternalError(c, "Failed to list suggestions")
		return
	}

	utils.Success(c, gin.H{"suggestions": dto.ToSuggestionResponses(list)})
}

// Apply materializes an open suggestion into a todo item dated today. A
// suggestion can only be applied once.
func (h *SuggestionsHandler) Apply(c *gin.Context) {
	userID := c.GetString("user_id")
	suggestionID := c.Param("id")

	item, err := h.suggestions.Apply(c.Request.Context(), userID, suggestionID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSuggestionNotFound):
			utils.NotFound(c, "Suggestion not found")
		case errors.Is(err, usecase.ErrSuggestionClosed):
			utils.Conflict(c, "Suggestion is no longer open")
		default:
			utils.InternalError(c, "Failed to apply suggestion")
		}
		return
	}

	utils.TrackSuggestion("applied")
	utils.Success(c, dto.ApplySuggestionResponse{
		SuggestionID: suggestionID,
		Status:       string(model.SuggestionApplied),
		Created:      dto.ToTodoResponse(item),
	})
}

func (h *SuggestionsHandler) Dismiss(c *gin.Context) {
	userID := c.GetString("user_id")
	suggestionID := c.Param("id")

	if err := h.suggestions.Dismiss(c.Request.Context(), userID, suggestionID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrSuggestionNotFound):
			utils.NotFound(c, "Suggestion not found")
		case errors.Is(err, usecase.ErrSuggestionClosed):
			utils.Conflict(c, "Suggestion is no longer open")
		default:
			utils.InternalError(c, "Failed to dismiss suggestion")
		}
		return
	}

	utils.TrackSuggestion("dismissed")
	utils.Success(c, gin.H{"status": string(model.SuggestionDismissed)})
}
