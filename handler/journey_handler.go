package handler

import (
	"context"
	"errors"

	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type JourneyHandler struct {
	journeys *usecase.JourneyService
}

func NewJourneyHandler(journeys *usecase.JourneyService) *JourneyHandler {
	return &JourneyHandler{journeys: journeys}
}

func (h *JourneyHandler) Start(c *gin.Context) {
	userID := c.GetString("user_id")

	j, err := h.journeys.Start(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to start journey")
		return
	}

	utils.TrackJourneyStage(string(j.Current))
	utils.Created(c, dto.ToJourneyResponse(j))
}

func (h *JourneyHandler) Get(c *gin.Context) {
	userID := c.GetString("user_id")
	journeyID := c.Param("id")

	j, err := h.journeys.Get(c.Request.Context(), userID, journeyID)
	if err != nil {
		if errors.Is(err, usecase.ErrJourneyNotFound) {
			utils.NotFound(c, "Journey not found")
			return
		}
		utils.InternalError(c, "Failed to fetch journey")
		return
	}

	utils.Success(c, dto.ToJourneyResponse(j))
}

// Advance runs the current stage and moves the journey forward. Stages only
// progress in order; a finished journey cannot advance again.
func (h *JourneyHandler) Advance(c *gin.Context) {
	userID := c.GetString("user_id")
	journeyID := c.Param("id")

	var req dto.AdvanceJourneyRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		utils.BadRequest(c, "Invalid request")
		return
	}

	j, err := h.journeys.Advance(c.Request.Context(), userID, journeyID, req.Upload)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrJourneyNotFound):
			utils.NotFound(c, "Journey not found")
		case errors.Is(err, usecase.ErrJourneyFinished):
			utils.Conflict(c, "Journey already finished")
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			utils.BadRequest(c, "Request cancelled")
		default:
			utils.InternalError(c, "Failed to advance journey")
		}
		return
	}

	utils.TrackJourneyStage(string(j.Current))
	utils.Success(c, dto.ToJourneyResponse(j))
}
