package handler

import (
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	calendar *usecase.CalendarService
}

func NewCalendarHandler(calendar *usecase.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendar: calendar}
}

// GetEvents projects every todo item into a calendar event. Items with a
// parseable time range become timed events; the rest are all-day.
func (h *CalendarHandler) GetEvents(c *gin.Context) {
	userID := c.GetString("user_id")

	events, err := h.calendar.Events(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to build calendar events")
		return
	}

	utils.Success(c, gin.H{"events": events})
}
