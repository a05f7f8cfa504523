package handler

import (
	"time"

	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analytics *usecase.AnalyticsService
}

func NewAnalyticsHandler(analytics *usecase.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

func (h *AnalyticsHandler) GetKPIRows(c *gin.Context) {
	userID := c.GetString("user_id")

	rows, err := h.analytics.KPIRows(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to load KPI rows")
		return
	}

	utils.Success(c, gin.H{"rows": rows})
}

func (h *AnalyticsHandler) GetKPISummary(c *gin.Context) {
	userID := c.GetString("user_id")

	summary, err := h.analytics.KPISummary(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to build KPI summary")
		return
	}

	utils.Success(c, summary)
}

// GetWeeklyDeltas returns the per-category change in completed items between
// this week and last week, both weeks starting on Monday.
func (h *AnalyticsHandler) GetWeeklyDeltas(c *gin.Context) {
	userID := c.GetString("user_id")

	series, err := h.analytics.WeeklyDeltaSeries(c.Request.Context(), userID, time.Now())
	if err != nil {
		utils.InternalError(c, "Failed to compute weekly deltas")
		return
	}

	utils.Success(c, gin.H{"deltas": series})
}

func (h *AnalyticsHandler) GetDayCompletion(c *gin.Context) {
	userID := c.GetString("user_id")
	categoryID := c.Param("category")
	key := model.DateKey(c.Param("date"))

	if !key.IsValid() {
		utils.BadRequest(c, "Invalid date key")
		return
	}

	rate, weighted, err := h.analytics.DayCompletion(c.Request.Context(), userID, categoryID, key)
	if err != nil {
		utils.InternalError(c, "Failed to compute completion")
		return
	}

	utils.Success(c, gin.H{
		"rate":          rate,
		"time_weighted": weighted,
	})
}
