package handler

import (
	"log"

	"main/model"
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	userRepo        *repository.UserRepo
	todoRepo        *repository.TodosRepo
	timelineRepo    *repository.TimelineRepo
	suggestionsRepo *repository.SuggestionsRepo
	sessionRepo     *repository.SessionRepo
}

func NewStatsHandler(
	userRepo *repository.UserRepo,
	todoRepo *repository.TodosRepo,
	timelineRepo *repository.TimelineRepo,
	suggestionsRepo *repository.SuggestionsRepo,
	sessionRepo *repository.SessionRepo,
) *StatsHandler {
	return &StatsHandler{
		userRepo:        userRepo,
		todoRepo:        todoRepo,
		timelineRepo:    timelineRepo,
		suggestionsRepo: suggestionsRepo,
		sessionRepo:     sessionRepo,
	}
}

func (h *StatsHandler) GetUserStats(c *gin.Context) {
	ctx := c.Request.Context()
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}
	uid := userID.(string)

	user, err := h.userRepo.FindUser(uid)
	if err != nil {
		log.Printf("Error fetching user %s: %v", uid, err)
		utils.InternalError(c, "Failed to fetch user details")
		return
	}
	if user == nil {
		utils.NotFound(c, "User not found")
		return
	}

	var stats model.UserStats

	total, err := h.todoRepo.Count(ctx, uid, nil)
	if err != nil {
		utils.InternalError(c, "Failed to count todos")
		return
	}
	done := true
	completed, err := h.todoRepo.Count(ctx, uid, &done)
	if err != nil {
		utils.InternalError(c, "Failed to count completed todos")
		return
	}
	stats.TodoStats.Total = total
	stats.TodoStats.Completed = completed
	stats.TodoStats.Pending = total - completed

	entries, err := h.timelineRepo.Count(ctx, uid)
	if err != nil {
		utils.InternalError(c, "Failed to count timeline entries")
		return
	}
	stats.TimelineStats.Entries = entries

	byStatus, err := h.suggestionsRepo.CountByStatus(ctx, uid)
	if err != nil {
		utils.InternalError(c, "Failed to count suggestions")
		return
	}
	stats.SuggestionStats.Open = byStatus[model.SuggestionOpen]
	stats.SuggestionStats.Applied = byStatus[model.SuggestionApplied]
	stats.SuggestionStats.Dismissed = byStatus[model.SuggestionDismissed]

	high, err := h.suggestionsRepo.CountOpenBySeverity(ctx, uid, model.SeverityHigh)
	if err != nil {
		utils.InternalError(c, "Failed to count high severity suggestions")
		return
	}
	stats.SuggestionStats.High = high

	sessions, err := h.sessionRepo.CountActiveSessions(uid)
	if err != nil {
		log.Printf("Error counting sessions for %s: %v", uid, err)
	} else {
		stats.ActivityStats.TotalSessions = sessions
	}
	stats.ActivityStats.LastActive = user.LastActiveAt
	stats.ActivityStats.AccountCreated = user.CreatedAt

	utils.Success(c, stats)
}
