package handler

import (
	"main/dto"
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionRepo *repository.SessionRepo
}

func NewSessionHandler(sessionRepo *repository.SessionRepo) *SessionHandler {
	return &SessionHandler{sessionRepo: sessionRepo}
}

func (h *SessionHandler) GetActiveSessions(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	sessions, err := h.sessionRepo.GetUserActiveSessions(userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to fetch sessions")
		return
	}

	currentID, _ := c.Cookie("session_id")
	utils.Success(c, gin.H{"sessions": dto.ToSessionResponses(sessions, currentID)})
}

func (h *SessionHandler) LogoutSession(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	sessionID := c.Param("id")
	session, err := h.sessionRepo.GetSession(sessionID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch session")
		return
	}
	if session == nil || session.UserID != userID.(string) {
		utils.NotFound(c, "Session not found")
		return
	}

	if err := h.sessionRepo.DeleteSession(sessionID); err != nil {
		utils.InternalError(c, "Failed to end session")
		return
	}

	if currentID, err := c.Cookie("session_id"); err == nil && currentID == sessionID {
		c.SetCookie("session_id", "", -1, "/", "", true, true)
	}

	utils.Success(c, gin.H{"message": "Session ended"})
}

func (h *SessionHandler) LogoutAllSessions(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	if err := h.sessionRepo.EndAllUserSessions(userID.(string)); err != nil {
		utils.InternalError(c, "Failed to end sessions")
		return
	}

	c.SetCookie("session_id", "", -1, "/", "", true, true)
	utils.Success(c, gin.H{"message": "All sessions ended"})
}
