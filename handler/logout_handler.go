package handler

import (
	"strings"

	"main/dto"
	"main/repository"
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func LogoutHandler(c *gin.Context, sessionRepo *repository.SessionRepo) {
	var req dto.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	authHeader := c.GetHeader("Authorization")
	accessToken := strings.TrimPrefix(authHeader, "Bearer ")

	if err := services.BlacklistTokens(accessToken, req.RefreshToken); err != nil {
		utils.TrackError("auth", "token_blacklist_failed")
		utils.InternalError(c, "Failed to invalidate tokens")
		return
	}

	if sessionID, err := c.Cookie("session_id"); err == nil && sessionID != "" {
		if err := sessionRepo.DeleteSession(sessionID); err != nil {
			utils.TrackError("session", "logout_delete_failed")
		}
		c.SetCookie("session_id", "", -1, "/", "", true, true)
	}

	utils.Success(c, gin.H{"message": "Logged out successfully"})
}
