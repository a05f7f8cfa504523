package handler

import (
	"main/dto"
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// RefreshHandler rotates a refresh token into a fresh access/refresh pair.
// The old refresh token is blacklisted so it cannot be replayed.
func RefreshHandler(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	claims, err := services.ValidateToken(req.RefreshToken)
	if err != nil {
		utils.TrackAuthAttempt("failure", "refresh")
		utils.Unauthorized(c, "Invalid refresh token")
		return
	}

	if tokenType, ok := claims["type"].(string); !ok || tokenType != "refresh" {
		utils.TrackAuthAttempt("failure", "refresh")
		utils.Unauthorized(c, "Invalid token type")
		return
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		utils.Unauthorized(c, "Invalid token claims")
		return
	}

	newToken, err := services.GenerateJWT(userID)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}
	newRefresh, err := services.GenerateRefreshToken(userID)
	if err != nil {
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	if services.TokenBlacklist != nil {
		if err := services.BlacklistTokens("", req.RefreshToken); err != nil {
			utils.TrackError("auth", "refresh_blacklist_failed")
		}
	}

	utils.TrackAuthAttempt("success", "refresh")
	utils.Success(c, dto.TokenPairResponse{
		AccessToken:  newToken,
		RefreshToken: newRefresh,
	})
}
