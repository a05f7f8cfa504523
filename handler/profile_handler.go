package handler

import (
	"main/dto"
	"main/repository"
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func GetProfileHandler(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	userRepo := repository.GetUserRepo(utils.MongoClient)
	user, err := userRepo.FindUser(userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to fetch user details")
		return
	}
	if user == nil {
		utils.NotFound(c, "User not found")
		return
	}

	links := map[string]dto.UserLink{
		"self":            {Href: "/api/profile", Method: "GET"},
		"change_password": {Href: "/api/profile/password", Method: "PUT"},
		"sessions":        {Href: "/api/sessions", Method: "GET"},
		"stats":           {Href: "/api/stats", Method: "GET"},
	}

	utils.Success(c, dto.ToUserProfileResponse(user, links))
}

func ChangePasswordHandler(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	userRepo := repository.GetUserRepo(utils.MongoClient)
	user, err := userRepo.FindUser(userID.(string))
	if err != nil || user == nil {
		utils.InternalError(c, "Failed to fetch user details")
		return
	}

	if !services.ComparePasswords(user.Password, req.OldPassword) {
		utils.Unauthorized(c, "Incorrect password")
		return
	}
	if req.OldPassword == req.NewPassword {
		utils.BadRequest(c, "New password must differ from the old one")
		return
	}

	hashed, err := services.HashPassword(req.NewPassword)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if _, err := userRepo.UpdateUserPassword(userID.(string), hashed); err != nil {
		utils.InternalError(c, "Failed to update password")
		return
	}

	utils.Success(c, gin.H{"message": "Password updated successfully"})
}
