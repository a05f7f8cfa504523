package handler

import (
	"log"

	"main/repository"
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type deleteUserRequest struct {
	Password string `json:"password" binding:"required"`
}

// DeleteUserHandler removes the account and everything keyed to it.
func DeleteUserHandler(c *gin.Context, sessionRepo *repository.SessionRepo) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}
	uid := userID.(string)

	var req deleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	userRepo := repository.GetUserRepo(utils.MongoClient)
	user, err := userRepo.FindUser(uid)
	if err != nil || user == nil {
		utils.InternalError(c, "Failed to fetch user details")
		return
	}

	if !services.ComparePasswords(user.Password, req.Password) {
		utils.Unauthorized(c, "Incorrect password")
		return
	}

	ctx := c.Request.Context()
	client := utils.MongoClient

	// Per-user data cascade. Failures are logged, the account is removed
	// regardless.
	todosRepo := repository.GetTodosRepo(client)
	if items, err := todosRepo.ListAll(ctx, uid); err == nil {
		for _, item := range items {
			if err := todosRepo.Delete(ctx, uid, item.TodoID); err != nil {
				log.Printf("Warning: failed to delete todo %s: %v", item.TodoID, err)
			}
		}
	}
	if err := sessionRepo.DeleteUserSessions(uid); err != nil {
		log.Printf("Warning: failed to delete sessions for %s: %v", uid, err)
	}

	count, err := userRepo.DeleteUserByID(uid)
	if err != nil || count == 0 {
		utils.InternalError(c, "Failed to delete account")
		return
	}

	c.SetCookie("session_id", "", -1, "/", "", true, true)
	utils.Success(c, gin.H{"message": "Account deleted"})
}
