package handler

import (
	"log"
	"time"

	"main/dto"
	"main/model"
	"main/repository"
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func RegistrationHandler(c *gin.Context) {
	var req dto.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request")
		return
	}

	userRepo := repository.GetUserRepo(utils.MongoClient)

	existing, err := userRepo.FindUserByUsername(req.Username)
	if err != nil {
		utils.InternalError(c, "failed to check username")
		return
	}
	if existing != nil {
		utils.Conflict(c, "username already exists")
		return
	}

	hashed, err := services.HashPassword(req.Password)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	now := time.Now()
	user := &model.User{
		UserID:       uuid.New().String(),
		Username:     req.Username,
		Email:        req.Email,
		Password:     hashed,
		CreatedAt:    now,
		LastActiveAt: now,
	}

	if _, err := userRepo.AddUser(c.Request.Context(), user); err != nil {
		utils.TrackAuthAttempt("failure", "registration")
		utils.BadRequest(c, "invalid request")
		return
	}

	// New accounts start with the reference insight rows and the initial
	// coaching suggestions.
	ctx := c.Request.Context()
	if err := repository.GetKPIRepo(utils.MongoClient).InsertMany(ctx, model.SeedKPIRows(user.UserID, now)); err != nil {
		log.Printf("Warning: failed to seed KPI rows for %s: %v", user.UserID, err)
	}
	if err := repository.GetSuggestionsRepo(utils.MongoClient).InsertMany(ctx, seededSuggestions(user.UserID, now)); err != nil {
		log.Printf("Warning: failed to seed suggestions for %s: %v", user.UserID, err)
	}

	token, err := services.GenerateJWT(user.UserID)
	if err != nil {
		utils.InternalError(c, "failed to generate token")
		return
	}
	refreshToken, err := services.GenerateRefreshToken(user.UserID)
	if err != nil {
		utils.InternalError(c, "failed to generate refresh token")
		return
	}

	utils.TrackAuthAttempt("success", "registration")
	utils.Created(c, gin.H{
		"message": "user registered successfully",
		"token":   token,
		"refresh": refreshToken,
	})
}

func seededSuggestions(userID string, now time.Time) []*model.Suggestion {
	suggestions := model.SeedSuggestions(userID, now)
	for _, s := range suggestions {
		s.SuggestionID = "sg-" + uuid.New().String()
	}
	return suggestions
}
