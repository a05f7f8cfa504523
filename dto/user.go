package dto

import (
	"time"

	"main/model"
)

type RegistrationRequest struct {
	Username string `json:"username" binding:"required,min=4,max=20"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,password"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,password"`
}

type TwoFactorVerifyRequest struct {
	Code string `json:"code" binding:"required"`
}

type TwoFactorDisableRequest struct {
	Code string `json:"code" binding:"required"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type UserLink struct {
	Href   string `json:"href"`
	Method string `json:"method,omitempty"`
}

type UserProfileResponse struct {
	Username         string              `json:"username"`
	Email            string              `json:"email"`
	CreatedAt        time.Time           `json:"created_at"`
	TwoFactorEnabled bool                `json:"two_factor_enabled"`
	Links            map[string]UserLink `json:"_links,omitempty"`
}

func ToUserProfileResponse(user *model.User, links map[string]UserLink) UserProfileResponse {
	return UserProfileResponse{
		Username:         user.Username,
		Email:            user.Email,
		CreatedAt:        user.CreatedAt,
		TwoFactorEnabled: user.TwoFactorEnabled,
		Links:            links,
	}
}

type SessionResponse struct {
	SessionID      string    `json:"session_id"`
	DisplayName    string    `json:"display_name"`
	DeviceInfo     string    `json:"device_info"`
	IPAddress      string    `json:"ip_address"`
	CreatedAt      time.Time `json:"created_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
	Current        bool      `json:"current"`
}

func ToSessionResponses(sessions []*model.Session, currentID string) []SessionResponse {
	responses := make([]SessionResponse, len(sessions))
	for i, s := range sessions {
		responses[i] = SessionResponse{
			SessionID:      s.SessionID,
			DisplayName:    s.DisplayName,
			DeviceInfo:     s.DeviceInfo,
			IPAddress:      s.IPAddress,
			CreatedAt:      s.CreatedAt,
			LastActivityAt: s.LastActivityAt,
			Current:        s.SessionID == currentID,
		}
	}
	return responses
}
