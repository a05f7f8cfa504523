package handler

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"

	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/pquerna/otp/totp"
)

type Enable2FAResponse struct {
	Secret        string   `json:"secret"`
	QRCode        string   `json:"qr_code"`
	RecoveryCodes []string `json:"recovery_codes,omitempty"`
}

// Generate2FASecretHandler creates a new TOTP key and returns it with a QR
// code for authenticator enrollment.
func Generate2FASecretHandler(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	userRepo := repository.GetUserRepo(utils.MongoClient)
	user, err := userRepo.FindUser(userID.(string))
	if err != nil || user == nil {
		utils.InternalError(c, "Failed to fetch user")
		return
	}

	if user.TwoFactorEnabled {
		utils.BadRequest(c, "2FA is already enabled")
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "Mswitch",
		AccountName: user.Email,
	})
	if err != nil {
		utils.InternalError(c, "Failed to generate 2FA secret")
		return
	}

	var buf bytes.Buffer
	img, err := key.Image(200, 200)
	if err != nil {
		utils.InternalError(c, "Failed to generate QR code")
		return
	}
	if err := png.Encode(&buf, img); err != nil {
		utils.InternalError(c, "Failed to encode QR code")
		return
	}

	qrCode := base64.StdEncoding.EncodeToString(buf.Bytes())
	utils.Success(c, Enable2FAResponse{
		Secret: key.Secret(),
		QRCode: "data:image/png;base64," + qrCode,
	})
}

func Enable2FAHandler(c *gin.Context) {
	var req struct {
		Secret string `json:"secret" binding:"required"`
		Code   string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	userID, _ := c.Get("user_id")
	userRepo := repository.GetUserRepo(utils.MongoClient)

	user, err := userRepo.FindUser(userID.(string))
	if err != nil || user == nil {
		utils.InternalError(c, "Failed to fetch user")
		return
	}
	if user.TwoFactorEnabled {
		utils.BadRequest(c, "2FA is already enabled")
		return
	}

	if !totp.Validate(req.Code, req.Secret) {
		utils.TrackAuthAttempt("failure", "2fa")
		utils.BadRequest(c, "Invalid 2FA code")
		return
	}

	recoveryCodes, err := utils.GenerateRecoveryCodes()
	if err != nil {
		utils.InternalError(c, "Failed to generate recovery codes")
		return
	}
	hashedCodes := utils.HashRecoveryCodes(recoveryCodes)

	if err := userRepo.Enable2FAWithRecoveryCodes(userID.(string), req.Secret, hashedCodes); err != nil {
		utils.InternalError(c, "Failed to enable 2FA")
		return
	}

	utils.Success(c, gin.H{
		"message":        "2FA enabled successfully",
		"recovery_codes": recoveryCodes,
		"warning":        "Save these recovery codes securely. They will not be shown again.",
	})
}

func Verify2FAHandler(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	userID, _ := c.Get("user_id")
	userRepo := repository.GetUserRepo(utils.MongoClient)
	user, err := userRepo.FindUser(userID.(string))
	if err != nil || user == nil {
		utils.InternalError(c, "Failed to fetch user")
		return
	}

	if !user.TwoFactorEnabled {
		utils.BadRequest(c, "2FA is not enabled")
		return
	}

	if !totp.Validate(req.Code, user.TwoFactorSecret) {
		utils.Unauthorized(c, "Invalid 2FA code")
		return
	}

	utils.Success(c, gin.H{"message": "2FA code valid"})
}

func Disable2FAHandler(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	userID, _ := c.Get("user_id")
	userRepo := repository.GetUserRepo(utils.MongoClient)
	user, err := userRepo.FindUser(userID.(string))
	if err != nil || user == nil {
		utils.InternalError(c, "Failed to fetch user")
		return
	}

	if !user.TwoFactorEnabled {
		utils.BadRequest(c, "2FA is not enabled")
		return
	}

	if !totp.Validate(req.Code, user.TwoFactorSecret) {
		utils.Unauthorized(c, "Invalid 2FA code")
		return
	}

	if err := userRepo.Disable2FA(userID.(string)); err != nil {
		utils.InternalError(c, "Failed to disable 2FA")
		return
	}

	utils.Success(c, gin.H{"message": "2FA disabled successfully"})
}

// UseRecoveryCodeHandler consumes a one-time recovery code in place of a
// TOTP code.
func UseRecoveryCodeHandler(c *gin.Context) {
	var req struct {
		RecoveryCode string `json:"recovery_code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	userID, _ := c.Get("user_id")
	userRepo := repository.GetUserRepo(utils.MongoClient)
	user, err := userRepo.FindUser(userID.(string))
	if err != nil || user == nil {
		utils.InternalError(c, "Failed to fetch user")
		return
	}

	code := strings.ToUpper(strings.ReplaceAll(req.RecoveryCode, "-", ""))
	hashedCode := utils.HashString(code)

	found := false
	newCodes := make([]string, 0, len(user.RecoveryCodes))
	for _, storedCode := range user.RecoveryCodes {
		if storedCode == hashedCode {
			found = true
		} else {
			newCodes = append(newCodes, storedCode)
		}
	}

	if !found {
		utils.TrackAuthAttempt("failure", "recovery_code")
		utils.Unauthorized(c, "Invalid recovery code")
		return
	}

	if err := userRepo.UpdateRecoveryCodes(userID.(string), newCodes); err != nil {
		utils.InternalError(c, "Failed to update recovery codes")
		return
	}

	utils.Success(c, gin.H{
		"message":         "Recovery code accepted",
		"remaining_codes": len(newCodes),
		"warning":         "Please set up a new authenticator app as soon as possible",
	})
}
