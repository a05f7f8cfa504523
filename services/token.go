package services

import (
	"errors"
	"time"

	"main/utils"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT issues a short-lived access token for the user.
func GenerateJWT(userID string) (string, error) {
	return generateToken(userID, "access", time.Duration(utils.JWTExpirationTime)*time.Second)
}

// GenerateRefreshToken issues a long-lived refresh token for the user.
func GenerateRefreshToken(userID string) (string, error) {
	return generateToken(userID, "refresh", time.Duration(utils.RefreshTokenExpirationTime)*time.Second)
}

func generateToken(userID, tokenType string, lifetime time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"type":    tokenType,
		"exp":     time.Now().Add(lifetime).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(utils.JWTSecretKey))
}

// ValidateToken parses a token and returns its claims, rejecting blacklisted
// tokens and unexpected signing methods.
func ValidateToken(tokenString string) (jwt.MapClaims, error) {
	if IsTokenBlacklisted(tokenString) {
		return nil, errors.New("token has been revoked")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(utils.JWTSecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
