package utils

import (
	"errors"
	"medintake-service/internal/app/models"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// DecodeTokenClaims reads the claims of a backend issued token without
// checking its signature. The result only gates what the service offers;
// every backend call still presents the token for real verification.
func DecodeTokenClaims(tokenString string) (*models.TokenClaims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, errors.New("empty token")
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, err
	}

	result := &models.TokenClaims{}
	if subject, ok := claims["sub"].(string); ok {
		result.Subject = subject
	}
	if exp, ok := claims["exp"].(float64); ok {
		result.ExpiresAt = time.Unix(int64(exp), 0).UTC()
	}
	result.IsSuperuser, _ = claims["is_superuser"].(bool)
	return result, nil
}
