package api

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const sessionTokenTTL = 24 * time.Hour

// sessionKey derives the HMAC signing key from the admin secret so that
// rotating the secret invalidates every outstanding session token.
func sessionKey(adminSecret string) []byte {
	sum := sha256.Sum256([]byte("portfolio-admin-session:" + adminSecret))
	return sum[:]
}

// generateSessionToken creates a short-lived admin session token.
func generateSessionToken(adminSecret string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  now.Add(sessionTokenTTL).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(sessionKey(adminSecret))
}

// parseSessionToken validates tokenStr and confirms the admin role claim.
func parseSessionToken(tokenStr, adminSecret string) error {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return sessionKey(adminSecret), nil
	})
	if err != nil {
		return err
	}

	if !token.Valid {
		return jwt.ErrTokenInvalidClaims
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.ErrTokenMalformed
	}

	if role, _ := claims["role"].(string); role != "admin" {
		return jwt.ErrTokenInvalidClaims
	}

	return nil
}
