package util

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type UserClaims struct {
	UserID    string
	AccountID string
	Role      string
}

var ErrInvalidToken = errors.New("invalid authorization token")

// GetUserClaims parses and verifies the Bearer token on the request.
func GetUserClaims(r *http.Request) (*UserClaims, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, ErrInvalidToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_ACCESS_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userClaims := &UserClaims{}
	if sub, ok := claims["sub"].(string); ok {
		userClaims.UserID = sub
	}
	if account, ok := claims["account"].(string); ok {
		userClaims.AccountID = account
	}
	if role, ok := claims["role"].(string); ok {
		userClaims.Role = role
	}
	return userClaims, nil
}
