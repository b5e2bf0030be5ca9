package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken issues an HS256 access token carrying the login email
func GenerateToken(email string, cfg JWTConfig) (string, error) {
	claims := jwt.MapClaims{
		"username": email,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Duration(cfg.ExpiryHours) * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ParseToken verifies a token and returns the login email it carries
func ParseToken(tokenStr, secret string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	email, ok := claims["username"].(string)
	if !ok || email == "" {
		return "", fmt.Errorf("token missing username claim")
	}

	return email, nil
}
