package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID  uint64
	IsAdmin bool
}

func SignJWT(userID uint64, isAdmin bool, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":      fmt.Sprintf("%d", userID),
		"is_admin": isAdmin,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseJWT(tokenString, secret string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Claims{}, err
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Claims{}, errors.New("invalid token")
	}

	sub, ok := mc["sub"].(string)
	if !ok {
		return Claims{}, errors.New("invalid token subject")
	}
	var uid uint64
	if _, err := fmt.Sscanf(sub, "%d", &uid); err != nil || uid == 0 {
		return Claims{}, errors.New("invalid token subject")
	}

	isAdmin, _ := mc["is_admin"].(bool)
	return Claims{UserID: uid, IsAdmin: isAdmin}, nil
}
