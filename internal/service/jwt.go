package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	apperrors "github.com/surdiana/worklog/internal/errors"
	"github.com/surdiana/worklog/internal/model"
)

// JWTService issues and verifies session tokens. The signing secret is loaded
// once at startup and injected here; nothing else reads it.
type JWTService struct {
	secretKey  string
	expiration time.Duration
}

func NewJWTService(secretKey string, expiration time.Duration) *JWTService {
	return &JWTService{
		secretKey:  secretKey,
		expiration: expiration,
	}
}

// GenerateToken creates a signed token carrying the user's identity claims
func (s *JWTService) GenerateToken(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"nip":     user.NIP,
		"name":    user.FullName,
		"iat":     now.Unix(),
		"exp":     now.Add(s.expiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.secretKey))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken checks signature and expiry and returns the embedded claims.
// Malformed token, bad signature and expiry all collapse into one invalid-token
// error so callers cannot tell which check failed.
func (s *JWTService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidToken
		}
		return []byte(s.secretKey), nil
	})

	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}

// UserIDFromClaims extracts the numeric user id. Tokens signed under an older
// claims schema may lack it; those are rejected upstream.
func UserIDFromClaims(claims jwt.MapClaims) (uint, bool) {
	idFloat, ok := claims["user_id"].(float64)
	if !ok || idFloat <= 0 {
		return 0, false
	}
	return uint(idFloat), true
}
