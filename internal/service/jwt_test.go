package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/surdiana/worklog/internal/errors"
	"github.com/surdiana/worklog/internal/model"
)

const testSecret = "test-secret"

func testUser() *model.User {
	return &model.User{
		ID:       42,
		NIP:      "198701012010011001",
		FullName: "Budi Santoso",
		Email:    "budi@example.com",
		Role:     model.RoleUser,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService(testSecret, 7*24*time.Hour)

	token, err := svc.GenerateToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	userID, ok := UserIDFromClaims(claims)
	assert.True(t, ok)
	assert.Equal(t, uint(42), userID)
	assert.Equal(t, "198701012010011001", claims["nip"])
	assert.Equal(t, "Budi Santoso", claims["name"])
}

func TestValidateToken_Rejections(t *testing.T) {
	svc := NewJWTService(testSecret, 7*24*time.Hour)

	expired, err := NewJWTService(testSecret, -time.Hour).GenerateToken(testUser())
	require.NoError(t, err)

	otherKey, err := NewJWTService("another-secret", time.Hour).GenerateToken(testUser())
	require.NoError(t, err)

	// signed with the none algorithm instead of HMAC
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": 42})
	noneSigned, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "malformed", token: "not.a.token"},
		{name: "expired", token: expired},
		{name: "wrong signature", token: otherKey},
		{name: "none algorithm", token: noneSigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			assert.Nil(t, claims)
			// every failure collapses into the same opaque rejection
			assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
		})
	}
}

func TestUserIDFromClaims(t *testing.T) {
	tests := []struct {
		name   string
		claims jwt.MapClaims
		wantID uint
		wantOK bool
	}{
		{
			name:   "numeric user id",
			claims: jwt.MapClaims{"user_id": float64(7)},
			wantID: 7,
			wantOK: true,
		},
		{
			name:   "missing user id",
			claims: jwt.MapClaims{"nip": "198701012010011001"},
			wantOK: false,
		},
		{
			name:   "string user id from old schema",
			claims: jwt.MapClaims{"user_id": "7"},
			wantOK: false,
		},
		{
			name:   "zero user id",
			claims: jwt.MapClaims{"user_id": float64(0)},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := UserIDFromClaims(tt.claims)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}
