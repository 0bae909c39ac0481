package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/surdiana/worklog/internal/errors"
	"github.com/surdiana/worklog/internal/repository"
)

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	jwtSvc := NewJWTService(testSecret, 7*24*time.Hour)
	svc := NewUserService(repository.NewUserRepository(db), jwtSvc)
	user := seedUser(t, db, "198701012010011001", "secret")
	ctx := context.Background()

	t.Run("valid credentials issue a resolvable token", func(t *testing.T) {
		response, err := svc.Login(ctx, user.NIP, "secret")
		require.NoError(t, err)

		assert.NotEmpty(t, response.Token)
		assert.Equal(t, user.NIP, response.User.NIP)
		assert.Equal(t, user.Email, response.User.Email)

		// login followed by resolve yields the logged-in user's id
		claims, err := jwtSvc.ValidateToken(response.Token)
		require.NoError(t, err)
		userID, ok := UserIDFromClaims(claims)
		require.True(t, ok)
		assert.Equal(t, user.ID, userID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, user.NIP, "wrong")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown nip collapses into the same rejection", func(t *testing.T) {
		_, err := svc.Login(ctx, "000000000000000000", "secret")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestGetProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db), NewJWTService(testSecret, time.Hour))
	user := seedUser(t, db, "198701012010011001", "secret")
	ctx := context.Background()

	t.Run("existing user", func(t *testing.T) {
		profile, err := svc.GetProfile(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.ID, profile.ID)
		assert.Equal(t, user.FullName, profile.Name)
		assert.Equal(t, user.Role, profile.Role)
	})

	t.Run("user gone", func(t *testing.T) {
		_, err := svc.GetProfile(ctx, 9999)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}
