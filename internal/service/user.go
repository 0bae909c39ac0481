package service

import (
	"context"

	"github.com/surdiana/worklog/internal/dto"
	apperrors "github.com/surdiana/worklog/internal/errors"
	"github.com/surdiana/worklog/internal/model"
	"github.com/surdiana/worklog/internal/repository"
	"github.com/surdiana/worklog/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	repoUser   *repository.UserRepository
	jwtService *JWTService
}

func NewUserService(repo *repository.UserRepository, jwtService *JWTService) *UserService {
	return &UserService{
		repoUser:   repo,
		jwtService: jwtService,
	}
}

// checkPassword verifies password against hash
func (s *UserService) checkPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

func toUserResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:    user.ID,
		NIP:   user.NIP,
		Name:  user.FullName,
		Email: user.Email,
		Phone: user.Phone,
		Role:  user.Role,
	}
}

// Login authenticates by employee identifier and password and issues a session
// token. Unknown user and wrong password collapse into the same rejection so
// the endpoint cannot be used to enumerate accounts.
func (s *UserService) Login(ctx context.Context, nip, password string) (*dto.LoginResponse, error) {
	user, err := s.repoUser.GetByNIP(ctx, nip)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			logger.GetLogger().Warn("Login attempt for unknown NIP",
				zap.String("nip", nip),
			)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if !s.checkPassword(user.Password, password) {
		logger.GetLogger().Warn("Login attempt with wrong password",
			zap.String("nip", nip),
			zap.Uint("user_id", user.ID),
		)
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.GetLogger().Error("Failed to generate token",
			zap.Uint("user_id", user.ID),
			zap.Error(err),
		)
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	logger.GetLogger().Info("User logged in",
		zap.Uint("user_id", user.ID),
		zap.String("nip", user.NIP),
	)

	return &dto.LoginResponse{
		Message: "Login success",
		Token:   token,
		User:    toUserResponse(user),
	}, nil
}

// GetProfile returns the public view of the authenticated user
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	user, err := s.repoUser.GetByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// valid token for a user that no longer exists
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	response := toUserResponse(user)
	return &response, nil
}
