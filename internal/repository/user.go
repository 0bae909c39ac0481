package repository

import (
	"context"
	"time"

	"github.com/surdiana/worklog/internal/model"
	"github.com/surdiana/worklog/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*model.User, error) {
	start := time.Now()
	var user model.User

	result := r.db.WithContext(ctx).Where("id = ?", id).First(&user)
	if result.Error != nil {
		if result.Error != gorm.ErrRecordNotFound {
			logger.GetLogger().Error("Failed to get user by ID",
				zap.Uint("user_id", id),
				zap.Duration("duration", time.Since(start)),
				zap.Error(result.Error),
			)
		}
		return nil, result.Error
	}

	return &user, nil
}

// GetByNIP finds a user by employee identifier, the sole login key
func (r *UserRepository) GetByNIP(ctx context.Context, nip string) (*model.User, error) {
	start := time.Now()
	var user model.User

	result := r.db.WithContext(ctx).Where("nip = ?", nip).First(&user)
	if result.Error != nil {
		if result.Error != gorm.ErrRecordNotFound {
			logger.GetLogger().Error("Failed to get user by NIP",
				zap.String("nip", nip),
				zap.Duration("duration", time.Since(start)),
				zap.Error(result.Error),
			)
		}
		return nil, result.Error
	}

	return &user, nil
}
