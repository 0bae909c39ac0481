package database

import (
	"github.com/surdiana/worklog/internal/model"
	"gorm.io/gorm"
)

// AutoMigrate runs database migrations for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.LogEntry{},
		&model.ResetToken{},
	)
}
