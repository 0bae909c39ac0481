package repository

import (
	"context"
	"time"

	"github.com/surdiana/worklog/internal/model"
	"github.com/surdiana/worklog/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LogEntryRepository is the query boundary for log entries. Every read scopes
// itself to soft_deleted = false here, so no call site can forget the filter.
type LogEntryRepository struct {
	db *gorm.DB
}

func NewLogEntryRepository(db *gorm.DB) *LogEntryRepository {
	return &LogEntryRepository{db: db}
}

// active scopes a query to non-deleted entries
func (r *LogEntryRepository) active(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.LogEntry{}).Where("soft_deleted = ?", false)
}

func (r *LogEntryRepository) Create(ctx context.Context, entry *model.LogEntry) error {
	start := time.Now()

	result := r.db.WithContext(ctx).Create(entry)
	if result.Error != nil {
		logger.GetLogger().Error("Failed to create log entry",
			zap.Uint("user_id", entry.UserID),
			zap.Duration("duration", time.Since(start)),
			zap.Error(result.Error),
		)
		return result.Error
	}

	logger.GetLogger().Debug("Log entry created",
		zap.Uint("log_id", entry.ID),
		zap.Uint("user_id", entry.UserID),
	)

	return nil
}

func (r *LogEntryRepository) GetByID(ctx context.Context, id uint) (*model.LogEntry, error) {
	var entry model.LogEntry

	result := r.active(ctx).Where("id = ?", id).First(&entry)
	if result.Error != nil {
		if result.Error != gorm.ErrRecordNotFound {
			logger.GetLogger().Error("Failed to get log entry",
				zap.Uint("log_id", id),
				zap.Error(result.Error),
			)
		}
		return nil, result.Error
	}

	return &entry, nil
}

// Update overwrites the mutable fields of an entry. The soft_deleted predicate
// makes the write conditional, so a concurrent soft delete wins and the caller
// sees gorm.ErrRecordNotFound instead of resurrecting the entry.
func (r *LogEntryRepository) Update(ctx context.Context, id uint, entry *model.LogEntry) error {
	start := time.Now()

	result := r.active(ctx).Where("id = ?", id).Updates(map[string]interface{}{
		"title":          entry.Title,
		"description":    entry.Description,
		"completed":      entry.Completed,
		"date":           entry.Date,
		"attachment_url": entry.AttachmentURL,
		"updated_at":     time.Now().UTC(),
	})
	if result.Error != nil {
		logger.GetLogger().Error("Failed to update log entry",
			zap.Uint("log_id", id),
			zap.Duration("duration", time.Since(start)),
			zap.Error(result.Error),
		)
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// SoftDelete marks an entry deleted. Terminal: the predicate keeps an already
// deleted entry from being touched again.
func (r *LogEntryRepository) SoftDelete(ctx context.Context, id uint) error {
	start := time.Now()

	result := r.active(ctx).Where("id = ?", id).Updates(map[string]interface{}{
		"soft_deleted": true,
		"updated_at":   time.Now().UTC(),
	})
	if result.Error != nil {
		logger.GetLogger().Error("Failed to soft delete log entry",
			zap.Uint("log_id", id),
			zap.Duration("duration", time.Since(start)),
			zap.Error(result.Error),
		)
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// ListByUser returns a user's non-deleted entries, most recent first
func (r *LogEntryRepository) ListByUser(ctx context.Context, userID uint) ([]model.LogEntry, error) {
	start := time.Now()
	var entries []model.LogEntry

	result := r.active(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&entries)
	if result.Error != nil {
		logger.GetLogger().Error("Failed to list log entries",
			zap.Uint("user_id", userID),
			zap.Duration("duration", time.Since(start)),
			zap.Error(result.Error),
		)
		return nil, result.Error
	}

	return entries, nil
}

// CompletionsByUser returns just the completion flags of a user's non-deleted
// entries, enough for the stats aggregation
func (r *LogEntryRepository) CompletionsByUser(ctx context.Context, userID uint) ([]bool, error) {
	var completions []bool

	result := r.active(ctx).
		Where("user_id = ?", userID).
		Pluck("completed", &completions)
	if result.Error != nil {
		logger.GetLogger().Error("Failed to fetch completion flags",
			zap.Uint("user_id", userID),
			zap.Error(result.Error),
		)
		return nil, result.Error
	}

	return completions, nil
}
