package service

import (
	"context"
	"strings"
	"time"

	"github.com/surdiana/worklog/internal/dto"
	apperrors "github.com/surdiana/worklog/internal/errors"
	"github.com/surdiana/worklog/internal/model"
	"github.com/surdiana/worklog/internal/repository"
	"github.com/surdiana/worklog/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// LogEntryService owns the log-entry lifecycle. Every operation takes the
// authenticated user id resolved by the auth middleware and enforces
// ownership before touching an entry.
type LogEntryService struct {
	repoLog *repository.LogEntryRepository
	stats   *StatsService
}

func NewLogEntryService(repo *repository.LogEntryRepository, stats *StatsService) *LogEntryService {
	return &LogEntryService{
		repoLog: repo,
		stats:   stats,
	}
}

func toLogEntryResponse(entry *model.LogEntry) dto.LogEntryResponse {
	return dto.LogEntryResponse{
		ID:            entry.ID,
		UserID:        entry.UserID,
		Title:         entry.Title,
		Description:   entry.Description,
		Completed:     entry.Completed,
		Date:          entry.Date.Format(dateLayout),
		AttachmentURL: entry.AttachmentURL,
		CreatedAt:     entry.CreatedAt,
		UpdatedAt:     entry.UpdatedAt,
	}
}

// parseEntryDate parses the request date, defaulting to today when empty
func parseEntryDate(value string) (time.Time, error) {
	if value == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.WrapError(apperrors.ErrValidationFailed, err)
	}
	return date, nil
}

func validateEntryRequest(req *dto.LogEntryRequest) error {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return apperrors.ErrValidationFailed
	}
	return nil
}

// requireOwner is the single ownership guard ahead of every mutation
func requireOwner(entry *model.LogEntry, userID uint) error {
	if entry.UserID != userID {
		logger.GetLogger().Warn("Ownership check failed",
			zap.Uint("log_id", entry.ID),
			zap.Uint("owner_id", entry.UserID),
			zap.Uint("user_id", userID),
		)
		return apperrors.ErrForbidden
	}
	return nil
}

// Create inserts a new entry owned by the authenticated user. The owner is
// always the resolved identity; the request carries no owner field.
func (s *LogEntryService) Create(ctx context.Context, userID uint, req *dto.LogEntryRequest) (*dto.LogEntryResponse, error) {
	if err := validateEntryRequest(req); err != nil {
		return nil, err
	}

	date, err := parseEntryDate(req.Date)
	if err != nil {
		return nil, err
	}

	entry := &model.LogEntry{
		UserID:        userID,
		Title:         strings.TrimSpace(req.Title),
		Description:   strings.TrimSpace(req.Description),
		Completed:     req.Completed,
		Date:          date,
		AttachmentURL: req.AttachmentURL,
	}

	if err := s.repoLog.Create(ctx, entry); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	s.stats.InvalidateUser(ctx, userID)

	logger.GetLogger().Info("Log entry created",
		zap.Uint("log_id", entry.ID),
		zap.Uint("user_id", userID),
	)

	response := toLogEntryResponse(entry)
	return &response, nil
}

// Update overwrites an entry with the request payload (full-replace, not
// patch). Only the owner may update; a soft-deleted entry reads as absent.
func (s *LogEntryService) Update(ctx context.Context, userID, entryID uint, req *dto.LogEntryRequest) (*dto.LogEntryResponse, error) {
	if err := validateEntryRequest(req); err != nil {
		return nil, err
	}

	date, err := parseEntryDate(req.Date)
	if err != nil {
		return nil, err
	}

	entry, err := s.repoLog.GetByID(ctx, entryID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrLogNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if err := requireOwner(entry, userID); err != nil {
		return nil, err
	}

	entry.Title = strings.TrimSpace(req.Title)
	entry.Description = strings.TrimSpace(req.Description)
	entry.Completed = req.Completed
	entry.Date = date
	entry.AttachmentURL = req.AttachmentURL

	if err := s.repoLog.Update(ctx, entryID, entry); err != nil {
		if err == gorm.ErrRecordNotFound {
			// deleted between the read and the conditional write
			return nil, apperrors.ErrLogNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	s.stats.InvalidateUser(ctx, userID)

	updated, err := s.repoLog.GetByID(ctx, entryID)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	response := toLogEntryResponse(updated)
	return &response, nil
}

// SoftDelete marks an entry deleted. Terminal; nothing reactivates it.
func (s *LogEntryService) SoftDelete(ctx context.Context, userID, entryID uint) (*dto.DeleteLogResponse, error) {
	entry, err := s.repoLog.GetByID(ctx, entryID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrLogNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if err := requireOwner(entry, userID); err != nil {
		return nil, err
	}

	if err := s.repoLog.SoftDelete(ctx, entryID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrLogNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	s.stats.InvalidateUser(ctx, userID)

	logger.GetLogger().Info("Log entry soft deleted",
		zap.Uint("log_id", entryID),
		zap.Uint("user_id", userID),
	)

	return &dto.DeleteLogResponse{Deleted: true, ID: entryID}, nil
}

// ListByUser returns all of a user's entries, most recent first. Users can
// only list their own entries.
func (s *LogEntryService) ListByUser(ctx context.Context, userID, requestedUserID uint) ([]dto.LogEntryResponse, error) {
	if userID != requestedUserID {
		logger.GetLogger().Warn("Log listing denied",
			zap.Uint("user_id", userID),
			zap.Uint("requested_user_id", requestedUserID),
		)
		return nil, apperrors.ErrForbidden
	}

	entries, err := s.repoLog.ListByUser(ctx, requestedUserID)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	responses := make([]dto.LogEntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, toLogEntryResponse(&entries[i]))
	}

	return responses, nil
}
