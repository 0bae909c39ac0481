package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/surdiana/worklog/internal/dto"
	apperrors "github.com/surdiana/worklog/internal/errors"
	"github.com/surdiana/worklog/internal/repository"
	"github.com/surdiana/worklog/pkg/logger"
	"github.com/surdiana/worklog/pkg/redis"
	"go.uber.org/zap"
)

// StatsService computes per-user counts over non-deleted entries. Results are
// cached briefly in redis; mutations invalidate the key, so the cache never
// outlives a write by more than one request.
type StatsService struct {
	repoLog *repository.LogEntryRepository
	cache   *redis.Client
	ttl     time.Duration
}

func NewStatsService(repo *repository.LogEntryRepository, cache *redis.Client, ttl time.Duration) *StatsService {
	return &StatsService{
		repoLog: repo,
		cache:   cache,
		ttl:     ttl,
	}
}

func statsCacheKey(userID uint) string {
	return fmt.Sprintf("stats:user:%d", userID)
}

// Aggregate returns {total, completed, pending} for the user's non-deleted
// entries. Zero entries yields all-zero stats, not an error.
func (s *StatsService) Aggregate(ctx context.Context, userID uint) (*dto.StatsResponse, error) {
	key := statsCacheKey(userID)

	if cached, hit, err := s.cache.Get(ctx, key); err == nil && hit {
		var stats dto.StatsResponse
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
		// unreadable cache entry, fall through to the store
	} else if err != nil {
		logger.GetLogger().Warn("Stats cache read failed",
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
	}

	completions, err := s.repoLog.CompletionsByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	stats := dto.StatsResponse{Total: len(completions)}
	for _, completed := range completions {
		if completed {
			stats.Completed++
		}
	}
	stats.Pending = stats.Total - stats.Completed

	if payload, err := json.Marshal(stats); err == nil {
		if err := s.cache.Set(ctx, key, string(payload), s.ttl); err != nil {
			logger.GetLogger().Warn("Stats cache write failed",
				zap.Uint("user_id", userID),
				zap.Error(err),
			)
		}
	}

	return &stats, nil
}

// InvalidateUser drops the cached stats after a mutation. Best effort; a
// failed invalidation only means a stale read until the TTL expires.
func (s *StatsService) InvalidateUser(ctx context.Context, userID uint) {
	if s == nil {
		return
	}
	if err := s.cache.Del(ctx, statsCacheKey(userID)); err != nil {
		logger.GetLogger().Warn("Stats cache invalidation failed",
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
	}
}
