package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/surdiana/worklog/internal/model"
	"github.com/surdiana/worklog/internal/repository"
	"github.com/surdiana/worklog/pkg/redis"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory sqlite database per test
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// shared-cache memory databases disappear when the last connection closes
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.LogEntry{}, &model.ResetToken{}))

	return db
}

// disabledCache returns a no-op redis client
func disabledCache() *redis.Client {
	return redis.NewClient(redis.Config{Enabled: false}, zap.NewNop())
}

func newLogStack(t *testing.T, db *gorm.DB) (*LogEntryService, *StatsService) {
	t.Helper()

	repo := repository.NewLogEntryRepository(db)
	stats := NewStatsService(repo, disabledCache(), time.Minute)
	return NewLogEntryService(repo, stats), stats
}

func seedUser(t *testing.T, db *gorm.DB, nip, password string) *model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &model.User{
		NIP:      nip,
		FullName: "Test User " + nip,
		Email:    nip + "@example.com",
		Phone:    "+620000000000",
		Password: string(hash),
		Role:     model.RoleUser,
	}
	require.NoError(t, db.Create(user).Error)

	return user
}
