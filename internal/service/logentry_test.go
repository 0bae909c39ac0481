package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surdiana/worklog/internal/dto"
	apperrors "github.com/surdiana/worklog/internal/errors"
)

func entryRequest() *dto.LogEntryRequest {
	return &dto.LogEntryRequest{
		Title:       "Weekly report",
		Description: "Compiled the weekly activity report",
		Completed:   false,
		Date:        "2024-01-01",
	}
}

func TestCreate(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newLogStack(t, db)
	owner := seedUser(t, db, "198701012010011001", "secret")
	ctx := context.Background()

	entry, err := svc.Create(ctx, owner.ID, entryRequest())
	require.NoError(t, err)

	assert.NotZero(t, entry.ID)
	assert.Equal(t, owner.ID, entry.UserID)
	assert.Equal(t, "Weekly report", entry.Title)
	assert.False(t, entry.Completed)
	assert.Equal(t, "2024-01-01", entry.Date)
	assert.False(t, entry.CreatedAt.IsZero())
}

func TestCreate_Validation(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newLogStack(t, db)
	owner := seedUser(t, db, "198701012010011001", "secret")
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(req *dto.LogEntryRequest)
	}{
		{name: "empty title", mutate: func(req *dto.LogEntryRequest) { req.Title = "  " }},
		{name: "empty description", mutate: func(req *dto.LogEntryRequest) { req.Description = "" }},
		{name: "unparseable date", mutate: func(req *dto.LogEntryRequest) { req.Date = "01-01-2024" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := entryRequest()
			tt.mutate(req)

			_, err := svc.Create(ctx, owner.ID, req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestCreate_DateDefaultsToToday(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newLogStack(t, db)
	owner := seedUser(t, db, "198701012010011001", "secret")

	req := entryRequest()
	req.Date = ""

	entry, err := svc.Create(context.Background(), owner.ID, req)
	require.NoError(t, err)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), entry.Date)
}

func TestUpdate(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newLogStack(t, db)
	owner := seedUser(t, db, "198701012010011001", "secret")
	ctx := context.Background()

	created, err := svc.Create(ctx, owner.ID, entryRequest())
	require.NoError(t, err)

	req := entryRequest()
	req.Title = "Weekly report v2"
	req.Completed = true

	updated, err := svc.Update(ctx, owner.ID, created.ID, req)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Weekly report v2", updated.Title)
	assert.True(t, updated.Completed)
}

func TestUpdate_Idempotent(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newLogStack(t, db)
	owner := seedUser(t, db, "198701012010011001", "secret")
	ctx := context.Background()

	created, err := svc.Create(ctx, owner.ID, entryRequest())
	require.NoError(t, err)

	req := entryRequest()
	req.Title = "Revised"

	first, err := svc.Update(ctx, owner.ID, created.ID, req)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	second, err := svc.Update(ctx, owner.ID, created.ID, req)
	require.NoError(t, err)

	// identical payload yields identical stored state; only updated_at moves
	assert.Equal(t, first.Title, second.Title)
	assert.Equal(t, first.Description, second.Description)
	assert.Equal(t, first.Completed, second.Completed)
	assert.Equal(t, first.Date, second.Date)
	assert.Equal(t, first.AttachmentURL, second.AttachmentURL)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
}

func TestUpdate_Failures(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newLogStack(t, db)
	owner := seedUser(t, db, "198701012010011001", "secret")
	other := seedUser(t, db, "198701012010011002", "secret")
	ctx := context.Background()

	created, err := svc.Create(ctx, owner.ID, entryRequest())
	require.NoError(t, err)

	t.Run("not found", func(t *testing.T) {
		_, err := svc.Update(ctx, owner.ID, 9999, entryRequest())
		assert.ErrorIs(t, err, apperrors.ErrLogNotFound)
	})

	t.Run("not the owner", func(t *testing.T) {
		_, err := svc.Update(ctx, other.ID, created.ID, entryRequest())
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("after soft delete", func(t *testing.T) {
		_, err := svc.SoftDelete(ctx, owner.ID, created.ID)
		require.NoError(t, err)

		_, err = svc.Update(ctx, owner.ID, created.ID, entryRequest())
		assert.ErrorIs(t, err, apperrors.ErrLogNotFound)
	})
}

func TestSoftDelete(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newLogStack(t, db)
	owner := seedUser(t, db, "198701012010011001", "secret")
	other := seedUser(t, db, "198701012010011002", "secret")
	ctx := context.Background()

	created, err := svc.Create(ctx, owner.ID, entryRequest())
	require.NoError(t, err)

	t.Run("not the owner", func(t *testing.T) {
		_, err := svc.SoftDelete(ctx, other.ID, created.ID)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("owner deletes", func(t *testing.T) {
		result, err := svc.SoftDelete(ctx, owner.ID, created.ID)
		require.NoError(t, err)
		assert.True(t, result.Deleted)
		assert.Equal(t, created.ID, result.ID)
	})

	t.Run("deleted entry is gone from listing", func(t *testing.T) {
		entries, err := svc.ListByUser(ctx, owner.ID, owner.ID)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("terminal: second delete is not found", func(t *testing.T) {
		_, err := svc.SoftDelete(ctx, owner.ID, created.ID)
		assert.ErrorIs(t, err, apperrors.ErrLogNotFound)
	})
}

func TestListByUser(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newLogStack(t, db)
	owner := seedUser(t, db, "198701012010011001", "secret")
	other := seedUser(t, db, "198701012010011002", "secret")
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		req := entryRequest()
		req.Title = title
		_, err := svc.Create(ctx, owner.ID, req)
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond) // distinct creation timestamps
	}

	t.Run("most recent first", func(t *testing.T) {
		entries, err := svc.ListByUser(ctx, owner.ID, owner.ID)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "third", entries[0].Title)
		assert.Equal(t, "first", entries[2].Title)
	})

	t.Run("mismatched user id is forbidden", func(t *testing.T) {
		_, err := svc.ListByUser(ctx, other.ID, owner.ID)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("no entries yields empty slice", func(t *testing.T) {
		entries, err := svc.ListByUser(ctx, other.ID, other.ID)
		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})
}
