package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surdiana/worklog/internal/dto"
)

func TestAggregate_NoEntries(t *testing.T) {
	db := newTestDB(t)
	_, stats := newLogStack(t, db)
	owner := seedUser(t, db, "198701012010011001", "secret")

	result, err := stats.Aggregate(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Equal(t, &dto.StatsResponse{Total: 0, Completed: 0, Pending: 0}, result)
}

func TestAggregate_CountsCompletions(t *testing.T) {
	db := newTestDB(t)
	svc, stats := newLogStack(t, db)
	owner := seedUser(t, db, "198701012010011001", "secret")
	other := seedUser(t, db, "198701012010011002", "secret")
	ctx := context.Background()

	for _, completed := range []bool{true, true, false, false, false} {
		req := entryRequest()
		req.Completed = completed
		_, err := svc.Create(ctx, owner.ID, req)
		require.NoError(t, err)
	}
	// another user's entries must not bleed into the aggregate
	_, err := svc.Create(ctx, other.ID, entryRequest())
	require.NoError(t, err)

	result, err := stats.Aggregate(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, &dto.StatsResponse{Total: 5, Completed: 2, Pending: 3}, result)
}

func TestAggregate_ExcludesSoftDeleted(t *testing.T) {
	db := newTestDB(t)
	svc, stats := newLogStack(t, db)
	owner := seedUser(t, db, "198701012010011001", "secret")
	ctx := context.Background()

	created, err := svc.Create(ctx, owner.ID, entryRequest())
	require.NoError(t, err)

	_, err = svc.SoftDelete(ctx, owner.ID, created.ID)
	require.NoError(t, err)

	result, err := stats.Aggregate(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, &dto.StatsResponse{Total: 0, Completed: 0, Pending: 0}, result)
}
