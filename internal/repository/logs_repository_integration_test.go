//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()
	require.NoError(t, db.SetLogsTTL(ctx, 30))

	repo := NewLogsRepository(db)

	t.Run("create fills id and timestamp", func(t *testing.T) {
		entry := &LogEntryDocument{
			Level:      "info",
			Message:    "HTTP request",
			RequestID:  "req-calc",
			Method:     "POST",
			Path:       "/api/calculate",
			StatusCode: 200,
			ClientID:   "plant-a",
		}

		require.NoError(t, repo.Create(ctx, entry))
		assert.False(t, entry.ID.IsZero())
		assert.False(t, entry.Timestamp.IsZero())
	})

	t.Run("create many", func(t *testing.T) {
		err := repo.CreateMany(ctx, []*LogEntryDocument{
			{Level: "info", Message: "export", RequestID: "req-1", Path: "/api/report/export", ClientID: "plant-a", ActionType: "export_report"},
			{Level: "error", Message: "degenerate", RequestID: "req-2", Path: "/api/calculate"},
			{Level: "warn", Message: "slow", RequestID: "req-3", Path: "/api/settings", ClientID: "plant-b"},
		})
		assert.NoError(t, err)
		assert.NoError(t, repo.CreateMany(ctx, nil))
	})

	t.Run("query filters", func(t *testing.T) {
		byRequest, err := repo.Query(ctx, LogQueryOptions{RequestID: "req-calc"})
		require.NoError(t, err)
		require.Len(t, byRequest, 1)
		assert.Equal(t, "/api/calculate", byRequest[0].Path)

		byClient, err := repo.Query(ctx, LogQueryOptions{ClientID: "plant-a"})
		require.NoError(t, err)
		assert.Len(t, byClient, 2)

		byAction, err := repo.Query(ctx, LogQueryOptions{Action: "export_report"})
		require.NoError(t, err)
		require.Len(t, byAction, 1)
		assert.Equal(t, "req-1", byAction[0].RequestID)

		byPath, err := repo.Query(ctx, LogQueryOptions{Path: "/api/report"})
		require.NoError(t, err)
		assert.Len(t, byPath, 1)

		start := time.Now().Add(-time.Hour)
		limited, err := repo.Query(ctx, LogQueryOptions{StartTime: &start, Limit: 2})
		require.NoError(t, err)
		assert.Len(t, limited, 2)
	})

	t.Run("count", func(t *testing.T) {
		total, err := repo.Count(ctx, LogQueryOptions{})
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)

		errors, err := repo.Count(ctx, LogQueryOptions{Level: "error"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), errors)
	})
}
