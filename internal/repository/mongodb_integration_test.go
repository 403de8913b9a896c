//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	t.Run("collections wired", func(t *testing.T) {
		assert.Equal(t, SettingsCollection, db.Settings.Name())
		assert.Equal(t, LogsCollection, db.Logs.Name())
	})

	t.Run("health check", func(t *testing.T) {
		assert.NoError(t, db.HealthCheck(ctx))
	})

	t.Run("settings indexes created", func(t *testing.T) {
		cursor, err := db.Settings.Indexes().List(ctx)
		require.NoError(t, err)
		var indexes []bson.M
		require.NoError(t, cursor.All(ctx, &indexes))

		names := make([]string, 0, len(indexes))
		for _, idx := range indexes {
			names = append(names, idx["name"].(string))
		}
		assert.Contains(t, names, "active_1")
		assert.Contains(t, names, "version_-1")
	})

	t.Run("set logs TTL is repeatable", func(t *testing.T) {
		assert.NoError(t, db.SetLogsTTL(ctx, 30))
		assert.NoError(t, db.SetLogsTTL(ctx, 60))
	})

	t.Run("health check fails after close", func(t *testing.T) {
		other, err := NewMongoDB(getSharedContainerURI(), sanitizeDBName(t.Name()))
		require.NoError(t, err)
		require.NoError(t, other.Close(ctx))

		assert.Error(t, other.HealthCheck(ctx))
	})
}
