//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/pressure-drop-service/internal/domain/model"
	"github.com/guttosm/pressure-drop-service/internal/mocks"
	"github.com/guttosm/pressure-drop-service/internal/repository"
)

var errDatabase = errors.New("database error")

func exportAuditEntry() *model.LogEntry {
	return &model.LogEntry{
		Level:      model.LogLevelError,
		Message:    "Report export failed",
		RequestID:  "req-123",
		Method:     "POST",
		Path:       "/api/report/export",
		StatusCode: 500,
		Duration:   100,
		IP:         "127.0.0.1",
		UserAgent:  "test-agent",
		Error:      "disk full",
		ClientID:   "plant-a",
		ActionType: "export_report",
		Fields:     map[string]any{"format": "xlsx"},
	}
}

func TestLoggingService_CreateLog(t *testing.T) {
	t.Run("stores every field and copies back the stamp", func(t *testing.T) {
		repo := mocks.NewMockLogsRepositoryInterface(t)
		id := primitive.NewObjectID()
		ts := time.Date(2025, 1, 28, 10, 0, 0, 0, time.UTC)
		entry := exportAuditEntry()

		repo.On("Create", mock.Anything, mock.AnythingOfType("*repository.LogEntryDocument")).
			Run(func(args mock.Arguments) {
				doc := args.Get(1).(*repository.LogEntryDocument)
				assert.Equal(t, "export_report", doc.ActionType)
				assert.Equal(t, map[string]any{"format": "xlsx"}, doc.Fields)
				doc.ID, doc.Timestamp = id, ts
			}).
			Return(nil)

		require.NoError(t, NewLoggingService(repo).CreateLog(context.Background(), entry))

		assert.Equal(t, id, entry.ID)
		assert.Equal(t, ts, entry.Timestamp)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := mocks.NewMockLogsRepositoryInterface(t)
		repo.On("Create", mock.Anything, mock.Anything).Return(errDatabase)
		entry := &model.LogEntry{Level: model.LogLevelInfo, Message: "Pressure drop calculated"}

		err := NewLoggingService(repo).CreateLog(context.Background(), entry)

		assert.ErrorIs(t, err, errDatabase)
		assert.True(t, entry.ID.IsZero())
	})
}

func TestLoggingService_CreateLogs(t *testing.T) {
	tests := []struct {
		name      string
		entries   []*model.LogEntry
		setupMock func(*mocks.MockLogsRepositoryInterface)
		wantErr   error
	}{
		{
			name: "one batched write",
			entries: []*model.LogEntry{
				{Level: model.LogLevelInfo, Message: "HTTP request"},
				exportAuditEntry(),
			},
			setupMock: func(m *mocks.MockLogsRepositoryInterface) {
				m.On("CreateMany", mock.Anything, mock.MatchedBy(func(docs []*repository.LogEntryDocument) bool {
					return len(docs) == 2 && docs[1].ClientID == "plant-a"
				})).Return(nil).Once()
			},
		},
		{
			name:      "empty batch skips the repository",
			entries:   []*model.LogEntry{},
			setupMock: func(*mocks.MockLogsRepositoryInterface) {},
		},
		{
			name:    "repository error",
			entries: []*model.LogEntry{{Level: model.LogLevelInfo}},
			setupMock: func(m *mocks.MockLogsRepositoryInterface) {
				m.On("CreateMany", mock.Anything, mock.Anything).Return(errDatabase)
			},
			wantErr: errDatabase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockLogsRepositoryInterface(t)
			tt.setupMock(repo)

			err := NewLoggingService(repo).CreateLogs(context.Background(), tt.entries)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoggingService_QueryLogs(t *testing.T) {
	start := time.Now().Add(-time.Hour)
	end := time.Now()

	tests := []struct {
		name      string
		opts      model.LogQueryOptions
		docs      []*repository.LogEntryDocument
		err       error
		wantCount int
	}{
		{
			name:      "by request id",
			opts:      model.LogQueryOptions{RequestID: "req-123"},
			docs:      []*repository.LogEntryDocument{{ID: primitive.NewObjectID(), RequestID: "req-123"}},
			wantCount: 1,
		},
		{
			name: "by client and action",
			opts: model.LogQueryOptions{ClientID: "plant-a", Action: "calculate", Limit: 5},
			docs: []*repository.LogEntryDocument{
				{ID: primitive.NewObjectID(), ClientID: "plant-a", ActionType: "calculate"},
				{ID: primitive.NewObjectID(), ClientID: "plant-a", ActionType: "calculate"},
			},
			wantCount: 2,
		},
		{
			name:      "time range with no matches",
			opts:      model.LogQueryOptions{StartTime: &start, EndTime: &end},
			docs:      []*repository.LogEntryDocument{},
			wantCount: 0,
		},
		{
			name: "repository error",
			err:  errDatabase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockLogsRepositoryInterface(t)
			repo.On("Query", mock.Anything, repository.LogQueryOptions(tt.opts)).Return(tt.docs, tt.err)

			entries, err := NewLoggingService(repo).QueryLogs(context.Background(), tt.opts)

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Nil(t, entries)
				return
			}
			require.NoError(t, err)
			assert.Len(t, entries, tt.wantCount)
			for i, doc := range tt.docs {
				assert.Equal(t, model.LogEntry(*doc), entries[i])
			}
		})
	}
}

func TestLoggingService_CountLogs(t *testing.T) {
	t.Run("passes the filter through", func(t *testing.T) {
		repo := mocks.NewMockLogsRepositoryInterface(t)
		opts := model.LogQueryOptions{Level: model.LogLevelError, Action: "export_report"}
		repo.On("Count", mock.Anything, repository.LogQueryOptions(opts)).Return(int64(5), nil)

		count, err := NewLoggingService(repo).CountLogs(context.Background(), opts)

		require.NoError(t, err)
		assert.Equal(t, int64(5), count)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := mocks.NewMockLogsRepositoryInterface(t)
		repo.On("Count", mock.Anything, mock.Anything).Return(int64(0), errDatabase)

		_, err := NewLoggingService(repo).CountLogs(context.Background(), model.LogQueryOptions{})

		assert.ErrorIs(t, err, errDatabase)
	})
}
