package service

import (
	"context"

	"github.com/guttosm/pressure-drop-service/internal/domain/model"
	"github.com/guttosm/pressure-drop-service/internal/repository"
)

// LoggingService stores and queries request and audit log entries.
type LoggingService interface {
	// CreateLog stores a single log entry.
	CreateLog(ctx context.Context, entry *model.LogEntry) error
	// CreateLogs stores a batch of entries with one write.
	CreateLogs(ctx context.Context, entries []*model.LogEntry) error
	// QueryLogs returns matching entries, newest first.
	QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error)
	// CountLogs counts matching entries, ignoring Limit and Skip.
	CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}

// LoggingServiceImpl implements LoggingService on top of a logs repository.
type LoggingServiceImpl struct {
	repo repository.LogsRepositoryInterface
}

// NewLoggingService creates a new logging service implementation.
func NewLoggingService(repo repository.LogsRepositoryInterface) LoggingService {
	return &LoggingServiceImpl{repo: repo}
}

// CreateLog stores entry. The ID and timestamp the repository assigns are
// copied back into entry.
func (s *LoggingServiceImpl) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	doc := repository.LogEntryDocument(*entry)
	if err := s.repo.Create(ctx, &doc); err != nil {
		return err
	}
	entry.ID, entry.Timestamp = doc.ID, doc.Timestamp
	return nil
}

func (s *LoggingServiceImpl) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	docs := make([]*repository.LogEntryDocument, len(entries))
	for i, entry := range entries {
		doc := repository.LogEntryDocument(*entry)
		docs[i] = &doc
	}
	return s.repo.CreateMany(ctx, docs)
}

func (s *LoggingServiceImpl) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	docs, err := s.repo.Query(ctx, repository.LogQueryOptions(opts))
	if err != nil {
		return nil, err
	}

	entries := make([]model.LogEntry, len(docs))
	for i, doc := range docs {
		entries[i] = model.LogEntry(*doc)
	}
	return entries, nil
}

func (s *LoggingServiceImpl) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	return s.repo.Count(ctx, repository.LogQueryOptions(opts))
}
