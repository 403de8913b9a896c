package repository

import (
	"context"

	"github.com/guttosm/pressure-drop-service/internal/domain/model"
)

// SettingsRepositoryInterface defines the settings repository operations.
type SettingsRepositoryInterface interface {
	GetActive(ctx context.Context) (*SettingsDocument, error)
	Create(ctx context.Context, settings model.CalculationSettings, createdBy string) (*SettingsDocument, error)
	List(ctx context.Context, limit int) ([]SettingsDocument, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}

var (
	_ SettingsRepositoryInterface = (*SettingsRepository)(nil)
	_ SettingsRepositoryInterface = (*SettingsRepositoryWithCircuitBreaker)(nil)
	_ LogsRepositoryInterface     = (*LogsRepository)(nil)
	_ LogsRepositoryInterface     = (*LogsRepositoryWithCircuitBreaker)(nil)
)
