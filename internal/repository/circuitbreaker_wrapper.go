package repository

import (
	"context"
	"errors"

	"github.com/guttosm/pressure-drop-service/internal/circuitbreaker"
	"github.com/guttosm/pressure-drop-service/internal/domain/model"
)

// SettingsRepositoryWithCircuitBreaker wraps SettingsRepository with circuit breaker protection.
type SettingsRepositoryWithCircuitBreaker struct {
	repo           SettingsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewSettingsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewSettingsRepositoryWithCircuitBreaker(repo SettingsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *SettingsRepositoryWithCircuitBreaker {
	return &SettingsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetActive returns the active settings. While the circuit is open it reports
// no stored settings so callers keep their configured defaults.
func (r *SettingsRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*SettingsDocument, error) {
	var result *SettingsDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetActive(ctx)
		return cbErr
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil, nil
	}
	return result, err
}

// Create stores a new settings version with circuit breaker protection.
func (r *SettingsRepositoryWithCircuitBreaker) Create(ctx context.Context, settings model.CalculationSettings, createdBy string) (*SettingsDocument, error) {
	var result *SettingsDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, settings, createdBy)
		return cbErr
	})
	return result, err
}

// List returns the settings history with circuit breaker protection.
func (r *SettingsRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]SettingsDocument, error) {
	var result []SettingsDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *SettingsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry. An open circuit drops the entry.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores log entries in bulk. An open circuit drops the batch.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
