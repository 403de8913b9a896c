package service

import (
	"context"
	"errors"

	"github.com/guttosm/pressure-drop-service/internal/domain/model"
	"github.com/guttosm/pressure-drop-service/internal/logger"
	"github.com/guttosm/pressure-drop-service/internal/metrics"
	"github.com/guttosm/pressure-drop-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// SettingsService manages the versioned calculation settings and keeps the
// calculator in step with the active version.
type SettingsService interface {
	// GetActive returns the active stored version, or nil when none exists.
	GetActive(ctx context.Context) (*repository.SettingsDocument, error)
	// Update validates and stores a new active version, then applies it to the calculator.
	Update(ctx context.Context, settings model.CalculationSettings, updatedBy string) (*repository.SettingsDocument, error)
	// History returns stored versions, newest first.
	History(ctx context.Context, limit int) ([]repository.SettingsDocument, error)
	// Load applies the active stored version to the calculator, if there is one.
	Load(ctx context.Context) error
}

// SettingsServiceImpl implements SettingsService.
type SettingsServiceImpl struct {
	settingsRepo repository.SettingsRepositoryInterface
	calculator   PressureDropCalculator
}

// NewSettingsService creates a new settings service. A nil repository leaves
// the calculator on its configured settings and every call returns
// ErrRepositoryNotConfigured.
func NewSettingsService(settingsRepo repository.SettingsRepositoryInterface, calculator PressureDropCalculator) SettingsService {
	return &SettingsServiceImpl{
		settingsRepo: settingsRepo,
		calculator:   calculator,
	}
}

func (s *SettingsServiceImpl) GetActive(ctx context.Context) (*repository.SettingsDocument, error) {
	if s.settingsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.settingsRepo.GetActive(ctx)
}

func (s *SettingsServiceImpl) Update(ctx context.Context, settings model.CalculationSettings, updatedBy string) (*repository.SettingsDocument, error) {
	if s.settingsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := settings.Validate(); err != nil {
		metrics.RecordSettingsUpdate("invalid_input")
		return nil, err
	}

	doc, err := s.settingsRepo.Create(ctx, settings, updatedBy)
	if err != nil {
		metrics.RecordSettingsUpdate("error")
		return nil, err
	}

	if s.calculator != nil {
		if err := s.calculator.SetSettings(settings); err != nil {
			metrics.RecordSettingsUpdate("error")
			return nil, err
		}
	}

	metrics.RecordSettingsUpdate("success")
	log := logger.Logger()
	log.Info().
		Int("version", doc.Version).
		Float64("gravity", settings.Gravity).
		Str("laminar_formula", string(settings.LaminarFormula)).
		Str("updated_by", updatedBy).
		Msg("Calculation settings updated")

	return doc, nil
}

func (s *SettingsServiceImpl) History(ctx context.Context, limit int) ([]repository.SettingsDocument, error) {
	if s.settingsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.settingsRepo.List(ctx, limit)
}

func (s *SettingsServiceImpl) Load(ctx context.Context) error {
	doc, err := s.GetActive(ctx)
	if err != nil {
		return err
	}
	if doc == nil || s.calculator == nil {
		return nil
	}

	settings := doc.CalculationSettings()
	if err := s.calculator.SetSettings(settings); err != nil {
		return err
	}

	log := logger.Logger()
	log.Info().
		Int("version", doc.Version).
		Float64("gravity", settings.Gravity).
		Str("laminar_formula", string(settings.LaminarFormula)).
		Msg("Loaded stored calculation settings")
	return nil
}
