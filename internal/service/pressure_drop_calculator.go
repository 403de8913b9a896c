package service

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/guttosm/pressure-drop-service/internal/domain/model"
	"github.com/guttosm/pressure-drop-service/internal/logger"
	"github.com/guttosm/pressure-drop-service/internal/metrics"
	"github.com/guttosm/pressure-drop-service/internal/service/cache"
)

// ErrNumericDegenerate is returned when a calculation produces NaN or ±Inf.
var ErrNumericDegenerate = errors.New("numeric degenerate result")

// PressureDropCalculator defines the interface for pressure drop calculations.
type PressureDropCalculator interface {
	// Calculate evaluates p with the calculator's current settings.
	Calculate(p model.Pipeline) (model.PipelineResult, error)
	CalculateWithSettings(p model.Pipeline, settings model.CalculationSettings) (model.PipelineResult, error)
	// Settings returns the settings used by Calculate.
	Settings() model.CalculationSettings
	// SetSettings replaces the settings used by Calculate and clears the cache.
	SetSettings(settings model.CalculationSettings) error
	// InvalidateCache clears the result cache.
	InvalidateCache()
}

// Option configures a PressureDropCalculatorService.
type Option func(*PressureDropCalculatorService)

// PressureDropCalculatorService implements PressureDropCalculator. Every call
// recomputes from the SI record; the optional cache is keyed by the whole
// record and the settings.
type PressureDropCalculatorService struct {
	mu       sync.RWMutex
	settings model.CalculationSettings
	cache    cache.Cache
}

// NewPressureDropCalculatorService creates a calculator with default settings
// and the given options applied.
func NewPressureDropCalculatorService(opts ...Option) *PressureDropCalculatorService {
	s := &PressureDropCalculatorService{
		settings: model.DefaultSettings(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithSettings sets the calculation settings. Invalid settings are ignored.
func WithSettings(settings model.CalculationSettings) Option {
	return func(s *PressureDropCalculatorService) {
		if settings.Validate() == nil {
			s.settings = settings
		}
	}
}

// WithGravity overrides the gravitational acceleration.
func WithGravity(g float64) Option {
	return func(s *PressureDropCalculatorService) {
		next := s.settings
		next.Gravity = g
		if next.Validate() == nil {
			s.settings = next
		}
	}
}

// WithLaminarFormula selects the laminar friction factor relation.
func WithLaminarFormula(f model.LaminarFormula) Option {
	return func(s *PressureDropCalculatorService) {
		if f.Valid() {
			s.settings.LaminarFormula = f
		}
	}
}

// WithCache enables result caching with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *PressureDropCalculatorService) {
		if capacity > 0 {
			s.cache = NewShardedCache(capacity, ttl, 16)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *PressureDropCalculatorService) {
		s.cache = c
	}
}

// Settings returns the settings used by Calculate.
func (s *PressureDropCalculatorService) Settings() model.CalculationSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// SetSettings validates and installs new settings, then clears the cache.
func (s *PressureDropCalculatorService) SetSettings(settings model.CalculationSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()

	s.InvalidateCache()
	return nil
}

// Calculate evaluates p with the current settings.
func (s *PressureDropCalculatorService) Calculate(p model.Pipeline) (model.PipelineResult, error) {
	return s.CalculateWithSettings(p, s.Settings())
}

// CalculateWithSettings validates p and settings, then runs the pipeline.
// Invalid input is rejected before any arithmetic; a non-finite derived
// value yields ErrNumericDegenerate.
func (s *PressureDropCalculatorService) CalculateWithSettings(p model.Pipeline, settings model.CalculationSettings) (model.PipelineResult, error) {
	start := time.Now()

	if err := p.Validate(); err != nil {
		metrics.RecordCalculation(time.Since(start), "", "invalid_input")
		return model.PipelineResult{}, err
	}
	if err := settings.Validate(); err != nil {
		metrics.RecordCalculation(time.Since(start), "", "invalid_input")
		return model.PipelineResult{}, err
	}

	key := cache.Key{Pipeline: p, Settings: settings}
	if s.cache != nil {
		if result, ok := s.cache.Get(key); ok {
			metrics.RecordCalculation(time.Since(start), string(result.FlowRegime), "cached")
			return result, nil
		}
	}

	result := Calculate(p, settings)
	if err := checkFinite(result); err != nil {
		metrics.RecordCalculation(time.Since(start), string(result.FlowRegime), "numeric_degenerate")
		log := logger.Logger()
		log.Warn().Err(err).Interface("pipeline", p).Msg("Pressure drop calculation degenerated")
		return model.PipelineResult{}, err
	}

	if s.cache != nil {
		s.cache.Set(key, result)
		if cm, ok := s.cache.(cache.CacheWithMetrics); ok {
			m := cm.Metrics()
			metrics.UpdateCacheMetrics(m.Size, m.Capacity)
		}
	}

	metrics.RecordCalculation(time.Since(start), string(result.FlowRegime), "success")
	log := logger.Logger()
	log.Debug().
		Str("regime", string(result.FlowRegime)).
		Float64("reynolds_number", result.ReynoldsNumber).
		Float64("pressure_drop_kpa", result.PressureDrop).
		Msg("Pressure drop calculated")

	return result, nil
}

// InvalidateCache clears the calculation cache.
func (s *PressureDropCalculatorService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// Stop releases the cache's background resources.
func (s *PressureDropCalculatorService) Stop() {
	if s.cache != nil {
		s.cache.Stop()
	}
}

func checkFinite(r model.PipelineResult) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"velocity", r.Velocity},
		{"reynolds_number", r.ReynoldsNumber},
		{"friction_factor", r.FrictionFactor},
		{"equivalent_length", r.EquivalentLength},
		{"total_length", r.TotalLength},
		{"frictional_pressure_drop", r.FrictionalPressureDrop},
		{"elevation_pressure_drop", r.ElevationPressureDrop},
		{"pressure_drop", r.PressureDrop},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s is %v", ErrNumericDegenerate, f.name, f.value)
		}
	}
	return nil
}
