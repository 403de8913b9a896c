//go:build integration

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/pressure-drop-service/internal/domain/model"
	"github.com/guttosm/pressure-drop-service/internal/repository"
)

func waterLine(t *testing.T) model.Pipeline {
	t.Helper()
	p, err := model.NewPipeline(model.PipelineInput{
		MassFlow:          36000,
		Viscosity:         1,
		InnerDiameter:     100,
		AbsoluteRoughness: 0.05,
		MarginFactor:      1,
		Density:           1000,
		PipeLength:        500,
		ElevationChange:   10,
	})
	require.NoError(t, err)
	return p
}

func TestPressureDropCalculatorService_CachedIntegration(t *testing.T) {
	svc := NewPressureDropCalculatorService(WithCache(100, 5*time.Minute))
	defer svc.Stop()
	p := waterLine(t)

	first, err := svc.Calculate(p)
	require.NoError(t, err)
	second, err := svc.Calculate(p)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 179.0, first.PressureDrop)
}

func TestSettingsService_Integration(t *testing.T) {
	ctx := context.Background()
	db := setupIntegrationDB(t)

	calc := NewPressureDropCalculatorService(WithCache(100, 5*time.Minute))
	defer calc.Stop()
	settingsService := NewSettingsService(repository.NewSettingsRepository(db), calc)
	p := waterLine(t)

	t.Run("nothing stored keeps configured settings", func(t *testing.T) {
		require.NoError(t, settingsService.Load(ctx))
		assert.Equal(t, model.DefaultSettings(), calc.Settings())

		result, err := calc.Calculate(p)
		require.NoError(t, err)
		assert.InDelta(t, 98000.0, result.ElevationPressureDrop, 1e-6)
	})

	t.Run("update applies new gravity and drops cached results", func(t *testing.T) {
		doc, err := settingsService.Update(ctx, model.CalculationSettings{Gravity: 9.81, LaminarFormula: model.LaminarFormulaLiteral}, "plant-a")
		require.NoError(t, err)
		assert.Equal(t, 1, doc.Version)

		result, err := calc.Calculate(p)
		require.NoError(t, err)
		assert.InDelta(t, 98100.0, result.ElevationPressureDrop, 1e-6)
	})

	t.Run("fresh calculator loads the stored version", func(t *testing.T) {
		fresh := NewPressureDropCalculatorService()
		require.NoError(t, NewSettingsService(repository.NewSettingsRepository(db), fresh).Load(ctx))

		assert.Equal(t, 9.81, fresh.Settings().Gravity)
	})

	t.Run("history lists versions newest first", func(t *testing.T) {
		_, err := settingsService.Update(ctx, model.CalculationSettings{Gravity: 9.81, LaminarFormula: model.LaminarFormulaTextbook}, "plant-b")
		require.NoError(t, err)

		history, err := settingsService.History(ctx, 10)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, 2, history[0].Version)
		assert.True(t, history[0].Active)
		assert.False(t, history[1].Active)
	})
}
