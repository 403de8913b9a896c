//go:build !integration

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/pressure-drop-service/internal/domain/model"
	"github.com/guttosm/pressure-drop-service/internal/mocks"
	"github.com/guttosm/pressure-drop-service/internal/repository"
	"github.com/guttosm/pressure-drop-service/internal/service"
)

func TestInitializeServices_WithoutDatabase(t *testing.T) {
	cfg := testConfig()
	cfg.Calculation.LaminarFormula = model.LaminarFormulaTextbook

	services := InitializeServices(cfg, nil)
	t.Cleanup(services.Calculator.Stop)

	require.NotNil(t, services.Calculator)
	assert.Equal(t, model.LaminarFormulaTextbook, services.Calculator.Settings().LaminarFormula)
	assert.Nil(t, services.TokenService)

	_, err := services.SettingsService.GetActive(context.Background())
	assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)
}

func TestInitializeServices_InvalidConfiguredSettingsFallBack(t *testing.T) {
	cfg := testConfig()
	cfg.Calculation.Gravity = 0

	services := InitializeServices(cfg, nil)
	t.Cleanup(services.Calculator.Stop)

	assert.Equal(t, model.DefaultSettings(), services.Calculator.Settings())
}

func TestInitializeServices_LoadsStoredSettings(t *testing.T) {
	tests := []struct {
		name        string
		active      *repository.SettingsDocument
		err         error
		wantGravity float64
	}{
		{
			name:        "active version applied",
			active:      &repository.SettingsDocument{Gravity: 9.81, LaminarFormula: model.LaminarFormulaLiteral, Active: true, Version: 2},
			wantGravity: 9.81,
		},
		{
			name:        "no stored version keeps configured settings",
			wantGravity: model.DefaultGravity,
		},
		{
			name:        "repository error keeps configured settings",
			err:         errors.New("server selection timeout"),
			wantGravity: model.DefaultGravity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockSettingsRepositoryInterface(t)
			repo.On("GetActive", mock.Anything).Return(tt.active, tt.err).Once()

			services := InitializeServices(testConfig(), &DatabaseComponents{SettingsRepo: repo})
			t.Cleanup(services.Calculator.Stop)

			assert.Equal(t, tt.wantGravity, services.Calculator.Settings().Gravity)
		})
	}
}

func TestInitializeServices_TokenService(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.JWTEnabled = true
	cfg.Auth.JWTSecretKey = "test-secret"

	services := InitializeServices(cfg, nil)
	t.Cleanup(services.Calculator.Stop)

	assert.NotNil(t, services.TokenService)
}
