package dto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/pressure-drop-service/internal/domain/model"
)

func validRequest() CalculateRequest {
	return CalculateRequest{
		MassFlow:          36000,
		Viscosity:         1,
		InnerDiameter:     100,
		AbsoluteRoughness: 0.05,
		MarginFactor:      1.15,
		Density:           1000,
		PipeLength:        500,
		ElevationChange:   10,
		ElbowAndTee:       10,
		GlobeValve:        2,
		CheckValve:        1,
	}
}

func TestCalculateRequest_ToInput(t *testing.T) {
	req := validRequest()

	in := req.ToInput()

	assert.Equal(t, model.PipelineInput{
		MassFlow:          36000,
		Viscosity:         1,
		InnerDiameter:     100,
		AbsoluteRoughness: 0.05,
		MarginFactor:      1.15,
		Density:           1000,
		PipeLength:        500,
		ElevationChange:   10,
		ElbowAndTee:       10,
		GlobeValve:        2,
		CheckValve:        1,
	}, in)
}

func TestCalculateRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*CalculateRequest)
		wantField string
	}{
		{name: "valid request", mutate: func(r *CalculateRequest) {}},
		{name: "smooth pipe", mutate: func(r *CalculateRequest) { r.AbsoluteRoughness = 0 }},
		{name: "descending line", mutate: func(r *CalculateRequest) { r.ElevationChange = -25 }},
		{name: "negative mass flow", mutate: func(r *CalculateRequest) { r.MassFlow = -1 }, wantField: "mass_flow"},
		{name: "zero diameter", mutate: func(r *CalculateRequest) { r.InnerDiameter = 0 }, wantField: "inner_diameter"},
		{name: "negative pipe length", mutate: func(r *CalculateRequest) { r.PipeLength = -5 }, wantField: "pipe_length"},
		{name: "negative globe valves", mutate: func(r *CalculateRequest) { r.GlobeValve = -1 }, wantField: "globe_valve"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := req.Validate()

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrInvalidInput)
			var vErr *model.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestUpdateSettingsRequest_ToSettings(t *testing.T) {
	req := UpdateSettingsRequest{Gravity: 9.81, LaminarFormula: "textbook"}

	got := req.ToSettings()

	assert.Equal(t, model.CalculationSettings{Gravity: 9.81, LaminarFormula: model.LaminarFormulaTextbook}, got)
	assert.NoError(t, got.Validate())
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name          string
		validationErr *ValidationError
		expected      string
	}{
		{
			name:          "validation error message format",
			validationErr: &ValidationError{Field: "client_id", Message: "client_id is required"},
			expected:      "client_id: client_id is required",
		},
		{
			name:          "validation error with different field",
			validationErr: &ValidationError{Field: "client_secret", Message: "client_secret is required"},
			expected:      "client_secret: client_secret is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.validationErr.Error())
		})
	}
}
