package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, 9.8, s.Gravity)
	assert.Equal(t, LaminarFormulaLiteral, s.LaminarFormula)
	assert.NoError(t, s.Validate())
}

func TestCalculationSettings_Validate(t *testing.T) {
	tests := []struct {
		name     string
		settings CalculationSettings
		wantErr  bool
	}{
		{"textbook", CalculationSettings{Gravity: 9.80665, LaminarFormula: LaminarFormulaTextbook}, false},
		{"zero gravity", CalculationSettings{Gravity: 0, LaminarFormula: LaminarFormulaLiteral}, true},
		{"NaN gravity", CalculationSettings{Gravity: math.NaN(), LaminarFormula: LaminarFormulaLiteral}, true},
		{"unknown formula", CalculationSettings{Gravity: 9.8, LaminarFormula: "blasius"}, true},
		{"empty formula", CalculationSettings{Gravity: 9.8}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
