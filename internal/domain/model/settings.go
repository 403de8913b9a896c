package model

import (
	"fmt"
	"math"
)

// DefaultGravity is the gravitational acceleration used for the elevation
// head, in m/s². The value 9.8 reproduces established reference results.
const DefaultGravity = 9.8

// LaminarFormula selects the laminar friction factor relation.
type LaminarFormula string

const (
	// LaminarFormulaLiteral evaluates f = Re/64, matching legacy reports.
	LaminarFormulaLiteral LaminarFormula = "literal"
	// LaminarFormulaTextbook evaluates the Hagen-Poiseuille f = 64/Re.
	LaminarFormulaTextbook LaminarFormula = "textbook"
)

// Valid reports whether f is a known formula.
func (f LaminarFormula) Valid() bool {
	return f == LaminarFormulaLiteral || f == LaminarFormulaTextbook
}

// CalculationSettings are the tunable constants of a calculation.
//
// @Description Calculation constants
type CalculationSettings struct {
	// Gravity in m/s²
	Gravity        float64        `json:"gravity" bson:"gravity" example:"9.8"`
	LaminarFormula LaminarFormula `json:"laminar_formula" bson:"laminar_formula" example:"literal" enums:"literal,textbook"`
} // @name CalculationSettings

// DefaultSettings returns the settings used when nothing else is configured.
func DefaultSettings() CalculationSettings {
	return CalculationSettings{
		Gravity:        DefaultGravity,
		LaminarFormula: LaminarFormulaLiteral,
	}
}

// Validate checks that gravity is finite and positive and the formula is known.
func (s CalculationSettings) Validate() error {
	if math.IsNaN(s.Gravity) || math.IsInf(s.Gravity, 0) || s.Gravity <= 0 {
		return &ValidationError{Field: "gravity", Message: fmt.Sprintf("must be a finite number greater than 0, got %v", s.Gravity)}
	}
	if !s.LaminarFormula.Valid() {
		return &ValidationError{Field: "laminar_formula", Message: fmt.Sprintf("must be %q or %q", LaminarFormulaLiteral, LaminarFormulaTextbook)}
	}
	return nil
}
