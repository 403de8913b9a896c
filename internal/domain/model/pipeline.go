// Package model defines the core domain entities for the pressure drop service.
package model

import (
	"errors"
	"fmt"
	"math"
)

// Unit conversion divisors from engineering input units to SI.
const (
	SecondsPerHour      = 3600.0 // kg/h -> kg/s
	CentipoisePerPascal = 1000.0 // cP -> Pa·s
	MillimetersPerMeter = 1000.0 // mm -> m
)

// ErrInvalidInput is matched by every validation failure on pipeline data.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError describes a single rejected field.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Is reports ErrInvalidInput as the category of every ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// PipelineInput is a pipeline description in the units an engineer types in.
//
// @Description Pipeline design input in engineering units
type PipelineInput struct {
	// MassFlow in kg/h
	MassFlow float64 `json:"mass_flow" example:"36000"`
	// Viscosity is the dynamic viscosity in cP
	Viscosity float64 `json:"viscosity" example:"1"`
	// InnerDiameter in mm
	InnerDiameter float64 `json:"inner_diameter" example:"100"`
	// AbsoluteRoughness in mm
	AbsoluteRoughness float64 `json:"absolute_roughness" example:"0.05"`
	// MarginFactor multiplies the frictional pressure drop
	MarginFactor float64 `json:"margin_factor" example:"1.15"`
	// Density in kg/m³
	Density float64 `json:"density" example:"1000"`
	// PipeLength in m
	PipeLength float64 `json:"pipe_length" example:"500"`
	// ElevationChange in m, outlet minus inlet
	ElevationChange float64 `json:"elevation_change" example:"10"`
	ElbowAndTee     int     `json:"elbow_and_tee" example:"10"`
	GlobeValve      int     `json:"globe_valve" example:"2"`
	CheckValve      int     `json:"check_valve" example:"1"`
} // @name PipelineInput

// Pipeline is a pipeline description in SI units. Values held here are never
// converted again.
//
// @Description Pipeline record in SI units
type Pipeline struct {
	// MassFlow in kg/s
	MassFlow float64 `json:"mass_flow" example:"10"`
	// Viscosity in Pa·s
	Viscosity float64 `json:"viscosity" example:"0.001"`
	// InnerDiameter in m
	InnerDiameter float64 `json:"inner_diameter" example:"0.1"`
	// AbsoluteRoughness in m
	AbsoluteRoughness float64 `json:"absolute_roughness" example:"0.00005"`
	MarginFactor      float64 `json:"margin_factor" example:"1.15"`
	// Density in kg/m³
	Density float64 `json:"density" example:"1000"`
	// PipeLength in m
	PipeLength float64 `json:"pipe_length" example:"500"`
	// ElevationChange in m
	ElevationChange float64 `json:"elevation_change" example:"10"`
	ElbowAndTee     int     `json:"elbow_and_tee" example:"10"`
	GlobeValve      int     `json:"globe_valve" example:"2"`
	CheckValve      int     `json:"check_valve" example:"1"`
} // @name Pipeline

// NewPipeline validates raw engineering input and converts it to SI.
func NewPipeline(in PipelineInput) (Pipeline, error) {
	if err := in.Validate(); err != nil {
		return Pipeline{}, err
	}

	return Pipeline{
		MassFlow:          in.MassFlow / SecondsPerHour,
		Viscosity:         in.Viscosity / CentipoisePerPascal,
		InnerDiameter:     in.InnerDiameter / MillimetersPerMeter,
		AbsoluteRoughness: in.AbsoluteRoughness / MillimetersPerMeter,
		MarginFactor:      in.MarginFactor,
		Density:           in.Density,
		PipeLength:        in.PipeLength,
		ElevationChange:   in.ElevationChange,
		ElbowAndTee:       in.ElbowAndTee,
		GlobeValve:        in.GlobeValve,
		CheckValve:        in.CheckValve,
	}, nil
}

// Validate checks raw input constraints. Unit scaling preserves sign and
// finiteness, so the rules are the same as for the SI record.
func (in PipelineInput) Validate() error {
	return validateFields(fields{
		massFlow:          in.MassFlow,
		viscosity:         in.Viscosity,
		innerDiameter:     in.InnerDiameter,
		absoluteRoughness: in.AbsoluteRoughness,
		marginFactor:      in.MarginFactor,
		density:           in.Density,
		pipeLength:        in.PipeLength,
		elevationChange:   in.ElevationChange,
		elbowAndTee:       in.ElbowAndTee,
		globeValve:        in.GlobeValve,
		checkValve:        in.CheckValve,
	})
}

// Validate checks an SI record built without NewPipeline.
func (p Pipeline) Validate() error {
	return validateFields(fields{
		massFlow:          p.MassFlow,
		viscosity:         p.Viscosity,
		innerDiameter:     p.InnerDiameter,
		absoluteRoughness: p.AbsoluteRoughness,
		marginFactor:      p.MarginFactor,
		density:           p.Density,
		pipeLength:        p.PipeLength,
		elevationChange:   p.ElevationChange,
		elbowAndTee:       p.ElbowAndTee,
		globeValve:        p.GlobeValve,
		checkValve:        p.CheckValve,
	})
}

// FittingCount returns the total number of fittings on the line.
func (p Pipeline) FittingCount() int {
	return p.ElbowAndTee + p.GlobeValve + p.CheckValve
}

type fields struct {
	massFlow, viscosity, innerDiameter, absoluteRoughness float64
	marginFactor, density, pipeLength, elevationChange    float64
	elbowAndTee, globeValve, checkValve                   int
}

func validateFields(f fields) error {
	positive := []struct {
		name  string
		value float64
	}{
		{"mass_flow", f.massFlow},
		{"viscosity", f.viscosity},
		{"inner_diameter", f.innerDiameter},
		{"margin_factor", f.marginFactor},
		{"density", f.density},
	}
	for _, v := range positive {
		if err := requireFinite(v.name, v.value); err != nil {
			return err
		}
		if v.value <= 0 {
			return &ValidationError{Field: v.name, Message: "must be greater than 0"}
		}
	}

	nonNegative := []struct {
		name  string
		value float64
	}{
		{"absolute_roughness", f.absoluteRoughness},
		{"pipe_length", f.pipeLength},
	}
	for _, v := range nonNegative {
		if err := requireFinite(v.name, v.value); err != nil {
			return err
		}
		if v.value < 0 {
			return &ValidationError{Field: v.name, Message: "must not be negative"}
		}
	}

	if err := requireFinite("elevation_change", f.elevationChange); err != nil {
		return err
	}

	counts := []struct {
		name  string
		value int
	}{
		{"elbow_and_tee", f.elbowAndTee},
		{"globe_valve", f.globeValve},
		{"check_valve", f.checkValve},
	}
	for _, c := range counts {
		if c.value < 0 {
			return &ValidationError{Field: c.name, Message: "must not be negative"}
		}
	}

	return nil
}

func requireFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{Field: name, Message: fmt.Sprintf("must be a finite number, got %v", v)}
	}
	return nil
}
