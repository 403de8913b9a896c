// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"github.com/guttosm/pressure-drop-service/internal/domain/model"
)

// CalculateRequest represents the JSON request body for the calculate and
// report endpoints. Values are in the units an engineer types in; the
// service converts them to SI.
//
// @Description Pipeline design input in engineering units
// @Example {"mass_flow": 36000, "viscosity": 1, "inner_diameter": 100, "absolute_roughness": 0.05, "margin_factor": 1.15, "density": 1000, "pipe_length": 500, "elevation_change": 10, "elbow_and_tee": 10, "globe_valve": 2, "check_valve": 1}
type CalculateRequest struct {
	// MassFlow in kg/h.
	MassFlow float64 `json:"mass_flow" binding:"required" example:"36000"`
	// Viscosity is the dynamic viscosity in cP.
	Viscosity float64 `json:"viscosity" binding:"required" example:"1"`
	// InnerDiameter in mm.
	InnerDiameter float64 `json:"inner_diameter" binding:"required" example:"100"`
	// AbsoluteRoughness in mm. Zero is a hydraulically smooth pipe.
	AbsoluteRoughness float64 `json:"absolute_roughness" example:"0.05" minimum:"0"`
	// MarginFactor multiplies the frictional pressure drop.
	MarginFactor float64 `json:"margin_factor" binding:"required" example:"1.15"`
	// Density in kg/m³.
	Density float64 `json:"density" binding:"required" example:"1000"`
	// PipeLength in m.
	PipeLength float64 `json:"pipe_length" example:"500" minimum:"0"`
	// ElevationChange in m, outlet minus inlet. Negative values are a descent.
	ElevationChange float64 `json:"elevation_change" example:"10"`
	ElbowAndTee     int     `json:"elbow_and_tee" example:"10" minimum:"0"`
	GlobeValve      int     `json:"globe_valve" example:"2" minimum:"0"`
	CheckValve      int     `json:"check_valve" example:"1" minimum:"0"`
} // @name CalculateRequest

// ToInput maps the request onto the domain input record.
func (r *CalculateRequest) ToInput() model.PipelineInput {
	return model.PipelineInput{
		MassFlow:          r.MassFlow,
		Viscosity:         r.Viscosity,
		InnerDiameter:     r.InnerDiameter,
		AbsoluteRoughness: r.AbsoluteRoughness,
		MarginFactor:      r.MarginFactor,
		Density:           r.Density,
		PipeLength:        r.PipeLength,
		ElevationChange:   r.ElevationChange,
		ElbowAndTee:       r.ElbowAndTee,
		GlobeValve:        r.GlobeValve,
		CheckValve:        r.CheckValve,
	}
}

// Validate performs the domain validation on the request.
func (r *CalculateRequest) Validate() error {
	return r.ToInput().Validate()
}

// UpdateSettingsRequest represents the JSON request body for storing a new
// version of the calculation settings.
//
// @Description Request to store new calculation settings
// @Example {"gravity": 9.81, "laminar_formula": "textbook"}
type UpdateSettingsRequest struct {
	// Gravity in m/s².
	Gravity float64 `json:"gravity" binding:"required" example:"9.81"`
	// LaminarFormula is "literal" (Re/64) or "textbook" (64/Re).
	LaminarFormula string `json:"laminar_formula" binding:"required" example:"textbook" enums:"literal,textbook"`
} // @name UpdateSettingsRequest

// ToSettings maps the request onto the domain settings.
func (r *UpdateSettingsRequest) ToSettings() model.CalculationSettings {
	return model.CalculationSettings{
		Gravity:        r.Gravity,
		LaminarFormula: model.LaminarFormula(r.LaminarFormula),
	}
}

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
