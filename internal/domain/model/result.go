package model

// FlowRegime names the branch used for the friction factor.
type FlowRegime string

const (
	FlowRegimeLaminar   FlowRegime = "laminar"
	FlowRegimeTurbulent FlowRegime = "turbulent"
)

// PipelineResult holds every field derived from a Pipeline by one calculation.
//
// @Description Pressure drop calculation result
type PipelineResult struct {
	// Velocity in m/s
	Velocity       float64    `json:"velocity" bson:"velocity" example:"1.2739"`
	ReynoldsNumber float64    `json:"reynolds_number" bson:"reynolds_number" example:"127388.5"`
	FlowRegime     FlowRegime `json:"flow_regime" bson:"flow_regime" example:"turbulent"`
	// FrictionFactor is the Darcy friction factor
	FrictionFactor float64 `json:"friction_factor" bson:"friction_factor" example:"0.0197"`
	// EquivalentLength of all fittings in m
	EquivalentLength float64 `json:"equivalent_length" bson:"equivalent_length" example:"108"`
	// TotalLength is pipe length plus equivalent length in m
	TotalLength float64 `json:"total_length" bson:"total_length" example:"608"`
	// FrictionalPressureDrop in Pa, margin applied, elevation excluded
	FrictionalPressureDrop float64 `json:"frictional_pressure_drop" bson:"frictional_pressure_drop" example:"111913.4"`
	// ElevationPressureDrop is the static head in Pa
	ElevationPressureDrop float64 `json:"elevation_pressure_drop" bson:"elevation_pressure_drop" example:"98000"`
	// PressureDrop in kPa, rounded up to a whole kPa
	PressureDrop float64 `json:"pressure_drop" bson:"pressure_drop" example:"210"`
} // @name PipelineResult
