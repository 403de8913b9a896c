package service

import (
	"math"

	"github.com/guttosm/pressure-drop-service/internal/domain/model"
)

const (
	// TransitionReynoldsNumber is the lowest Reynolds number treated as turbulent.
	TransitionReynoldsNumber = 2300.0
	// CircularAreaFactor approximates π/4 in the flow area d²·π/4.
	CircularAreaFactor = 0.785

	// Equivalent lengths per fitting, in pipe diameters.
	ElbowAndTeeLengthRatio = 30.0
	GlobeValveLengthRatio  = 340.0
	CheckValveLengthRatio  = 100.0

	pascalsPerKilopascal = 1000.0
)

// Velocity returns the mean flow velocity in m/s.
func Velocity(massFlow, density, innerDiameter float64) float64 {
	return massFlow / density / (CircularAreaFactor * innerDiameter * innerDiameter)
}

// ReynoldsNumber returns ρ·d·v/μ.
func ReynoldsNumber(density, innerDiameter, velocity, viscosity float64) float64 {
	return density * innerDiameter * velocity / viscosity
}

// Regime classifies a Reynolds number. Re == 2300 is turbulent.
func Regime(reynolds float64) model.FlowRegime {
	if reynolds < TransitionReynoldsNumber {
		return model.FlowRegimeLaminar
	}
	return model.FlowRegimeTurbulent
}

// FrictionFactor returns the Darcy friction factor for the given regime inputs.
// Below the transition the laminar relation selected by formula applies;
// otherwise the Colebrook approximation is used.
func FrictionFactor(absoluteRoughness, innerDiameter, reynolds float64, formula model.LaminarFormula) float64 {
	if Regime(reynolds) == model.FlowRegimeLaminar {
		if formula == model.LaminarFormulaTextbook {
			return 64 / reynolds
		}
		// Re/64 matches legacy reports.
		return reynolds / 64
	}
	return ColebrookFrictionFactor(absoluteRoughness, innerDiameter, reynolds)
}

// ColebrookFrictionFactor solves the Colebrook-White equation with the
// closed-form rational approximation of Clamond (arXiv:0810.5564). One
// correction pass always runs; a second runs when x1+x2 < 5.7.
func ColebrookFrictionFactor(absoluteRoughness, innerDiameter, reynolds float64) float64 {
	const third = 0.333333333333333333

	k := absoluteRoughness / innerDiameter
	x1 := k * reynolds * 0.123968186335417556
	x2 := math.Log(reynolds) - 0.779397488455682028
	f := x2 - 0.2

	e := (math.Log(x1+f) - 0.2) / (1 + x1 + f)
	f -= (1 + x1 + f + 0.5*e) * e * (x1 + f) / (1 + x1 + f + e*(1+e*third))
	if x1+x2 < 5.7 {
		e = (math.Log(x1+f) + f - x2) / (1 + x1 + f)
		f -= (1 + x1 + f + 0.5*e) * e * (x1 + f) / (1 + x1 + f + e*(1+e*third))
	}

	f = 1.151292546497022842 / f
	return f * f
}

// FittingEquivalentLength returns d·(30·elbows + 340·globe + 100·check) in m.
func FittingEquivalentLength(innerDiameter float64, elbowAndTee, globeValve, checkValve int) float64 {
	return innerDiameter * (ElbowAndTeeLengthRatio*float64(elbowAndTee) +
		GlobeValveLengthRatio*float64(globeValve) +
		CheckValveLengthRatio*float64(checkValve))
}

// FrictionalPressureDrop returns the Darcy-Weisbach loss f·(L/d)·(ρv²/2) in Pa.
func FrictionalPressureDrop(frictionFactor, totalLength, innerDiameter, velocity, density float64) float64 {
	return frictionFactor * (totalLength / innerDiameter) * (velocity * velocity * density / 2)
}

// ElevationPressureDrop returns the static head ρ·g·Δz in Pa.
func ElevationPressureDrop(density, gravity, elevationChange float64) float64 {
	return density * gravity * elevationChange
}

// ToKilopascals converts Pa to kPa, rounding up to a whole kPa.
func ToKilopascals(pascals float64) float64 {
	return math.Ceil(pascals / pascalsPerKilopascal)
}

// Calculate runs the full pipeline on an SI record. It does not validate p;
// callers get non-finite fields back for degenerate input.
func Calculate(p model.Pipeline, settings model.CalculationSettings) model.PipelineResult {
	var r model.PipelineResult

	r.Velocity = Velocity(p.MassFlow, p.Density, p.InnerDiameter)
	r.ReynoldsNumber = ReynoldsNumber(p.Density, p.InnerDiameter, r.Velocity, p.Viscosity)
	r.FlowRegime = Regime(r.ReynoldsNumber)
	r.FrictionFactor = FrictionFactor(p.AbsoluteRoughness, p.InnerDiameter, r.ReynoldsNumber, settings.LaminarFormula)
	r.EquivalentLength = FittingEquivalentLength(p.InnerDiameter, p.ElbowAndTee, p.GlobeValve, p.CheckValve)
	r.TotalLength = p.PipeLength + r.EquivalentLength

	r.FrictionalPressureDrop = FrictionalPressureDrop(r.FrictionFactor, r.TotalLength, p.InnerDiameter, r.Velocity, p.Density) * p.MarginFactor
	r.ElevationPressureDrop = ElevationPressureDrop(p.Density, settings.Gravity, p.ElevationChange)
	r.PressureDrop = ToKilopascals(r.FrictionalPressureDrop + r.ElevationPressureDrop)

	return r
}
