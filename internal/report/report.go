// Package report turns a calculated pipeline into report rows and renders
// them in tabular file formats.
package report

import (
	"math"
	"strconv"

	"github.com/guttosm/pressure-drop-service/internal/domain/model"
)

// Section headings and units used in the report.
const (
	DesignInputHeading = "***Design Input***"
	ReportHeading      = "***Report***"

	unitPieces = "pcs."
)

// ToRows maps an SI pipeline record and its result onto report rows: the
// design input block, a blank separator, then the rounded results.
func ToRows(p model.Pipeline, r model.PipelineResult) []model.ReportRow {
	return []model.ReportRow{
		{Item: DesignInputHeading},
		{Item: "MassFlow", Value: formatExact(p.MassFlow), Unit: "kg/s"},
		{Item: "Density", Value: formatExact(p.Density), Unit: "kg/m³"},
		{Item: "DynamicViscosity", Value: formatExact(p.Viscosity), Unit: "Pa.s"},
		{Item: "InnerDiameter", Value: formatExact(p.InnerDiameter), Unit: "m"},
		{Item: "AbsoluteRoughness", Value: formatExact(p.AbsoluteRoughness), Unit: "m"},
		{Item: "MarginFactor", Value: formatExact(p.MarginFactor)},
		{Item: "PipeLength", Value: formatExact(p.PipeLength), Unit: "m"},
		{Item: "ElevationChange", Value: formatExact(p.ElevationChange), Unit: "m"},
		{Item: "ElbowAndTee", Value: strconv.Itoa(p.ElbowAndTee), Unit: unitPieces},
		{Item: "GlobeValve", Value: strconv.Itoa(p.GlobeValve), Unit: unitPieces},
		{Item: "CheckValve", Value: strconv.Itoa(p.CheckValve), Unit: unitPieces},
		{},
		{Item: ReportHeading},
		{Item: "PressureDrop", Value: formatRounded(r.PressureDrop, 3), Unit: "kPa"},
		{Item: "Velocity", Value: formatRounded(r.Velocity, 1), Unit: "m/s"},
		{Item: "ReynoldsNumber", Value: formatRounded(r.ReynoldsNumber, 0)},
		{Item: "FrictionFactor", Value: formatRounded(r.FrictionFactor, 3)},
		{Item: "EquivalentLength", Value: formatRounded(r.EquivalentLength, 1), Unit: "m"},
		{Item: "TotalLength", Value: formatRounded(r.TotalLength, 1), Unit: "m"},
	}
}

// formatExact prints the shortest decimal that parses back to v.
func formatExact(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatRounded rounds half to even at the given number of decimal places
// and prints without trailing zeros.
func formatRounded(v float64, places int) string {
	scale := math.Pow10(places)
	if math.IsInf(v*scale, 0) {
		return formatExact(v)
	}
	rounded := math.RoundToEven(v*scale) / scale
	if rounded == 0 {
		rounded = 0 // no "-0"
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
