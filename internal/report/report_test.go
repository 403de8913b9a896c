//go:build !integration

package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/pressure-drop-service/internal/domain/model"
)

func waterLine(t *testing.T) model.Pipeline {
	t.Helper()
	p, err := model.NewPipeline(model.PipelineInput{
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
	})
	require.NoError(t, err)
	return p
}

func waterLineResult() model.PipelineResult {
	return model.PipelineResult{
		Velocity:         1.2738853503184713,
		ReynoldsNumber:   127388.53503184712,
		FlowRegime:       model.FlowRegimeTurbulent,
		FrictionFactor:   0.019726497710085354,
		EquivalentLength: 108,
		TotalLength:      608,
		PressureDrop:     210,
	}
}

func TestToRows(t *testing.T) {
	rows := ToRows(waterLine(t), waterLineResult())

	want := []model.ReportRow{
		{Item: "***Design Input***"},
		{Item: "MassFlow", Value: "10", Unit: "kg/s"},
		{Item: "Density", Value: "1000", Unit: "kg/m³"},
		{Item: "DynamicViscosity", Value: "0.001", Unit: "Pa.s"},
		{Item: "InnerDiameter", Value: "0.1", Unit: "m"},
		{Item: "AbsoluteRoughness", Value: "0.00005", Unit: "m"},
		{Item: "MarginFactor", Value: "1.15"},
		{Item: "PipeLength", Value: "500", Unit: "m"},
		{Item: "ElevationChange", Value: "10", Unit: "m"},
		{Item: "ElbowAndTee", Value: "10", Unit: "pcs."},
		{Item: "GlobeValve", Value: "2", Unit: "pcs."},
		{Item: "CheckValve", Value: "1", Unit: "pcs."},
		{},
		{Item: "***Report***"},
		{Item: "PressureDrop", Value: "210", Unit: "kPa"},
		{Item: "Velocity", Value: "1.3", Unit: "m/s"},
		{Item: "ReynoldsNumber", Value: "127389"},
		{Item: "FrictionFactor", Value: "0.02"},
		{Item: "EquivalentLength", Value: "108", Unit: "m"},
		{Item: "TotalLength", Value: "608", Unit: "m"},
	}
	assert.Equal(t, want, rows)
}

func TestToRows_DescendingLine(t *testing.T) {
	p := waterLine(t)
	p.ElevationChange = -10
	r := waterLineResult()
	r.PressureDrop = 14

	rows := ToRows(p, r)

	assert.Equal(t, model.ReportRow{Item: "ElevationChange", Value: "-10", Unit: "m"}, rows[8])
	assert.Equal(t, model.ReportRow{Item: "PressureDrop", Value: "14", Unit: "kPa"}, rows[14])
}

func TestFormatRounded(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		places int
		want   string
	}{
		{"half rounds to even below", 2.5, 0, "2"},
		{"half rounds to even above", 3.5, 0, "4"},
		{"half at two places", 0.125, 2, "0.12"},
		{"no trailing zeros", 0.5, 3, "0.5"},
		{"small negative becomes zero", -0.04, 1, "0"},
		{"laminar literal factor", 15.625, 3, "15.625"},
		{"reynolds number", 12738.853503184711, 0, "12739"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatRounded(tt.value, tt.places))
		})
	}
}

func TestFormatExact(t *testing.T) {
	assert.Equal(t, "0.0001", formatExact(0.1/1000))
	assert.Equal(t, "2.7777777777777777", formatExact(10000.0/3600))
	assert.Equal(t, "0", formatExact(0))
}
