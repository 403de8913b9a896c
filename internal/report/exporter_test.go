//go:build !integration

package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/xuri/excelize/v2"

	"github.com/guttosm/pressure-drop-service/internal/domain/model"
)

var sampleRows = []model.ReportRow{
	{Item: DesignInputHeading},
	{Item: "Density", Value: "1000", Unit: "kg/m³"},
	{},
	{Item: ReportHeading},
	{Item: "PressureDrop", Value: "210", Unit: "kPa"},
}

type failingWriter struct{ writes int }

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	return 0, errors.New("disk full")
}

func TestNewExporter(t *testing.T) {
	tests := []struct {
		format    string
		wantExt   string
		wantErr   bool
		wantCType string
	}{
		{format: "", wantExt: "xlsx", wantCType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
		{format: "xlsx", wantExt: "xlsx", wantCType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
		{format: "XLSX", wantExt: "xlsx", wantCType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
		{format: "csv", wantExt: "csv", wantCType: "text/csv; charset=utf-8"},
		{format: "json", wantExt: "json", wantCType: "application/json; charset=utf-8"},
		{format: " msgpack ", wantExt: "msgpack", wantCType: "application/x-msgpack"},
		{format: "pdf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("format "+tt.format, func(t *testing.T) {
			e, err := NewExporter(tt.format)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				assert.Nil(t, e)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantExt, e.Extension())
			assert.Equal(t, tt.wantCType, e.ContentType())
			assert.Equal(t, "PressureDropReport."+tt.wantExt, FileName(e))
		})
	}
}

func TestFormats(t *testing.T) {
	for _, f := range Formats() {
		_, err := NewExporter(f)
		assert.NoError(t, err, f)
	}
}

func TestXLSXExporter_Export(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, XLSXExporter{SheetName: "Sheet1"}.Export(&buf, sampleRows))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 6)
	assert.Equal(t, []string{"Item", "Value", "Unit"}, rows[0])
	assert.Equal(t, []string{"Density", "1000", "kg/m³"}, rows[2])
	assert.Equal(t, []string{"PressureDrop", "210", "kPa"}, rows[5])

	styleID, err := f.GetCellStyle("Sheet1", "A1")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)
	require.NotNil(t, style.Alignment)
	assert.Equal(t, "center", style.Alignment.Horizontal)

	width, err := f.GetColWidth("Sheet1", "A")
	require.NoError(t, err)
	assert.Equal(t, float64(len(DesignInputHeading)+2), width)
}

func TestXLSXExporter_CustomSheetName(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, XLSXExporter{SheetName: "Report"}.Export(&buf, sampleRows))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Report"}, f.GetSheetList())
}

func TestXLSXExporter_FailureWritesNothing(t *testing.T) {
	var buf bytes.Buffer

	err := XLSXExporter{SheetName: "bad[name]"}.Export(&buf, sampleRows)

	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestCSVExporter_Export(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSVExporter{}.Export(&buf, sampleRows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Item", "Value", "Unit"},
		{"***Design Input***", "", ""},
		{"Density", "1000", "kg/m³"},
		{"", "", ""},
		{"***Report***", "", ""},
		{"PressureDrop", "210", "kPa"},
	}, records)
}

func TestJSONExporter_Export(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSONExporter{}.Export(&buf, sampleRows))

	var got []model.ReportRow
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleRows, got)
}

func TestJSONExporter_EmptyRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSONExporter{}.Export(&buf, nil))

	assert.JSONEq(t, "[]", buf.String())
}

func TestMsgpackExporter_Export(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MsgpackExporter{}.Export(&buf, sampleRows))

	var got []model.ReportRow
	require.NoError(t, msgpack.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleRows, got)
}

func TestExporters_WriterError(t *testing.T) {
	for _, format := range Formats() {
		t.Run(format, func(t *testing.T) {
			e, err := NewExporter(format)
			require.NoError(t, err)
			w := &failingWriter{}

			err = e.Export(w, sampleRows)

			assert.Error(t, err)
			assert.Equal(t, 1, w.writes)
		})
	}
}
