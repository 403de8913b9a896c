package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/xuri/excelize/v2"

	"github.com/guttosm/pressure-drop-service/internal/domain/model"
)

// ErrUnsupportedFormat is returned by NewExporter for an unknown format name.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Supported export formats.
const (
	FormatXLSX    = "xlsx"
	FormatCSV     = "csv"
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"

	// DefaultFormat is used when no format is requested.
	DefaultFormat = FormatXLSX
)

// FileBaseName is the download name of an exported report, without extension.
const FileBaseName = "PressureDropReport"

var header = []string{"Item", "Value", "Unit"}

// Exporter renders report rows in one file format. Output is rendered in
// memory first, so a failed export writes nothing to w.
type Exporter interface {
	Export(w io.Writer, rows []model.ReportRow) error
	ContentType() string
	Extension() string
}

// NewExporter returns the exporter for format. Matching is case-insensitive
// and an empty format selects DefaultFormat.
func NewExporter(format string) (Exporter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatXLSX:
		return XLSXExporter{SheetName: "Sheet1"}, nil
	case FormatCSV:
		return CSVExporter{}, nil
	case FormatJSON:
		return JSONExporter{}, nil
	case FormatMsgpack:
		return MsgpackExporter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Formats lists the supported format names.
func Formats() []string {
	return []string{FormatXLSX, FormatCSV, FormatJSON, FormatMsgpack}
}

// FileName returns the download file name for e.
func FileName(e Exporter) string {
	return FileBaseName + "." + e.Extension()
}

func writeBuffered(w io.Writer, render func(buf *bytes.Buffer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// XLSXExporter writes a single-sheet workbook with a bold, centered header
// row and columns sized to their content.
type XLSXExporter struct {
	SheetName string
}

// ContentType returns the OOXML spreadsheet MIME type.
func (XLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Extension returns "xlsx".
func (XLSXExporter) Extension() string { return FormatXLSX }

// Export renders rows into a workbook and writes it to w.
func (e XLSXExporter) Export(w io.Writer, rows []model.ReportRow) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := e.SheetName
	if sheet == "" {
		sheet = "Sheet1"
	}
	if sheet != f.GetSheetName(0) {
		if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
			return fmt.Errorf("name sheet: %w", err)
		}
	}

	widths := make([]int, len(header))
	setRow := func(rowNum int, values []string) error {
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		cells := make([]interface{}, len(values))
		for i, v := range values {
			cells[i] = v
			widths[i] = max(widths[i], utf8.RuneCountInString(v))
		}
		return f.SetSheetRow(sheet, cell, &cells)
	}

	if err := setRow(1, header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range rows {
		if err := setRow(i+2, []string{row.Item, row.Value, row.Unit}); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	if err := f.SetRowStyle(sheet, 1, 1, style); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, float64(width)+2); err != nil {
			return fmt.Errorf("size column %s: %w", col, err)
		}
	}

	return writeBuffered(w, func(buf *bytes.Buffer) error {
		_, err := f.WriteTo(buf)
		return err
	})
}

// CSVExporter writes comma-separated rows with an Item,Value,Unit header.
type CSVExporter struct{}

// ContentType returns the CSV MIME type.
func (CSVExporter) ContentType() string { return "text/csv; charset=utf-8" }

// Extension returns "csv".
func (CSVExporter) Extension() string { return FormatCSV }

// Export writes the header and rows as CSV to w.
func (CSVExporter) Export(w io.Writer, rows []model.ReportRow) error {
	return writeBuffered(w, func(buf *bytes.Buffer) error {
		cw := csv.NewWriter(buf)
		if err := cw.Write(header); err != nil {
			return err
		}
		for _, row := range rows {
			if err := cw.Write([]string{row.Item, row.Value, row.Unit}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	})
}

// JSONExporter writes the rows as a JSON array.
type JSONExporter struct{}

// ContentType returns the JSON MIME type.
func (JSONExporter) ContentType() string { return "application/json; charset=utf-8" }

// Extension returns "json".
func (JSONExporter) Extension() string { return FormatJSON }

// Export writes rows as an indented JSON array to w.
func (JSONExporter) Export(w io.Writer, rows []model.ReportRow) error {
	return writeBuffered(w, func(buf *bytes.Buffer) error {
		enc := json.NewEncoder(buf)
		enc.SetIndent("", "  ")
		return enc.Encode(nonNil(rows))
	})
}

// MsgpackExporter writes the rows as a MessagePack array of maps.
type MsgpackExporter struct{}

// ContentType returns the MessagePack MIME type.
func (MsgpackExporter) ContentType() string { return "application/x-msgpack" }

// Extension returns "msgpack".
func (MsgpackExporter) Extension() string { return FormatMsgpack }

// Export writes rows as a MessagePack array to w.
func (MsgpackExporter) Export(w io.Writer, rows []model.ReportRow) error {
	return writeBuffered(w, func(buf *bytes.Buffer) error {
		return msgpack.NewEncoder(buf).Encode(nonNil(rows))
	})
}

func nonNil(rows []model.ReportRow) []model.ReportRow {
	if rows == nil {
		return []model.ReportRow{}
	}
	return rows
}
