package model

// ReportRow is one line of a tabular report.
//
// @Description Report line
type ReportRow struct {
	Item  string `json:"item" msgpack:"item" example:"PressureDrop"`
	Value string `json:"value" msgpack:"value" example:"210"`
	Unit  string `json:"unit" msgpack:"unit" example:"kPa"`
} // @name ReportRow
