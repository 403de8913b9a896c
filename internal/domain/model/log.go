package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Levels stored with log entries.
const (
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// LogEntry is one stored record. Request entries carry the HTTP outcome;
// audit entries carry ActionType and a summary of the calculation in Fields.
type LogEntry struct {
	ID         primitive.ObjectID `json:"id"`
	Timestamp  time.Time          `json:"timestamp"`
	Level      string             `json:"level" example:"info"`
	Message    string             `json:"message" example:"Pressure drop calculated"`
	RequestID  string             `json:"request_id,omitempty"`
	Method     string             `json:"method,omitempty" example:"POST"`
	Path       string             `json:"path,omitempty" example:"/api/calculate"`
	StatusCode int                `json:"status_code,omitempty" example:"200"`
	Duration   int64              `json:"duration_ms,omitempty"`
	IP         string             `json:"ip,omitempty"`
	UserAgent  string             `json:"user_agent,omitempty"`
	Error      string             `json:"error,omitempty"`
	ClientID   string             `json:"client_id,omitempty" example:"plant-a"`
	ActionType string             `json:"action_type,omitempty" example:"calculate"`
	Fields     map[string]any     `json:"fields,omitempty"`
} // @name LogEntry

// WithFields merges fields into the entry and returns it.
func (e *LogEntry) WithFields(fields map[string]any) *LogEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]any, len(fields))
	}
	for k, v := range fields {
		e.Fields[k] = v
	}
	return e
}

// LogQueryOptions filters stored log entries. Empty fields match everything.
type LogQueryOptions struct {
	RequestID string
	Level     string
	Method    string
	Path      string
	ClientID  string
	// Action matches the audit action type, e.g. "export_report".
	Action    string
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int
	Skip      int
}
