package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogEntry_WithFields(t *testing.T) {
	tests := []struct {
		name   string
		entry  *LogEntry
		fields map[string]any
		want   map[string]any
	}{
		{
			name:   "initializes nil fields",
			entry:  &LogEntry{},
			fields: map[string]any{"flow_regime": "turbulent"},
			want:   map[string]any{"flow_regime": "turbulent"},
		},
		{
			name:   "overwrites existing field",
			entry:  &LogEntry{Fields: map[string]any{"format": "xlsx", "rows": 20}},
			fields: map[string]any{"format": "csv"},
			want:   map[string]any{"format": "csv", "rows": 20},
		},
		{
			name:   "empty merge leaves an empty map",
			entry:  &LogEntry{},
			fields: map[string]any{},
			want:   map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.entry.WithFields(tt.fields)

			assert.Same(t, tt.entry, result)
			assert.Equal(t, tt.want, result.Fields)
		})
	}
}
