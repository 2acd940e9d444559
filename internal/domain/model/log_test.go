package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogEntry_WithField(t *testing.T) {
	tests := []struct {
		name   string
		entry  *LogEntry
		key    string
		value  interface{}
		verify func(*testing.T, *LogEntry)
	}{
		{
			name:  "nil fields are allocated",
			entry: &LogEntry{ActionType: ActionOrderSubmitted},
			key:   "items",
			value: 3,
			verify: func(t *testing.T, e *LogEntry) {
				assert.Equal(t, 3, e.Fields["items"])
			},
		},
		{
			name: "existing fields are kept",
			entry: &LogEntry{
				Fields: map[string]interface{}{"neighborhood": "Jardim Paiva"},
			},
			key:   "fee",
			value: "10.00",
			verify: func(t *testing.T, e *LogEntry) {
				assert.Equal(t, "Jardim Paiva", e.Fields["neighborhood"])
				assert.Equal(t, "10.00", e.Fields["fee"])
			},
		},
		{
			name: "overwrite existing field",
			entry: &LogEntry{
				Fields: map[string]interface{}{"total": "40.00"},
			},
			key:   "total",
			value: "45.00",
			verify: func(t *testing.T, e *LogEntry) {
				assert.Equal(t, "45.00", e.Fields["total"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.entry.WithField(tt.key, tt.value)
			assert.Same(t, tt.entry, result)
			tt.verify(t, result)
		})
	}
}

func TestLogEntry_WithFields(t *testing.T) {
	entry := &LogEntry{SessionID: "sid-1"}

	entry.WithFields(map[string]interface{}{
		"postal_code": "14090000",
		"result":      "resolved",
	}).WithFields(map[string]interface{}{
		"result": "undeliverable",
	})

	assert.Equal(t, map[string]interface{}{
		"postal_code": "14090000",
		"result":      "undeliverable",
	}, entry.Fields)

	empty := &LogEntry{}
	empty.WithFields(nil)
	assert.Empty(t, empty.Fields)
}
