package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWithWriter(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	tests := []struct {
		name      string
		level     string
		wantLevel zerolog.Level
	}{
		{name: "debug level", level: "debug", wantLevel: zerolog.DebugLevel},
		{name: "upper case level", level: "WARN", wantLevel: zerolog.WarnLevel},
		{name: "empty falls back to info", level: "", wantLevel: zerolog.InfoLevel},
		{name: "unknown falls back to info", level: "verbose", wantLevel: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			InitWithWriter(tt.level, &buf)
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestLogger_WritesJSON(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	InitWithWriter("info", &buf)

	Logger().Info().Str("postal_code", "14090000").Msg("zone resolved")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "zone resolved", entry["message"])
	assert.Equal(t, "14090000", entry["postal_code"])
	assert.Equal(t, "delivery", entry["service"])
	assert.Equal(t, "info", entry["level"])
}

func TestInit_Pretty(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	assert.NotPanics(t, func() {
		Init("info", true)
		Init("error", false)
	})
	assert.Equal(t, zerolog.ErrorLevel, zerolog.GlobalLevel())
}
