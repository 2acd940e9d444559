package delivery

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePostalCode(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantCode string
		wantOK   bool
	}{
		{"plain digits", "14090000", "14090000", true},
		{"formatted", "14090-000", "14090000", true},
		{"spaces and dots", " 14.090-000 ", "14090000", true},
		{"too short", "1409000", "1409000", false},
		{"too long", "140900001", "140900001", false},
		{"empty", "", "", false},
		{"letters only", "abc-def", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := NormalizePostalCode(tt.raw)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "11982470496", DigitsOnly("(11) 98247-0496"))
	assert.Equal(t, "", DigitsOnly("sem número"))
}

func TestDefaultZones(t *testing.T) {
	zones := DefaultZones()

	assert.Equal(t, 3, zones.Len())
	assert.Equal(t, []string{"Jardim Antártica", "Jardim Paiva", "Vila Tibério"}, zones.Neighborhoods())

	fee, ok := zones.Fee("Jardim Paiva")
	require.True(t, ok)
	assert.True(t, fee.Equal(decimal.NewFromInt(10)))

	fee, ok = zones.Fee("  Vila Tibério ")
	require.True(t, ok, "surrounding whitespace is ignored")
	assert.True(t, fee.Equal(decimal.NewFromInt(5)))

	_, ok = zones.Fee("jardim paiva")
	assert.False(t, ok, "matching is exact")
}

func TestParseZones(t *testing.T) {
	t.Run("empty uses defaults", func(t *testing.T) {
		zones, err := ParseZones("  ")
		require.NoError(t, err)
		assert.Equal(t, DefaultZones().Neighborhoods(), zones.Neighborhoods())
	})

	t.Run("custom list", func(t *testing.T) {
		zones, err := ParseZones("Centro:7.50, Campos Elíseos:0 ,")
		require.NoError(t, err)
		assert.Equal(t, 2, zones.Len())

		fee, ok := zones.Fee("Centro")
		require.True(t, ok)
		assert.Equal(t, "7.5", fee.String())

		fee, ok = zones.Fee("Campos Elíseos")
		require.True(t, ok)
		assert.True(t, fee.IsZero())
	})

	invalid := map[string]string{
		"missing fee":    "Centro",
		"missing name":   ":5",
		"bad fee":        "Centro:cinco",
		"negative fee":   "Centro:-1",
		"duplicate":      "Centro:1,Centro:2",
		"only separator": ",,",
	}
	for name, list := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := ParseZones(list)
			assert.ErrorIs(t, err, ErrInvalidZones)
		})
	}
}

func TestNewZones_RejectsEmptyName(t *testing.T) {
	_, err := NewZones(map[string]decimal.Decimal{" ": decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, ErrInvalidZones)
}
