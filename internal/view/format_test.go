package view

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.NewFromInt(24), "R$ 24,00"},
		{decimal.Zero, "R$ 0,00"},
		{decimal.RequireFromString("7.5"), "R$ 7,50"},
		{decimal.RequireFromString("1234.567"), "R$ 1234,57"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBRL(tt.in))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "45,00", FormatAmount(decimal.NewFromInt(45)))
}

func TestItemCountLabel(t *testing.T) {
	assert.Equal(t, "0 itens", ItemCountLabel(0))
	assert.Equal(t, "1 item", ItemCountLabel(1))
	assert.Equal(t, "12 itens", ItemCountLabel(12))
}
