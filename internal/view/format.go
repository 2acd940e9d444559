package view

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders d with two decimals and a comma separator: 24 -> "24,00".
func FormatAmount(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}

// FormatBRL prefixes FormatAmount with the currency symbol.
func FormatBRL(d decimal.Decimal) string {
	return "R$ " + FormatAmount(d)
}

// ItemCountLabel renders the badge text: "1 item", "3 itens".
func ItemCountLabel(n int) string {
	if n == 1 {
		return "1 item"
	}
	return strconv.Itoa(n) + " itens"
}
