package delivery

import "strings"

// PostalCodeLength is the number of digits in a Brazilian CEP.
const PostalCodeLength = 8

// DigitsOnly drops every rune that is not an ASCII digit.
func DigitsOnly(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizePostalCode strips formatting from raw and reports whether the result is a
// complete postal code.
func NormalizePostalCode(raw string) (string, bool) {
	code := DigitsOnly(raw)
	return code, len(code) == PostalCodeLength
}
