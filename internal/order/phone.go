package order

import (
	"regexp"

	"github.com/wsawebmaster/delivery/internal/delivery"
)

// mobilePattern is an optional country code, a two digit area code and a nine digit
// mobile number starting with 9.
var mobilePattern = regexp.MustCompile(`^(?:55)?\d{2}9\d{8}$`)

// ValidPhone reports whether phone, once formatting is stripped, looks like a Brazilian
// mobile number.
func ValidPhone(phone string) bool {
	return mobilePattern.MatchString(delivery.DigitsOnly(phone))
}
