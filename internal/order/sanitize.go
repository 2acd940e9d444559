package order

import "strings"

var unsafeChars = strings.NewReplacer(
	"'", "", `"`, "", ";", "", "=", "",
	"(", "", ")", "", "<", "", ">", "", "`", "",
)

// Sanitize removes quote, bracket and statement characters from free text before it is
// placed in the message.
func Sanitize(s string) string {
	return unsafeChars.Replace(s)
}
