package core

import (
	"unicode"
	"unicode/utf8"

	"github.com/Reactman/wakanda/utils/strutil"
)

// NormalizeName trims a display name and upper-cases its first letter.
// Blank input normalizes to "".
func NormalizeName(s string) string {
	s = strutil.Trim(s)
	if strutil.IsEmpty(s) {
		return s
	}
	r, w := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[w:]
}
