// Package strutil holds small null-safe string helpers.
//
// None of the functions fail: edge inputs degrade to a sentinel
// (IndexNotFound, false, an empty slice or the unmodified template).
// Go strings cannot be nil, so the "absent value" cases live in the
// *Ptr variants (see nullable.go). Indexes are byte offsets.
package strutil

import (
	"strings"
	"unicode"
)

const (
	Empty = ""
	Space = " "

	// IndexNotFound is returned by the index family when nothing matches.
	IndexNotFound = -1

	// AssemblePlaceholder is the token Assemble substitutes.
	AssemblePlaceholder = "{}"
)

// IsEmpty reports whether s has zero length.
//
//	IsEmpty("")    = true
//	IsEmpty(" ")   = false
//	IsEmpty("bob") = false
func IsEmpty(s string) bool {
	return len(s) == 0
}

func IsNotEmpty(s string) bool {
	return !IsEmpty(s)
}

// IsWhitespace is the whitespace predicate of this package: Unicode space,
// line and paragraph separators except the no-break ones (U+00A0, U+2007,
// U+202F), plus \t \n \v \f \r and the separators U+001C..U+001F.
// Unlike unicode.IsSpace it rejects U+0085 and U+00A0.
func IsWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u001c', '\u001d', '\u001e', '\u001f':
		return true
	case '\u00a0', '\u2007', '\u202f':
		return false
	}
	return unicode.In(r, unicode.Zs, unicode.Zl, unicode.Zp)
}

// IsBlank reports whether s is empty or made only of whitespace.
//
//	IsBlank("")       = true
//	IsBlank(" \t\n")  = true
//	IsBlank(" bob ")  = false
//	IsBlank("\u00a0") = false
func IsBlank(s string) bool {
	for _, r := range s {
		if !IsWhitespace(r) {
			return false
		}
	}
	return true
}

func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// Trim removes leading and trailing control characters (<= U+0020) and
// whitespace, so a blank string always trims to "".
func Trim(s string) string {
	if IsEmpty(s) {
		return s
	}
	return strings.TrimFunc(s, trimmable)
}

func trimmable(r rune) bool {
	return r <= ' ' || IsWhitespace(r)
}

// ContainsWhitespace reports whether any rune of s is whitespace.
func ContainsWhitespace(s string) bool {
	if IsEmpty(s) {
		return false
	}
	return strings.IndexFunc(s, IsWhitespace) >= 0
}
