package strutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IndexOfRune finds the first r in s.
//
//	IndexOfRune("", *)           = -1
//	IndexOfRune("aabaabaa", 'b') = 2
func IndexOfRune(s string, r rune) int {
	return IndexOfRuneFrom(s, r, 0)
}

// IndexOfRuneFrom finds the first r in s at or after from.
// A negative from is treated as zero; from past the end never matches.
//
//	IndexOfRuneFrom("aabaabaa", 'b', 3)  = 5
//	IndexOfRuneFrom("aabaabaa", 'b', 9)  = -1
//	IndexOfRuneFrom("aabaabaa", 'b', -1) = 2
func IndexOfRuneFrom(s string, r rune, from int) int {
	if IsEmpty(s) {
		return IndexNotFound
	}
	if from < 0 {
		from = 0
	}
	if from >= len(s) {
		return IndexNotFound
	}
	i := strings.IndexRune(s[from:], r)
	if i < 0 {
		return IndexNotFound
	}
	return from + i
}

// IndexOf finds the first sub in s. An empty sub always matches.
//
//	IndexOf("", "")           = 0
//	IndexOf("", "a")          = -1
//	IndexOf("aabaabaa", "ab") = 1
//	IndexOf("aabaabaa", "")   = 0
func IndexOf(s, sub string) int {
	return IndexOfFrom(s, sub, 0)
}

// IndexOfFrom finds the first sub in s at or after from.
// A from past the end only matches an empty sub, at len(s).
//
//	IndexOfFrom("aabaabaa", "b", 3)  = 5
//	IndexOfFrom("aabaabaa", "b", 9)  = -1
//	IndexOfFrom("aabaabaa", "b", -1) = 2
//	IndexOfFrom("aabaabaa", "", 2)   = 2
//	IndexOfFrom("abc", "", 9)        = 3
func IndexOfFrom(s, sub string, from int) int {
	if from < 0 {
		from = 0
	}
	if from > len(s) {
		if sub == "" {
			return len(s)
		}
		return IndexNotFound
	}
	i := strings.Index(s[from:], sub)
	if i < 0 {
		return IndexNotFound
	}
	return from + i
}

// IndexOfIgnoreCase is IndexOf with a case-insensitive comparison.
//
//	IndexOfIgnoreCase("aabaabaa", "B")  = 2
//	IndexOfIgnoreCase("aabaabaa", "AB") = 1
func IndexOfIgnoreCase(s, sub string) int {
	return IndexOfIgnoreCaseFrom(s, sub, 0)
}

// IndexOfIgnoreCaseFrom compares sub against each region of s starting at
// from, folding case rune by rune; a region may differ from sub in byte
// length (U+212A KELVIN SIGN matches "k").
//
//	IndexOfIgnoreCaseFrom("aabaabaa", "B", 3)  = 5
//	IndexOfIgnoreCaseFrom("aabaabaa", "B", 9)  = -1
//	IndexOfIgnoreCaseFrom("aabaabaa", "", 2)   = 2
func IndexOfIgnoreCaseFrom(s, sub string, from int) int {
	if from < 0 {
		from = 0
	}
	if sub == "" {
		if from > len(s)+1 {
			return IndexNotFound
		}
		return min(from, len(s))
	}
	for i := from; i < len(s); i++ {
		if utf8.RuneStart(s[i]) && foldedPrefix(s[i:], sub) >= 0 {
			return i
		}
	}
	return IndexNotFound
}

// LastIndexOfRune finds the last r in s.
//
//	LastIndexOfRune("aabaabaa", 'a') = 7
//	LastIndexOfRune("aabaabaa", 'b') = 5
func LastIndexOfRune(s string, r rune) int {
	return LastIndexOfRuneFrom(s, r, len(s))
}

// LastIndexOfRuneFrom searches backwards from from; matches starting after
// from are ignored. A negative from never matches.
//
//	LastIndexOfRuneFrom("aabaabaa", 'b', 8)  = 5
//	LastIndexOfRuneFrom("aabaabaa", 'b', 4)  = 2
//	LastIndexOfRuneFrom("aabaabaa", 'b', 0)  = -1
//	LastIndexOfRuneFrom("aabaabaa", 'b', -1) = -1
//	LastIndexOfRuneFrom("aabaabaa", 'a', 0)  = 0
func LastIndexOfRuneFrom(s string, r rune, from int) int {
	if IsEmpty(s) || from < 0 {
		return IndexNotFound
	}
	if from >= len(s) {
		from = len(s) - 1
	}
	width := utf8.RuneLen(r)
	if width < 1 {
		width = 1
	}
	end := min(from+width, len(s))
	return strings.LastIndex(s[:end], string(r))
}

// LastIndexOf finds the last sub in s. An empty sub matches at len(s).
//
//	LastIndexOf("aabaabaa", "ab") = 4
//	LastIndexOf("aabaabaa", "")   = 8
func LastIndexOf(s, sub string) int {
	return LastIndexOfFrom(s, sub, len(s))
}

// LastIndexOfFrom finds the last sub in s starting at or before from.
//
//	LastIndexOfFrom("aabaabaa", "b", 9)  = 5
//	LastIndexOfFrom("aabaabaa", "b", -1) = -1
//	LastIndexOfFrom("aabaabaa", "b", 1)  = -1
//	LastIndexOfFrom("aabaabaa", "b", 2)  = 2
func LastIndexOfFrom(s, sub string, from int) int {
	if from < 0 {
		return IndexNotFound
	}
	last := len(s) - len(sub)
	if last < 0 {
		return IndexNotFound
	}
	if from > last {
		from = last
	}
	if sub == "" {
		return from
	}
	return strings.LastIndex(s[:from+len(sub)], sub)
}

// LastIndexOfIgnoreCase is LastIndexOf with a case-insensitive comparison.
func LastIndexOfIgnoreCase(s, sub string) int {
	return LastIndexOfIgnoreCaseFrom(s, sub, len(s))
}

// LastIndexOfIgnoreCaseFrom walks candidate regions backwards from from.
//
//	LastIndexOfIgnoreCaseFrom("aabaabaa", "AB", 8) = 4
//	LastIndexOfIgnoreCaseFrom("aabaabaa", "B", -1) = -1
//	LastIndexOfIgnoreCaseFrom("aabaabaa", "B", 0)  = -1
func LastIndexOfIgnoreCaseFrom(s, sub string, from int) int {
	if sub == "" {
		if from < 0 {
			return IndexNotFound
		}
		return min(from, len(s))
	}
	if from >= len(s) {
		from = len(s) - 1
	}
	for i := from; i >= 0; i-- {
		if utf8.RuneStart(s[i]) && foldedPrefix(s[i:], sub) >= 0 {
			return i
		}
	}
	return IndexNotFound
}

// foldedPrefix returns the byte length of the prefix of s that equals sub
// under simple case folding, or -1.
func foldedPrefix(s, sub string) int {
	n := 0
	for _, want := range sub {
		got, w := utf8.DecodeRuneInString(s[n:])
		if w == 0 || !equalFoldRune(got, want) {
			return -1
		}
		n += w
	}
	return n
}

func equalFoldRune(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}

// ContainsRune reports whether r occurs in s.
func ContainsRune(s string, r rune) bool {
	return !IsEmpty(s) && IndexOfRune(s, r) > IndexNotFound
}

// Contains reports whether sub occurs in s; the empty sub is always contained.
func Contains(s, sub string) bool {
	return IndexOf(s, sub) > IndexNotFound
}

// ContainsIgnoreCase is Contains with a case-insensitive comparison.
//
//	ContainsIgnoreCase("abc", "A") = true
//	ContainsIgnoreCase("abc", "Z") = false
func ContainsIgnoreCase(s, sub string) bool {
	return IndexOfIgnoreCase(s, sub) > IndexNotFound
}
