package strutil

import "unicode/utf8"

// SplitWhitespace splits s on runs of whitespace.
//
//	SplitWhitespace("")         = []
//	SplitWhitespace("abc  def") = ["abc", "def"]
//	SplitWhitespace(" abc ")    = ["abc"]
func SplitWhitespace(s string) []string {
	return Split(s, Empty, -1, false)
}

// SplitBy splits s on sep; adjacent separators count as one.
//
//	SplitBy("ab:cd:ef", ":") = ["ab", "cd", "ef"]
func SplitBy(s, sep string) []string {
	return Split(s, sep, -1, false)
}

// SplitMax splits s on sep into at most max tokens.
//
//	SplitMax("ab:cd:ef", ":", 0) = ["ab", "cd", "ef"]
//	SplitMax("ab:cd:ef", ":", 2) = ["ab", "cd:ef"]
func SplitMax(s, sep string, max int) []string {
	return Split(s, sep, max, false)
}

// SplitPreserve splits s on sep keeping the empty tokens between
// adjacent separators.
//
//	SplitPreserve("a::b", ":") = ["a", "", "b"]
func SplitPreserve(s, sep string) []string {
	return Split(s, sep, -1, true)
}

// Split tokenizes s.
//
// An empty sep splits on whitespace. A single-rune sep takes the one-pass
// path; a longer sep is matched as a whole substring. A max > 0 caps the
// number of tokens and the last token keeps the unsplit remainder.
// With preserveAllTokens adjacent separators yield empty tokens.
// The empty string yields an empty, non-nil slice.
func Split(s, sep string, max int, preserveAllTokens bool) []string {
	if len(s) == 0 {
		return []string{}
	}
	if utf8.RuneCountInString(sep) <= 1 {
		return splitSingle(s, sep, max, preserveAllTokens)
	}
	return splitWhole(s, sep, max, preserveAllTokens)
}

func splitSingle(s, sep string, max int, preserveAllTokens bool) []string {
	whitespace := IsEmpty(sep)
	sepRune, _ := utf8.DecodeRuneInString(sep)

	list := make([]string, 0, 8)
	count := 1
	start, i := 0, 0
	match, lastMatch := false, false
	for i < len(s) {
		r, w := utf8.DecodeRuneInString(s[i:])
		if (whitespace && IsWhitespace(r)) || (!whitespace && r == sepRune) {
			if match || preserveAllTokens {
				if count == max {
					return append(list, s[start:])
				}
				count++
				list = append(list, s[start:i])
				lastMatch = true
				match = false
			}
			i += w
			start = i
			continue
		}
		lastMatch = false
		match = true
		i += w
	}
	if match || (preserveAllTokens && lastMatch) {
		list = append(list, s[start:i])
	}
	return list
}

func splitWhole(s, sep string, max int, preserveAllTokens bool) []string {
	list := make([]string, 0, 8)
	count := 0
	beg := 0
	for {
		end := IndexOfFrom(s, sep, beg)
		if end < 0 {
			// a trailing separator still yields a final empty token
			return append(list, s[beg:])
		}
		if end > beg {
			count++
			if count == max {
				return append(list, s[beg:])
			}
			list = append(list, s[beg:end])
		} else if preserveAllTokens {
			count++
			if count == max {
				return append(list, s[beg:])
			}
			list = append(list, Empty)
		}
		beg = end + len(sep)
	}
}
