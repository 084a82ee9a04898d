package strutil

import "strings"

// Assemble replaces each "{}" in template, left to right, with the next
// unused argument. Surplus arguments are ignored; placeholders left without
// an argument stay as a literal "{}".
//
//	Assemble("a{}b{}c", "X", "Y") = "aXbYc"
//	Assemble("a{}b", "X", "Y")    = "aXb"
//	Assemble("a{}{}b", "X")       = "aX{}b"
//	Assemble("T_{}", "USER")      = "T_USER"
func Assemble(template string, args ...string) string {
	parts := SplitPreserve(template, AssemblePlaceholder)
	if len(parts) <= 1 {
		return template
	}

	var b strings.Builder
	b.Grow(len(template) + 16*len(args))
	next := 0
	for i, part := range parts {
		if i > 0 {
			if next < len(args) {
				b.WriteString(args[next])
				next++
			} else {
				b.WriteString(AssemblePlaceholder)
			}
		}
		b.WriteString(part)
	}
	return b.String()
}
