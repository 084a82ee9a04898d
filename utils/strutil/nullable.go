package strutil

// The *Ptr variants accept possibly-absent strings (nil) and return the
// sentinel for the absent case, delegating to the string functions otherwise.

// Ptr returns a pointer to a copy of s.
func Ptr(s string) *string {
	return &s
}

func IsEmptyPtr(s *string) bool {
	return s == nil || IsEmpty(*s)
}

func IsBlankPtr(s *string) bool {
	return s == nil || IsBlank(*s)
}

// IndexOfPtr returns IndexNotFound when either argument is nil.
//
//	IndexOfPtr(nil, *) = -1
//	IndexOfPtr(*, nil) = -1
func IndexOfPtr(s, sub *string) int {
	if s == nil || sub == nil {
		return IndexNotFound
	}
	return IndexOf(*s, *sub)
}

func LastIndexOfPtr(s, sub *string) int {
	if s == nil || sub == nil {
		return IndexNotFound
	}
	return LastIndexOf(*s, *sub)
}

func ContainsPtr(s, sub *string) bool {
	if s == nil || sub == nil {
		return false
	}
	return Contains(*s, *sub)
}

func ContainsIgnoreCasePtr(s, sub *string) bool {
	if s == nil || sub == nil {
		return false
	}
	return ContainsIgnoreCase(*s, *sub)
}

// SplitPtr returns nil for a nil input and Split's result otherwise.
//
//	SplitPtr(nil, *, *, *) = nil
//	SplitPtr(&"", *, *, *) = []
func SplitPtr(s *string, sep string, max int, preserveAllTokens bool) []string {
	if s == nil {
		return nil
	}
	return Split(*s, sep, max, preserveAllTokens)
}

// AssemblePtr returns nil for a nil template.
func AssemblePtr(template *string, args ...string) *string {
	if template == nil {
		return nil
	}
	return Ptr(Assemble(*template, args...))
}
