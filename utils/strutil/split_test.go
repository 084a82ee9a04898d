package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit_Table(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		sep      string
		max      int
		preserve bool
		want     []string
	}{
		{"empty", "", ":", -1, false, []string{}},
		{"whitespace", "abc def", "", -1, false, []string{"abc", "def"}},
		{"whitespace-runs", "ab   cd ef", "", 0, false, []string{"ab", "cd", "ef"}},
		{"whitespace-trim", " abc ", "", -1, false, []string{"abc"}},
		{"space-sep", "abc  def", " ", -1, false, []string{"abc", "def"}},
		{"colon", "ab:cd:ef", ":", 0, false, []string{"ab", "cd", "ef"}},
		{"colon-max-2", "ab:cd:ef", ":", 2, false, []string{"ab", "cd:ef"}},
		{"colon-max-1", "ab:cd:ef", ":", 1, false, []string{"ab:cd:ef"}},
		{"adjacent-collapsed", "a::b", ":", -1, false, []string{"a", "b"}},
		{"adjacent-preserved", "a::b", ":", -1, true, []string{"a", "", "b"}},
		{"trailing-preserved", "a:", ":", -1, true, []string{"a", ""}},
		{"leading-preserved", ":a", ":", -1, true, []string{"", "a"}},
		{"only-separators", ":::", ":", -1, false, []string{}},
		{"whole-sep", "ab--cd--ef", "--", -1, false, []string{"ab", "cd", "ef"}},
		{"whole-sep-max", "ab--cd--ef", "--", 2, false, []string{"ab", "cd--ef"}},
		{"whole-sep-adjacent", "ab----cd", "--", -1, false, []string{"ab", "cd"}},
		{"whole-sep-adjacent-preserved", "ab----cd", "--", -1, true, []string{"ab", "", "cd"}},
		{"whole-sep-trailing", "ab--", "--", -1, false, []string{"ab", ""}},
		{"whole-sep-none", "abc", "--", -1, false, []string{"abc"}},
		{"unicode-sep", "a→b→c", "→", -1, false, []string{"a", "b", "c"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Split(tc.s, tc.sep, tc.max, tc.preserve))
		})
	}
}

func TestSplit_Helpers(t *testing.T) {
	assert.Equal(t, []string{"ab", "cd:ef"}, SplitMax("ab:cd:ef", ":", 2))
	assert.Equal(t, []string{"ab", "cd", "ef"}, SplitBy("ab:cd:ef", ":"))
	assert.Equal(t, []string{"abc", "def"}, SplitWhitespace("abc\tdef\n"))
	assert.Equal(t, []string{"a\u00a0b", "c"}, SplitWhitespace("a\u00a0b\u2003c"))
	assert.Equal(t, []string{"a", "", "b"}, SplitPreserve("a{}{}b", "{}"))
}

func TestAssemble_Table(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []string
		want     string
	}{
		{"two-args", "a{}b{}c", []string{"X", "Y"}, "aXbYc"},
		{"extra-arg-ignored", "a{}b", []string{"X", "Y"}, "aXb"},
		{"missing-arg-literal", "a{}{}b", []string{"X"}, "aX{}b"},
		{"no-args", "a{}b", nil, "a{}b"},
		{"no-placeholder", "plain", []string{"X"}, "plain"},
		{"empty", "", []string{"X"}, ""},
		{"leading", "{}x", []string{"A"}, "Ax"},
		{"trailing", "T_{}", []string{"USER"}, "T_USER"},
		{"only-placeholders", "{}{}", []string{"X"}, "X{}"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Assemble(tc.template, tc.args...))
		})
	}
}
