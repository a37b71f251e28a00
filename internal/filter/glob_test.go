package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlobMatch(t *testing.T) {
	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		// Suffix patterns
		{pattern: "*.rs", name: "main.rs", want: true},
		{pattern: "*.rs", name: "main.py", want: false},
		{pattern: "*.rs", name: ".rs", want: true},

		// Prefix patterns
		{pattern: "test_*", name: "test_foo", want: true},
		{pattern: "test_*", name: "footest_foo", want: false},
		{pattern: "test_*", name: "test_", want: true},

		// No wildcard: exact match only
		{pattern: "main.go", name: "main.go", want: true},
		{pattern: "main.go", name: "main.got", want: false},
		{pattern: "main.go", name: "xmain.go", want: false},

		// Inner wildcard
		{pattern: "a*b", name: "ab", want: true},
		{pattern: "a*b", name: "aXXb", want: true},
		{pattern: "a*b", name: "acbdb", want: true},
		{pattern: "a*b", name: "ba", want: false},
		{pattern: "a*b", name: "aXXbX", want: false},

		// Multiple wildcards
		{pattern: "*foo*", name: "XfooY", want: true},
		{pattern: "*foo*", name: "foo", want: true},
		{pattern: "*foo*", name: "fo", want: false},
		{pattern: "a*b*c", name: "aXbYc", want: true},
		{pattern: "a*b*c", name: "abc", want: true},
		{pattern: "a*b*c", name: "acb", want: false},

		// Bare and repeated wildcards
		{pattern: "*", name: "anything", want: true},
		{pattern: "*", name: "", want: true},
		{pattern: "**", name: "x", want: true},
		{pattern: "a*a", name: "a", want: false},
		{pattern: "a*a", name: "aa", want: true},

		// Case sensitivity and literal specials
		{pattern: "*.RS", name: "main.rs", want: false},
		{pattern: "a?b", name: "a?b", want: true},
		{pattern: "a?b", name: "axb", want: false},
		{pattern: "[ab]", name: "[ab]", want: true},
		{pattern: "[ab]", name: "a", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.name, func(t *testing.T) {
			g := CompileGlob(tt.pattern)
			assert.Equal(t, tt.want, g.Match(tt.name),
				"pattern %q against %q", tt.pattern, tt.name)
		})
	}
}

func TestGlobPattern(t *testing.T) {
	assert.Equal(t, "*.go", CompileGlob("*.go").Pattern())
}
