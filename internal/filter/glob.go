package filter

import "strings"

// Glob is a compiled '*'-wildcard pattern. A '*' matches any run of zero
// or more characters; every other character matches itself, case
// sensitively, against the full name. There is no '?', no character
// classes, and no path-separator awareness.
type Glob struct {
	pattern  string
	segments []string
	leading  bool // pattern starts with '*'
	trailing bool // pattern ends with '*'
}

// CompileGlob prepares a pattern for repeated matching. Compilation never
// fails: every string is a valid pattern.
func CompileGlob(pattern string) *Glob {
	g := &Glob{
		pattern:  pattern,
		leading:  strings.HasPrefix(pattern, "*"),
		trailing: strings.HasSuffix(pattern, "*"),
	}
	for _, seg := range strings.Split(pattern, "*") {
		if seg != "" {
			g.segments = append(g.segments, seg)
		}
	}
	return g
}

// Pattern returns the original pattern text.
func (g *Glob) Pattern() string {
	return g.pattern
}

// Match reports whether name matches the pattern.
func (g *Glob) Match(name string) bool {
	// No wildcard at all: exact match.
	if !strings.Contains(g.pattern, "*") {
		return name == g.pattern
	}

	rest := name

	for i, seg := range g.segments {
		first := i == 0
		last := i == len(g.segments)-1

		// Without a closing wildcard the final literal must sit at the
		// very end of the name.
		if last && !g.trailing {
			if !strings.HasSuffix(rest, seg) {
				return false
			}
			if first && !g.leading && len(rest) != len(seg) {
				return false
			}
			return true
		}

		idx := strings.Index(rest, seg)
		if idx < 0 {
			return false
		}
		// Without an opening wildcard the first literal must sit at the
		// very start.
		if first && !g.leading && idx != 0 {
			return false
		}
		rest = rest[idx+len(seg):]
	}

	return true
}
