package models

import (
	"fmt"
	"strings"
)

// SortKey selects the attribute a listing is ordered by.
type SortKey string

const (
	// SortByName orders entries lexicographically by name.
	SortByName SortKey = "name"
	// SortBySize orders entries by size in bytes, smallest first.
	SortBySize SortKey = "size"
	// SortByDate orders entries by modification time, oldest first.
	SortByDate SortKey = "date"
)

// ParseSortKey parses a user-supplied sort key string (case-insensitive).
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "name":
		return SortByName, nil
	case "size":
		return SortBySize, nil
	case "date", "modified":
		return SortByDate, nil
	default:
		return "", fmt.Errorf("invalid sort key %q (expected name, size, or date)", s)
	}
}

// ListRequest carries the raw, caller-supplied configuration for one
// listing run. Filter strings are kept unparsed here; the filter package
// normalizes them once at construction time.
type ListRequest struct {
	// Root is the directory to list.
	Root string

	// Recursive enables tree traversal below Root.
	Recursive bool

	// MaxDepth bounds recursion: a directory discovered at depth d is
	// descended into only while d < MaxDepth. Negative means unbounded.
	// Ignored unless Recursive is set.
	MaxDepth int

	// ShowHidden includes entries whose name starts with '.'.
	ShowHidden bool

	// Extensions is a comma-separated extension filter (e.g. "go,md").
	Extensions string

	// NameGlob is a '*'-wildcard pattern matched against entry names.
	NameGlob string

	// MinSize and MaxSize are human-readable inclusive size bounds
	// (e.g. "1.5MB"). Empty means unbounded on that side.
	MinSize string
	MaxSize string

	// Sort selects the output ordering.
	Sort SortKey
}

// ExtensionOf returns the lower-cased extension of a file name, or "" when
// the name has none. The leading dot of a dotfile is not a separator.
func ExtensionOf(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 || idx == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}
