package models

import "time"

// EntryKind identifies the filesystem object type of an Entry.
type EntryKind string

const (
	// KindFile is a regular file.
	KindFile EntryKind = "file"
	// KindDirectory is a directory.
	KindDirectory EntryKind = "directory"
	// KindSymlink is a symbolic link. Links are never resolved to their
	// target type so the link structure stays visible in listings.
	KindSymlink EntryKind = "symlink"
)

// String returns the display label for the kind.
func (k EntryKind) String() string {
	switch k {
	case KindFile:
		return "File"
	case KindDirectory:
		return "Directory"
	case KindSymlink:
		return "Symlink"
	default:
		return "Unknown"
	}
}

// Entry represents one classified filesystem object seen during traversal.
// An Entry is created once per visit and never mutated; a re-scan produces
// fresh values.
type Entry struct {
	// Name is the base name of the file, directory, or symlink.
	Name string `json:"name"`

	// Path is the path of the entry relative to the scanned root.
	Path string `json:"path"`

	// Kind is the filesystem object type.
	Kind EntryKind `json:"type"`

	// SizeBytes is the raw size in bytes. For directories this is the
	// directory record size, not the recursive content size. Always
	// well-defined: 0 on metadata-read failure, never negative.
	SizeBytes uint64 `json:"size_bytes"`

	// HumanSize is SizeBytes formatted with binary units (e.g. "1.5 MB").
	// Purely presentational, derived from SizeBytes.
	HumanSize string `json:"human_size"`

	// Modified is the last modification time. The zero value means the
	// timestamp could not be read.
	Modified time.Time `json:"modified"`

	// Permissions is a 9-character rwxrwxrwx-style string on POSIX
	// platforms, a coarse read-only/read-write indicator elsewhere, or
	// "N/A" where unsupported.
	Permissions string `json:"permissions"`

	// Owner is the resolved account name, the numeric UID as a string
	// when the name cannot be resolved, or "N/A" where unsupported.
	Owner string `json:"owner"`

	// Group is the resolved group name, with the same fallbacks as Owner.
	Group string `json:"group"`

	// Depth is the recursion depth at which the entry was discovered.
	// Direct children of the scanned root are depth 0.
	Depth int `json:"depth"`
}

// ModifiedKnown reports whether the modification timestamp was readable.
func (e *Entry) ModifiedKnown() bool {
	return !e.Modified.IsZero()
}

// Extension returns the entry's extension (text after the final '.' in
// Name) in lower case, or "" if the name has no extension. A dotfile name
// like ".bashrc" has no extension.
func (e *Entry) Extension() string {
	return ExtensionOf(e.Name)
}
