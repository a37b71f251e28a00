// Package classify turns filesystem paths into normalized Entry values.
//
// Classification is metadata-only and read-only: it never opens file
// contents and never follows symlinks, so a link is reported as a link
// rather than as its target. Permission and ownership resolution is
// capability-gated per platform; on platforms without POSIX permission
// bits or UID/GID resolution the classifier falls back to coarse
// indicators and "N/A" sentinels instead of failing.
package classify

import (
	"fmt"
	"os"

	"github.com/harrison/lsx/internal/models"
	"github.com/harrison/lsx/internal/sizeutil"
)

// Sentinel used when a capability is unavailable on the platform.
const NotAvailable = "N/A"

// MetadataResolver resolves platform-specific metadata from a stat result.
// The default resolver is selected by build tag; tests may substitute a
// fake to exercise fallback paths.
type MetadataResolver interface {
	// Permissions renders the permission string for the file. POSIX
	// platforms return a 9-character rwxrwxrwx-style string; others
	// return a coarse read-only/read-write indicator or NotAvailable.
	Permissions(info os.FileInfo) string

	// Owner resolves the owning account and group names. Returns
	// NotAvailable placeholders where the platform has no UID/GID
	// notion, and numeric ID strings where an ID exists but the name
	// lookup fails. Never returns an error: ownership being
	// unobtainable must not fail classification.
	Owner(info os.FileInfo) (owner, group string)
}

// Classifier produces Entry values from paths.
type Classifier struct {
	resolver MetadataResolver
}

// New returns a Classifier using the platform's default metadata resolver.
func New() *Classifier {
	return &Classifier{resolver: defaultResolver()}
}

// NewWithResolver returns a Classifier with an explicit resolver.
func NewWithResolver(r MetadataResolver) *Classifier {
	return &Classifier{resolver: r}
}

// Classify reads metadata for the object at path and returns a normalized
// Entry. name is the display name, relPath the path relative to the scan
// root, and depth the recursion depth of discovery.
//
// The error return covers metadata-read failures only (permission denied,
// race-deleted entries); callers are expected to downgrade it to a
// warning and skip the entry rather than abort the listing.
func (c *Classifier) Classify(path, name, relPath string, depth int) (models.Entry, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return models.Entry{}, fmt.Errorf("read metadata for %s: %w", path, err)
	}

	kind := models.KindFile
	switch {
	case info.Mode()&os.ModeSymlink != 0:
		kind = models.KindSymlink
	case info.IsDir():
		kind = models.KindDirectory
	}

	size := uint64(0)
	if info.Size() > 0 {
		size = uint64(info.Size())
	}

	owner, group := c.resolver.Owner(info)

	return models.Entry{
		Name:        name,
		Path:        relPath,
		Kind:        kind,
		SizeBytes:   size,
		HumanSize:   sizeutil.Format(size),
		Modified:    info.ModTime(),
		Permissions: c.resolver.Permissions(info),
		Owner:       owner,
		Group:       group,
		Depth:       depth,
	}, nil
}
