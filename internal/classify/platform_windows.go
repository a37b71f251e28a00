//go:build windows

package classify

import "os"

// windowsResolver has no POSIX permission bits or UID/GID notion. It
// reports a coarse read-only/read-write indicator derived from the write
// bit Go synthesizes from the file attributes, and placeholder ownership.
type windowsResolver struct{}

func defaultResolver() MetadataResolver {
	return windowsResolver{}
}

func (windowsResolver) Permissions(info os.FileInfo) string {
	if info.Mode().Perm()&0200 == 0 {
		return "read-only"
	}
	return "read-write"
}

func (windowsResolver) Owner(info os.FileInfo) (string, string) {
	return NotAvailable, NotAvailable
}
