//go:build !windows

package classify

import (
	"os"
	"os/user"
	"strconv"
	"strings"
	"syscall"
)

// posixResolver reads POSIX permission bits and resolves UID/GID to
// account names through os/user. Name lookups fall back to the numeric
// ID string when the account database has no matching record.
type posixResolver struct{}

func defaultResolver() MetadataResolver {
	return posixResolver{}
}

func (posixResolver) Permissions(info os.FileInfo) string {
	var b strings.Builder
	mode := info.Mode().Perm()
	for i := 8; i >= 0; i-- {
		if mode&(1<<uint(i)) == 0 {
			b.WriteByte('-')
			continue
		}
		switch i % 3 {
		case 2:
			b.WriteByte('r')
		case 1:
			b.WriteByte('w')
		case 0:
			b.WriteByte('x')
		}
	}
	return b.String()
}

func (posixResolver) Owner(info os.FileInfo) (string, string) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return NotAvailable, NotAvailable
	}

	uid := strconv.FormatUint(uint64(stat.Uid), 10)
	gid := strconv.FormatUint(uint64(stat.Gid), 10)

	owner := uid
	if u, err := user.LookupId(uid); err == nil {
		owner = u.Username
	}
	group := gid
	if g, err := user.LookupGroupId(gid); err == nil {
		group = g.Name
	}
	return owner, group
}
