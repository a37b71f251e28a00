package classify

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/harrison/lsx/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyRegularFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "b.rs")
	require.NoError(t, os.WriteFile(path, make([]byte, 2048), 0644))

	c := New()
	entry, err := c.Classify(path, "b.rs", "b.rs", 0)
	require.NoError(t, err)

	assert.Equal(t, "b.rs", entry.Name)
	assert.Equal(t, models.KindFile, entry.Kind)
	assert.Equal(t, uint64(2048), entry.SizeBytes)
	assert.Equal(t, "2.0 KB", entry.HumanSize)
	assert.Equal(t, 0, entry.Depth)
	assert.True(t, entry.ModifiedKnown())
	assert.WithinDuration(t, time.Now(), entry.Modified, time.Minute)
}

func TestClassifyDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	sub := filepath.Join(tmpDir, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))

	entry, err := New().Classify(sub, "sub", "sub", 1)
	require.NoError(t, err)

	assert.Equal(t, models.KindDirectory, entry.Kind)
	assert.Equal(t, 1, entry.Depth)
	assert.NotEmpty(t, entry.HumanSize, "human size is always derived")
}

func TestClassifySymlinkNotResolved(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "target")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0644))
	link := filepath.Join(tmpDir, "link")
	require.NoError(t, os.Symlink(target, link))

	entry, err := New().Classify(link, "link", "link", 0)
	require.NoError(t, err)
	assert.Equal(t, models.KindSymlink, entry.Kind, "links report as links, not their target type")
}

func TestClassifyBrokenSymlinkStillClassifies(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}
	tmpDir := t.TempDir()
	link := filepath.Join(tmpDir, "dangling")
	require.NoError(t, os.Symlink(filepath.Join(tmpDir, "gone"), link))

	// Lstat reads the link itself, so a dangling target is not an error.
	entry, err := New().Classify(link, "dangling", "dangling", 0)
	require.NoError(t, err)
	assert.Equal(t, models.KindSymlink, entry.Kind)
}

func TestClassifyMissingPath(t *testing.T) {
	_, err := New().Classify(filepath.Join(t.TempDir(), "missing"), "missing", "missing", 0)
	require.Error(t, err)
}

func TestPosixPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX permission bits")
	}
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "perm")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0754))

	entry, err := New().Classify(path, "perm", "perm", 0)
	require.NoError(t, err)
	assert.Equal(t, "rwxr-xr--", entry.Permissions)
}

func TestPosixOwnership(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("UID/GID resolution")
	}
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "owned")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	entry, err := New().Classify(path, "owned", "owned", 0)
	require.NoError(t, err)

	// Either a resolved name or the numeric fallback, never empty.
	assert.NotEmpty(t, entry.Owner)
	assert.NotEmpty(t, entry.Group)
	assert.NotEqual(t, NotAvailable, entry.Owner)
}

// naResolver simulates a platform without permission or ownership
// capabilities.
type naResolver struct{}

func (naResolver) Permissions(os.FileInfo) string     { return NotAvailable }
func (naResolver) Owner(os.FileInfo) (string, string) { return NotAvailable, NotAvailable }

func TestCapabilityFallbackSentinels(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "file")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	entry, err := NewWithResolver(naResolver{}).Classify(path, "file", "file", 0)
	require.NoError(t, err, "missing capabilities must not fail classification")

	assert.Equal(t, NotAvailable, entry.Permissions)
	assert.Equal(t, NotAvailable, entry.Owner)
	assert.Equal(t, NotAvailable, entry.Group)
	assert.Equal(t, uint64(1), entry.SizeBytes, "size still populated")
}
