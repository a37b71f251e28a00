package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	th, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), th)
}

func TestLoadValidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
colors:
  file: yellow
  directory: bright_blue
  extensions:
    go: cyan
`), 0644))

	th, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "yellow", th.Colors.File)
	assert.NotNil(t, th.KindColor("file"))
	assert.NotNil(t, th.ExtensionColor("go"))
	assert.NotNil(t, th.ExtensionColor("GO"), "extension lookup is case-insensitive")
	assert.Nil(t, th.ExtensionColor("rs"))

	// Unset fields keep the defaults.
	assert.Equal(t, Default().Colors.Symlink, th.Colors.Symlink)
	assert.NotNil(t, th.HeaderColor())
}

func TestLoadMalformedYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colors: [not a map"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadUnknownColorFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colors:\n  file: chartreuse\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chartreuse")
}

func TestConfigPathHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	path, err := ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/custom/config", "lsx", "config.yaml"), path)
}

func TestInitAndReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lsx", "config.yaml")

	require.NoError(t, Init(path))

	// The sample must itself be a loadable theme.
	th, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Colors.File, th.Colors.File)

	// Init refuses to clobber an existing config.
	require.Error(t, Init(path))

	// Reset rewrites it in place.
	require.NoError(t, os.WriteFile(path, []byte("colors:\n  file: red\n"), 0644))
	require.NoError(t, Reset(path))
	th, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Colors.File, th.Colors.File)
}

func TestKindColorFallsBackToFile(t *testing.T) {
	th := Default()
	assert.Equal(t, th.KindColor("file"), th.KindColor("anything-else"))
}
