package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/harrison/lsx/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs a fresh root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// setupListing builds a small fixture tree and isolates the theme config.
func setupListing(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), make([]byte, 500), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.rs"), make([]byte, 2048), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".secret"), make([]byte, 10), 0644))
	return root
}

func TestListTableDefault(t *testing.T) {
	root := setupListing(t)

	out, err := execute(t, "-p", root)
	require.NoError(t, err)

	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "a.txt")
	assert.Contains(t, out, "b.rs")
	assert.NotContains(t, out, ".secret", "hidden entries excluded by default")
	assert.Contains(t, out, "2 entries")
}

func TestListAllIncludesHidden(t *testing.T) {
	root := setupListing(t)

	out, err := execute(t, "-p", root, "-a")
	require.NoError(t, err)
	assert.Contains(t, out, ".secret")
}

func TestListJSONWithExtensionFilter(t *testing.T) {
	root := setupListing(t)

	out, err := execute(t, "-p", root, "--format", "json", "--filter-ext", "rs")
	require.NoError(t, err)

	var entries []models.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "b.rs", entries[0].Name)
	assert.Equal(t, uint64(2048), entries[0].SizeBytes)
	assert.Equal(t, "2.0 KB", entries[0].HumanSize)
}

func TestListLegacyJSONFlagOverridesFormat(t *testing.T) {
	root := setupListing(t)

	out, err := execute(t, "-p", root, "--format", "table", "--json")
	require.NoError(t, err)

	var entries []models.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries), "legacy --json wins over --format table")
	assert.Len(t, entries, 2)
}

func TestListSortBySize(t *testing.T) {
	root := setupListing(t)

	out, err := execute(t, "-p", root, "--json", "--sort", "size")
	require.NoError(t, err)

	var entries []models.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "a.txt", entries[0].Name)
	assert.Equal(t, "b.rs", entries[1].Name)
}

func TestListCompact(t *testing.T) {
	root := setupListing(t)

	out, err := execute(t, "-p", root, "--compact")
	require.NoError(t, err)
	assert.Equal(t, "a.txt\nb.rs\n", out)
}

func TestListColumnsSelection(t *testing.T) {
	root := setupListing(t)

	out, err := execute(t, "-p", root, "--columns", "name,size")
	require.NoError(t, err)
	assert.Contains(t, out, "Size")
	assert.NotContains(t, out, "Permissions")
}

func TestListTreeWithDepth(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "l1", "l2"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "l1", "mid.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "l1", "l2", "deep.txt"), []byte("x"), 0644))

	out, err := execute(t, "-p", root, "--tree", "--depth", "0", "--json")
	require.NoError(t, err)

	var entries []models.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1, "depth 0 lists only direct children")
	assert.Equal(t, "l1", entries[0].Name)
}

func TestListExport(t *testing.T) {
	root := setupListing(t)
	outPath := filepath.Join(t.TempDir(), "listing.json")

	stdout, err := execute(t, "-p", root, "--json", "--out", outPath)
	require.NoError(t, err)
	assert.Empty(t, stdout, "exported output does not hit stdout")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var entries []models.Entry
	require.NoError(t, json.Unmarshal(data, &entries))
	assert.Len(t, entries, 2)
}

func TestListFlagErrors(t *testing.T) {
	root := setupListing(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "depth without tree", args: []string{"-p", root, "--depth", "2"}, want: "--tree"},
		{name: "invalid format", args: []string{"-p", root, "--format", "xml"}, want: "invalid format"},
		{name: "invalid sort key", args: []string{"-p", root, "--sort", "color"}, want: "invalid sort key"},
		{name: "compact with json", args: []string{"-p", root, "--compact", "--json"}, want: "--compact"},
		{name: "malformed min size", args: []string{"-p", root, "--min-size", "1XB"}, want: "invalid unit"},
		{name: "negative max size", args: []string{"-p", root, "--max-size", "-1KB"}, want: "negative"},
		{name: "unknown column", args: []string{"-p", root, "--columns", "nope"}, want: "unknown column"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestListMissingRootIsFatal(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	_, err := execute(t, "-p", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestEffectiveFormatPrecedence(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "default", args: nil, want: formatTable},
		{name: "format flag", args: []string{"--format", "json"}, want: formatJSON},
		{name: "legacy json", args: []string{"--json"}, want: formatJSON},
		{name: "legacy pretty", args: []string{"--json-pretty"}, want: formatJSONPretty},
		{name: "legacy wins over format", args: []string{"--format", "table", "--json-pretty"}, want: formatJSONPretty},
		{name: "pretty wins over json", args: []string{"--json", "--json-pretty"}, want: formatJSONPretty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRootCommand()
			require.NoError(t, cmd.ParseFlags(tt.args))
			got, err := effectiveFormat(cmd)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "bash completion")

	_, err = execute(t, "completion", "tcsh")
	require.Error(t, err)
}

func TestThemePathCommand(t *testing.T) {
	cfgHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cfgHome)

	out, err := execute(t, "theme", "path")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(cfgHome, "lsx", "config.yaml"))
}

func TestThemeInitCommand(t *testing.T) {
	cfgHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cfgHome)

	out, err := execute(t, "theme", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "config.yaml")
	assert.FileExists(t, filepath.Join(cfgHome, "lsx", "config.yaml"))

	// Second init refuses to overwrite.
	_, err = execute(t, "theme", "init")
	require.Error(t, err)

	// Reset always succeeds.
	_, err = execute(t, "theme", "reset")
	require.NoError(t, err)
}
