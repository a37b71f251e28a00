// Package theme loads the color theme used by the table renderer.
//
// Themes live in a YAML file at ~/.config/lsx/config.yaml (or under
// $XDG_CONFIG_HOME when set). A missing file yields the built-in default
// theme without error; a malformed file is an error so typos never fail
// silently into the default colors.
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Colors maps listing elements to color names.
type Colors struct {
	// File, Directory and Symlink color entry names by kind.
	File      string `yaml:"file"`
	Directory string `yaml:"directory"`
	Symlink   string `yaml:"symlink"`

	// Header colors the table header row.
	Header string `yaml:"header"`

	// Extensions overrides the name color per file extension
	// (without the leading dot).
	Extensions map[string]string `yaml:"extensions"`
}

// Theme is a loaded, resolved color theme.
type Theme struct {
	Colors Colors `yaml:"colors"`
}

// Default returns the built-in theme.
func Default() *Theme {
	return &Theme{
		Colors: Colors{
			File:      "bright_cyan",
			Directory: "bright_blue",
			Symlink:   "bright_magenta",
			Header:    "bright_green",
		},
	}
}

// ConfigPath returns the theme config file location, honoring
// XDG_CONFIG_HOME.
func ConfigPath() (string, error) {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "lsx", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "lsx", "config.yaml"), nil
}

// Load reads the theme from path. A missing file returns the default
// theme without error; a malformed file returns an error. Unset color
// fields fall back to the default theme's values.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read theme config %s: %w", path, err)
	}

	t := Default()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parse theme config %s: %w", path, err)
	}

	// Reject unknown color names up front so a typo surfaces on load,
	// not as a silently uncolored column.
	for _, name := range []string{t.Colors.File, t.Colors.Directory, t.Colors.Symlink, t.Colors.Header} {
		if name != "" && lookupColor(name) == nil {
			return nil, fmt.Errorf("parse theme config %s: unknown color %q", path, name)
		}
	}
	for ext, name := range t.Colors.Extensions {
		if lookupColor(name) == nil {
			return nil, fmt.Errorf("parse theme config %s: unknown color %q for extension %q", path, name, ext)
		}
	}

	return t, nil
}

// KindColor returns the color for an entry kind name ("file",
// "directory", "symlink"), or nil when unset.
func (t *Theme) KindColor(kind string) *color.Color {
	switch kind {
	case "directory":
		return lookupColor(t.Colors.Directory)
	case "symlink":
		return lookupColor(t.Colors.Symlink)
	default:
		return lookupColor(t.Colors.File)
	}
}

// ExtensionColor returns the override color for a file extension, or nil
// when none is configured.
func (t *Theme) ExtensionColor(ext string) *color.Color {
	if t.Colors.Extensions == nil {
		return nil
	}
	name, ok := t.Colors.Extensions[strings.ToLower(ext)]
	if !ok {
		return nil
	}
	return lookupColor(name)
}

// HeaderColor returns the table header color, or nil when unset.
func (t *Theme) HeaderColor() *color.Color {
	return lookupColor(t.Colors.Header)
}

var colorNames = map[string]color.Attribute{
	"black":          color.FgBlack,
	"red":            color.FgRed,
	"green":          color.FgGreen,
	"yellow":         color.FgYellow,
	"blue":           color.FgBlue,
	"magenta":        color.FgMagenta,
	"cyan":           color.FgCyan,
	"white":          color.FgWhite,
	"bright_black":   color.FgHiBlack,
	"bright_red":     color.FgHiRed,
	"bright_green":   color.FgHiGreen,
	"bright_yellow":  color.FgHiYellow,
	"bright_blue":    color.FgHiBlue,
	"bright_magenta": color.FgHiMagenta,
	"bright_cyan":    color.FgHiCyan,
	"bright_white":   color.FgHiWhite,
}

// lookupColor resolves a color name to a fatih color, or nil for ""
// and unknown names.
func lookupColor(name string) *color.Color {
	attr, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil
	}
	return color.New(attr)
}
