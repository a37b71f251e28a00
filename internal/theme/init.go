package theme

import (
	"fmt"
	"os"

	"github.com/harrison/lsx/internal/filelock"
)

// sampleConfig is written by `lsx theme init`. It mirrors the default
// theme with every knob shown.
const sampleConfig = `# lsx color theme
#
# Supported colors: black, red, green, yellow, blue, magenta, cyan, white
# and their bright_ variants (e.g. bright_cyan).
colors:
  file: bright_cyan
  directory: bright_blue
  symlink: bright_magenta
  header: bright_green

  # Per-extension overrides for the Name column (optional):
  # extensions:
  #   go: yellow
  #   md: cyan
  #   json: green
`

// Init writes a commented sample config to path. It refuses to overwrite
// an existing config. The write is lock-guarded and atomic so concurrent
// invocations cannot corrupt the file.
func Init(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("theme config already exists at %s", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("check theme config %s: %w", path, err)
	}

	if err := filelock.LockAndWrite(path, []byte(sampleConfig)); err != nil {
		return fmt.Errorf("write theme config: %w", err)
	}
	return nil
}

// Reset rewrites the config at path with the sample defaults, creating it
// if absent.
func Reset(path string) error {
	if err := filelock.LockAndWrite(path, []byte(sampleConfig)); err != nil {
		return fmt.Errorf("reset theme config: %w", err)
	}
	return nil
}
