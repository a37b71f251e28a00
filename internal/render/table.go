// Package render turns a classified entry list into user-facing output:
// an aligned colored table, a compact name list, or JSON.
//
// Renderers write to an io.Writer and never consult the filesystem; the
// traversal layer is the single source of entry data.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/lsx/internal/models"
	"github.com/harrison/lsx/internal/theme"
	"github.com/mattn/go-runewidth"
)

// TableOptions configures the table renderer.
type TableOptions struct {
	// Columns selects and orders the displayed columns; nil or empty
	// means the default set.
	Columns []Column

	// Theme supplies the colors. Nil means the built-in default theme.
	Theme *theme.Theme

	// NoColor suppresses all coloring regardless of theme and TTY state.
	NoColor bool
}

// Table writes entries as an aligned table. Column widths are computed
// with runewidth so wide characters in file names keep the columns
// straight. Coloring: the header row uses the theme header color, the
// Name column is colored by entry kind with per-extension overrides, and
// the Type column reuses the kind color.
func Table(w io.Writer, entries []models.Entry, opts TableOptions) error {
	cols := opts.Columns
	if len(cols) == 0 {
		cols = DefaultColumns()
	}
	th := opts.Theme
	if th == nil {
		th = theme.Default()
	}

	// First pass: measure every cell.
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = runewidth.StringWidth(c.header())
	}
	rows := make([][]string, len(entries))
	for r := range entries {
		row := make([]string, len(cols))
		for i, c := range cols {
			cell := c.value(&entries[r])
			row[i] = cell
			if width := runewidth.StringWidth(cell); width > widths[i] {
				widths[i] = width
			}
		}
		rows[r] = row
	}

	var b strings.Builder

	for i, c := range cols {
		b.WriteString(pad(paint(c.header(), th.HeaderColor(), opts.NoColor), c.header(), widths[i]))
		if i < len(cols)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteByte('\n')

	for r, row := range rows {
		for i, c := range cols {
			cell := row[i]
			colored := cell
			if c == ColName || c == ColType {
				colored = paint(cell, entryColor(&entries[r], th), opts.NoColor)
			}
			b.WriteString(pad(colored, cell, widths[i]))
			if i < len(cols)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Compact writes one entry name per line, colored by kind.
func Compact(w io.Writer, entries []models.Entry, th *theme.Theme, noColor bool) error {
	if th == nil {
		th = theme.Default()
	}
	var b strings.Builder
	for i := range entries {
		b.WriteString(paint(entries[i].Name, entryColor(&entries[i], th), noColor))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// entryColor picks the display color for an entry: extension override
// first, then the kind color.
func entryColor(e *models.Entry, th *theme.Theme) *color.Color {
	if e.Kind == models.KindFile {
		if c := th.ExtensionColor(e.Extension()); c != nil {
			return c
		}
	}
	return th.KindColor(string(e.Kind))
}

// paint colors text unless coloring is off or no color is configured.
func paint(text string, c *color.Color, noColor bool) string {
	if noColor || c == nil {
		return text
	}
	return c.Sprint(text)
}

// pad right-pads colored text to the display width of its plain form.
// Padding is computed from the plain text because ANSI escapes have no
// display width.
func pad(colored, plain string, width int) string {
	gap := width - runewidth.StringWidth(plain)
	if gap <= 0 {
		return colored
	}
	return colored + strings.Repeat(" ", gap)
}

// Summary writes the scanned path and entry count line that closes a
// table listing.
func Summary(w io.Writer, root string, count int) error {
	_, err := fmt.Fprintf(w, "\n%s: %d entries\n", root, count)
	return err
}
