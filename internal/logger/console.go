// Package logger provides the leveled console logger used for diagnostic
// output during a listing run.
//
// Diagnostics (skipped entries, unreadable subtrees) go to stderr so they
// never corrupt the rendered listing on stdout, including when the listing
// is piped or exported. The logger is thread-safe; traversal workers log
// concurrently.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Log level constants for filtering
const (
	levelDebug int = 0
	levelInfo  int = 1
	levelWarn  int = 2
	levelError int = 3
)

// Logger is the minimal diagnostic interface the traversal and command
// layers depend on.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Console logs to a writer with [HH:MM:SS] [LEVEL] prefixes and level
// filtering. Color output is enabled automatically when the writer is a
// terminal (and NO_COLOR is not set).
type Console struct {
	writer      io.Writer
	level       int
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsole creates a Console writing to w at the given minimum level.
// If w is nil, messages are discarded. Valid levels are debug, info, warn
// and error (case-insensitive); empty or unknown levels default to warn,
// which keeps normal listings quiet while still surfacing skipped entries.
func NewConsole(w io.Writer, level string) *Console {
	return &Console{
		writer:      w,
		level:       parseLevel(level),
		colorOutput: isTerminal(w),
	}
}

// Discard returns a Console that drops every message. Useful in tests.
func Discard() *Console {
	return &Console{writer: nil, level: levelError}
}

// isTerminal checks if the writer is a terminal that supports colors.
func isTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if w == os.Stdout || w == os.Stderr {
		// The color library's detection also honors NO_COLOR.
		return !color.NoColor
	}
	return false
}

// parseLevel converts a level name to its numeric value, defaulting to warn.
func parseLevel(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn", "warning":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelWarn
	}
}

// Debugf logs a debug-level message.
func (c *Console) Debugf(format string, args ...interface{}) {
	c.logf(levelDebug, "DEBUG", format, args...)
}

// Infof logs an info-level message.
func (c *Console) Infof(format string, args ...interface{}) {
	c.logf(levelInfo, "INFO", format, args...)
}

// Warnf logs a warning-level message.
func (c *Console) Warnf(format string, args ...interface{}) {
	c.logf(levelWarn, "WARN", format, args...)
}

// Errorf logs an error-level message.
func (c *Console) Errorf(format string, args ...interface{}) {
	c.logf(levelError, "ERROR", format, args...)
}

func (c *Console) logf(level int, label, format string, args ...interface{}) {
	if c.writer == nil || level < c.level {
		return
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	ts := time.Now().Format("15:04:05")
	message := fmt.Sprintf(format, args...)

	if c.colorOutput {
		label = colorForLevel(level).Sprint(label)
	}
	fmt.Fprintf(c.writer, "[%s] [%s] %s\n", ts, label, message)
}

func colorForLevel(level int) *color.Color {
	switch level {
	case levelDebug:
		return color.New(color.FgCyan)
	case levelInfo:
		return color.New(color.FgBlue)
	case levelWarn:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}
