// Package filter implements the pre-normalized entry filter set applied
// during traversal.
//
// A Config is built once per invocation from raw CLI strings. All string
// parsing (extension lists, size bounds, glob compilation) happens at
// construction time so that per-entry evaluation does no string work, and
// the resulting Config is immutable and safe to evaluate concurrently.
package filter

import (
	"fmt"
	"strings"

	"github.com/harrison/lsx/internal/models"
	"github.com/harrison/lsx/internal/sizeutil"
)

// Options carries the raw, unparsed filter inputs from the CLI layer.
type Options struct {
	// Extensions is a comma-separated list of extensions, with or without
	// leading dots (e.g. "go,md" or ".go,.md"). Empty disables the filter.
	Extensions string
	// NameGlob is a '*'-wildcard pattern matched against the full entry
	// name. Empty disables the filter.
	NameGlob string
	// MinSize and MaxSize are human-readable inclusive byte bounds
	// (e.g. "1KB"). Empty disables the respective bound.
	MinSize string
	MaxSize string
}

// Config is an immutable set of filter predicates. The zero value (or
// New with empty Options) passes every entry.
type Config struct {
	extensions map[string]struct{}
	glob       *Glob
	minSize    uint64
	maxSize    uint64
	hasMin     bool
	hasMax     bool
}

// New builds a Config from raw options. Size bound strings are parsed
// with sizeutil.Parse; a malformed bound fails construction before any
// traversal begins.
func New(opts Options) (*Config, error) {
	cfg := &Config{}

	if opts.Extensions != "" {
		cfg.extensions = make(map[string]struct{})
		for _, ext := range strings.Split(opts.Extensions, ",") {
			ext = strings.ToLower(strings.TrimSpace(ext))
			ext = strings.TrimPrefix(ext, ".")
			if ext == "" {
				continue
			}
			cfg.extensions[ext] = struct{}{}
		}
		if len(cfg.extensions) == 0 {
			cfg.extensions = nil
		}
	}

	if opts.NameGlob != "" {
		cfg.glob = CompileGlob(opts.NameGlob)
	}

	if opts.MinSize != "" {
		min, err := sizeutil.Parse(opts.MinSize)
		if err != nil {
			return nil, fmt.Errorf("min size: %w", err)
		}
		cfg.minSize = min
		cfg.hasMin = true
	}

	if opts.MaxSize != "" {
		max, err := sizeutil.Parse(opts.MaxSize)
		if err != nil {
			return nil, fmt.Errorf("max size: %w", err)
		}
		cfg.maxSize = max
		cfg.hasMax = true
	}

	return cfg, nil
}

// Default returns a Config with no predicates configured; it matches
// every entry.
func Default() *Config {
	return &Config{}
}

// Empty reports whether no predicate is configured.
func (c *Config) Empty() bool {
	return c.extensions == nil && c.glob == nil && !c.hasMin && !c.hasMax
}

// Matches reports whether the entry satisfies every configured predicate.
// Unconfigured predicates always pass.
//
// Directories are exempt from the extension and size predicates so that a
// filter aimed at files never hides the tree structure around them; the
// name glob still applies to directories.
func (c *Config) Matches(e *models.Entry) bool {
	if c.glob != nil && !c.glob.Match(e.Name) {
		return false
	}

	if e.Kind == models.KindDirectory {
		return true
	}

	if c.extensions != nil {
		ext := e.Extension()
		if ext == "" {
			return false
		}
		if _, ok := c.extensions[ext]; !ok {
			return false
		}
	}

	if c.hasMin && e.SizeBytes < c.minSize {
		return false
	}
	if c.hasMax && e.SizeBytes > c.maxSize {
		return false
	}

	return true
}
