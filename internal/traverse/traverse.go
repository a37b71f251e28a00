// Package traverse walks a directory tree under depth and filter
// constraints and collects classified entries.
//
// Traversal is depth-first in name order (os.ReadDir returns entries
// sorted by filename), which makes the pre-sort listing order
// deterministic across runs. Metadata classification for the siblings of
// one directory level runs on a bounded worker pool: each entry is
// assigned a stable index, classification results are written into a
// pre-sized slice by that index, and the slice is read back in index
// order, so parallelism never reorders output.
//
// Failures below the root are never fatal. An entry whose metadata cannot
// be read is skipped with a warning; an unreadable subdirectory
// contributes zero entries and a warning while its siblings are listed
// normally. Only the root itself failing aborts the walk.
package traverse

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/harrison/lsx/internal/classify"
	"github.com/harrison/lsx/internal/filter"
	"github.com/harrison/lsx/internal/logger"
	"github.com/harrison/lsx/internal/models"
)

// Options configures a walk.
type Options struct {
	// Recursive descends into subdirectories.
	Recursive bool

	// MaxDepth bounds recursion: a directory discovered at depth d is
	// descended into only while d < MaxDepth, so MaxDepth 0 yields only
	// the root's direct children. Negative means unbounded. Ignored
	// unless Recursive is set.
	MaxDepth int

	// ShowHidden includes entries whose name starts with '.'.
	ShowHidden bool

	// Workers bounds the classification pool per directory level.
	// Zero or negative selects runtime.NumCPU().
	Workers int
}

// Warning records a non-fatal failure encountered during a walk.
type Warning struct {
	// Path is the path that could not be processed.
	Path string
	// Err is the underlying failure.
	Err error
}

// String renders the warning for diagnostics.
func (w Warning) String() string {
	return fmt.Sprintf("%s: %v", w.Path, w.Err)
}

// Result holds the outcome of one walk: the filtered entries in
// deterministic pre-sort order, plus every warning that was emitted.
type Result struct {
	Entries  []models.Entry
	Warnings []Warning
}

// Walker traverses directories. It holds no per-walk state; one Walker
// may serve many Walk calls.
type Walker struct {
	classifier *classify.Classifier
	filters    *filter.Config
	log        logger.Logger
	opts       Options
}

// NewWalker creates a Walker. A nil classifier gets the platform default,
// a nil filter config matches everything, and a nil logger discards
// diagnostics.
func NewWalker(c *classify.Classifier, f *filter.Config, log logger.Logger, opts Options) *Walker {
	if c == nil {
		c = classify.New()
	}
	if f == nil {
		f = filter.Default()
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Walker{classifier: c, filters: f, log: log, opts: opts}
}

// Walk lists root under the configured options. Root being unreadable or
// not a directory is fatal; every failure below root is downgraded to a
// Result warning. Re-invoking Walk performs a fresh traversal; no state
// is carried between runs.
func (w *Walker) Walk(root string) (*Result, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("read root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", root)
	}

	dirents, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", root, err)
	}

	res := &Result{Entries: []models.Entry{}}
	w.walkLevel(root, "", 0, dirents, res)
	return res, nil
}

// walkLevel classifies one directory level and descends depth-first.
func (w *Walker) walkLevel(dir, rel string, depth int, dirents []os.DirEntry, res *Result) {
	kept := dirents[:0:0]
	for _, d := range dirents {
		if !w.opts.ShowHidden && strings.HasPrefix(d.Name(), ".") {
			continue
		}
		kept = append(kept, d)
	}
	if len(kept) == 0 {
		return
	}

	type slot struct {
		entry models.Entry
		err   error
	}

	// Scatter: classify siblings in parallel, each goroutine owning one
	// pre-allocated slot. Gather below reads the slots in index order.
	slots := make([]slot, len(kept))
	sem := make(chan struct{}, w.workers())
	var wg sync.WaitGroup

	for i, d := range kept {
		sem <- struct{}{}
		wg.Add(1)
		go func(i int, d os.DirEntry) {
			defer wg.Done()
			defer func() { <-sem }()

			relPath := filepath.Join(rel, d.Name())
			entry, err := w.classifier.Classify(filepath.Join(dir, d.Name()), d.Name(), relPath, depth)
			slots[i] = slot{entry: entry, err: err}
		}(i, d)
	}
	wg.Wait()

	for i, d := range kept {
		path := filepath.Join(dir, d.Name())

		switch {
		case slots[i].err != nil:
			w.warn(res, path, slots[i].err)
		case w.filters.Matches(&slots[i].entry):
			res.Entries = append(res.Entries, slots[i].entry)
		}

		// Filters gate output inclusion only; a directory that fails them
		// is still traversed.
		if d.IsDir() && w.descend(depth) {
			subents, err := os.ReadDir(path)
			if err != nil {
				w.warn(res, path, err)
				continue
			}
			w.walkLevel(path, filepath.Join(rel, d.Name()), depth+1, subents, res)
		}
	}
}

// descend reports whether a directory found at depth may be entered.
func (w *Walker) descend(depth int) bool {
	if !w.opts.Recursive {
		return false
	}
	return w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth
}

func (w *Walker) warn(res *Result, path string, err error) {
	res.Warnings = append(res.Warnings, Warning{Path: path, Err: err})
	w.log.Warnf("skipping %s: %v", path, err)
}

func (w *Walker) workers() int {
	if w.opts.Workers > 0 {
		return w.opts.Workers
	}
	return runtime.NumCPU()
}
