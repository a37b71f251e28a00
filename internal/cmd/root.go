// Package cmd wires the CLI surface: flag parsing, configuration of the
// core listing pipeline, and output dispatch. All listing semantics live
// in the traverse, filter, classify and sorter packages; this layer only
// translates flags into their options and renders the result.
package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/harrison/lsx/internal/classify"
	"github.com/harrison/lsx/internal/filelock"
	"github.com/harrison/lsx/internal/filter"
	"github.com/harrison/lsx/internal/logger"
	"github.com/harrison/lsx/internal/models"
	"github.com/harrison/lsx/internal/render"
	"github.com/harrison/lsx/internal/sorter"
	"github.com/harrison/lsx/internal/theme"
	"github.com/harrison/lsx/internal/traverse"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// Output format names accepted by --format.
const (
	formatTable      = "table"
	formatJSON       = "json"
	formatJSONPretty = "json-pretty"
)

// NewRootCommand creates the root cobra command. The root command itself
// performs the listing; subcommands cover completion and theme management.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lsx",
		Short: "A faster, prettier ls",
		Long: `lsx lists directory contents as a colored table or JSON.

It supports recursive traversal with a depth bound, filtering by
extension, name glob and size, sorting by name, size or modification
date, and export to a file.

Examples:
  lsx -p ./src
  lsx --sort size --filter-ext go,md
  lsx --tree --depth 2 --filter-name '*_test.go'
  lsx --format json-pretty --min-size 1MB --out big-files.json`,
		Version: Version,
		Args:    cobra.NoArgs,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		RunE:         listCommand,
	}

	cmd.Flags().StringP("path", "p", ".", "Directory path to list")
	cmd.Flags().BoolP("all", "a", false, "Include hidden entries (names starting with '.')")
	cmd.Flags().StringP("sort", "s", "name", "Sort entries by: name, size, or date")
	cmd.Flags().String("format", formatTable, "Output format: table, json, or json-pretty")
	cmd.Flags().BoolP("json", "j", false, "Output compact JSON (deprecated, use --format json)")
	cmd.Flags().Bool("json-pretty", false, "Output pretty JSON (deprecated, use --format json-pretty)")
	cmd.Flags().Bool("compact", false, "Output names only, one per line")
	cmd.Flags().String("columns", "", "Comma-separated columns to display: name,type,size,date,permissions,owner,group")
	cmd.Flags().String("out", "", "Export output to a file instead of stdout")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	cmd.Flags().Bool("tree", false, "Recurse into subdirectories")
	cmd.Flags().Int("depth", -1, "Maximum recursion depth (requires --tree; -1 = unlimited)")
	cmd.Flags().String("filter-ext", "", "Filter by extension, comma-separated (e.g. go,md)")
	cmd.Flags().String("filter-name", "", "Filter by name glob; '*' matches any run of characters")
	cmd.Flags().String("min-size", "", "Minimum size, inclusive (e.g. 1KB, 1.5MB)")
	cmd.Flags().String("max-size", "", "Maximum size, inclusive (e.g. 100MB)")
	cmd.Flags().Int("jobs", 0, "Metadata workers per directory level (0 = number of CPUs)")
	cmd.Flags().String("log-level", "warn", "Diagnostic verbosity: debug, info, warn, error")

	cmd.AddCommand(NewCompletionCommand())
	cmd.AddCommand(NewThemeCommand())

	return cmd
}

// listCommand implements the root listing logic.
func listCommand(cmd *cobra.Command, args []string) error {
	req, err := requestFromFlags(cmd)
	if err != nil {
		return err
	}

	format, err := effectiveFormat(cmd)
	if err != nil {
		return err
	}

	compact, _ := cmd.Flags().GetBool("compact")
	if compact && format != formatTable {
		return fmt.Errorf("cannot combine --compact with JSON output")
	}

	columnsCSV, _ := cmd.Flags().GetString("columns")
	columns, err := render.ParseColumns(columnsCSV)
	if err != nil {
		return err
	}

	outPath, _ := cmd.Flags().GetString("out")
	noColor, _ := cmd.Flags().GetBool("no-color")
	jobs, _ := cmd.Flags().GetInt("jobs")
	logLevel, _ := cmd.Flags().GetString("log-level")

	if noColor {
		color.NoColor = true
	}
	// Exported and piped output stays plain.
	if outPath != "" || !isatty.IsTerminal(os.Stdout.Fd()) {
		noColor = true
	}

	themePath, err := theme.ConfigPath()
	if err != nil {
		return err
	}
	th, err := theme.Load(themePath)
	if err != nil {
		return err
	}

	// Filter construction parses all bound strings; malformed sizes fail
	// here, before any traversal starts.
	filters, err := filter.New(filter.Options{
		Extensions: req.Extensions,
		NameGlob:   req.NameGlob,
		MinSize:    req.MinSize,
		MaxSize:    req.MaxSize,
	})
	if err != nil {
		return err
	}

	log := logger.NewConsole(os.Stderr, logLevel)
	walker := traverse.NewWalker(classify.New(), filters, log, traverse.Options{
		Recursive:  req.Recursive,
		MaxDepth:   req.MaxDepth,
		ShowHidden: req.ShowHidden,
		Workers:    jobs,
	})

	result, err := walker.Walk(req.Root)
	if err != nil {
		return err
	}
	sorter.Sort(result.Entries, req.Sort)

	var out io.Writer = cmd.OutOrStdout()
	var buf bytes.Buffer
	if outPath != "" {
		out = &buf
	}

	switch {
	case compact:
		err = render.Compact(out, result.Entries, th, noColor)
	case format == formatJSON:
		err = render.JSON(out, result.Entries, false)
	case format == formatJSONPretty:
		err = render.JSON(out, result.Entries, true)
	default:
		err = render.Table(out, result.Entries, render.TableOptions{
			Columns: columns,
			Theme:   th,
			NoColor: noColor,
		})
		if err == nil {
			err = render.Summary(out, req.Root, len(result.Entries))
		}
	}
	if err != nil {
		return err
	}

	if outPath != "" {
		if err := filelock.AtomicWrite(outPath, buf.Bytes()); err != nil {
			return fmt.Errorf("export to %s: %w", outPath, err)
		}
		log.Infof("wrote %d entries to %s", len(result.Entries), outPath)
	}

	if n := len(result.Warnings); n > 0 {
		log.Infof("listing finished with %d warning(s)", n)
	}
	return nil
}

// requestFromFlags assembles the ListRequest from the command's flags.
func requestFromFlags(cmd *cobra.Command) (*models.ListRequest, error) {
	path, _ := cmd.Flags().GetString("path")
	all, _ := cmd.Flags().GetBool("all")
	sortStr, _ := cmd.Flags().GetString("sort")
	tree, _ := cmd.Flags().GetBool("tree")
	depth, _ := cmd.Flags().GetInt("depth")
	filterExt, _ := cmd.Flags().GetString("filter-ext")
	filterName, _ := cmd.Flags().GetString("filter-name")
	minSize, _ := cmd.Flags().GetString("min-size")
	maxSize, _ := cmd.Flags().GetString("max-size")

	if cmd.Flags().Changed("depth") && !tree {
		return nil, fmt.Errorf("--depth requires --tree")
	}

	sortKey, err := models.ParseSortKey(sortStr)
	if err != nil {
		return nil, err
	}

	return &models.ListRequest{
		Root:       path,
		Recursive:  tree,
		MaxDepth:   depth,
		ShowHidden: all,
		Extensions: filterExt,
		NameGlob:   filterName,
		MinSize:    minSize,
		MaxSize:    maxSize,
		Sort:       sortKey,
	}, nil
}

// effectiveFormat resolves the output format, with the legacy --json and
// --json-pretty flags taking precedence over --format.
func effectiveFormat(cmd *cobra.Command) (string, error) {
	jsonFlag, _ := cmd.Flags().GetBool("json")
	jsonPretty, _ := cmd.Flags().GetBool("json-pretty")
	format, _ := cmd.Flags().GetString("format")

	if jsonPretty {
		return formatJSONPretty, nil
	}
	if jsonFlag {
		return formatJSON, nil
	}
	switch format {
	case formatTable, formatJSON, formatJSONPretty:
		return format, nil
	default:
		return "", fmt.Errorf("invalid format %q (expected table, json, or json-pretty)", format)
	}
}
