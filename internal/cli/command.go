package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/pflag"

	"github.com/idelchi/dirt/internal/folder"
	"github.com/idelchi/dirt/internal/integration"
	"github.com/idelchi/dirt/internal/units"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

func help() {
	//nolint:forbidigo // Help output to console
	fmt.Println(heredoc.Doc(`
		dirt scans a directory and reports per-entry statistics (size, file
		count, folder depth and timestamps), sorted by a key of your choice.

		Usage:

			dirt --sort <key> [flags] [path]

		Positional Arguments:
		  path                   Directory to scan. Defaults to current directory if not specified.

		Sorting:
		  A sort order is mandatory; there is no default. Valid keys:
		  ` + strings.Join(folder.Keys(), ", ") + `

		Trimming:
		  With --trim, entries are DELETED from disk in the chosen sort order,
		  first entry first, until the total size fits the given target
		  (e.g. '900mb'). There is no undo.

		The '-i' flag outputs a shell integration script that pipes results
		through 'fzf' for interactive browsing.

		Flags:
	`))
	pflag.PrintDefaults()
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	var options folder.Options

	allowedOutputs := []string{"table", "csv", "json"}

	pflag.StringVarP(&options.Sort, "sort", "s", "", "Sort order (mandatory, e.g. largest, atime_asc)")
	pflag.StringVarP(&options.Trim, "trim", "t", "",
		"Delete entries in sort order until the total fits this size (e.g. 900mb)")
	pflag.IntVarP(&options.Level, "level", "l", 0, "Sub-folder depth to group entries by (0=immediate children)")
	pflag.StringVarP(&options.Output, "output", "o", "table", "Output format: table, csv or json")
	pflag.IntVarP(&options.Precision, "precision", "p", 2, "Decimal precision for human-readable sizes (0-11)")
	pflag.BoolVar(&options.NoHuman, "no-human", false, "Print raw byte and timestamp values")
	pflag.StringVar(&options.TimeFormat, "time-format", folder.DefaultTimeFormat, "Layout for humanized timestamps")
	pflag.BoolVar(&options.Debug, "debug", false, "Enable debug output")
	pflag.BoolVarP(&options.Version, "version", "v", false, "Show version and exit")
	pflag.BoolVarP(&options.Integration, "init", "i", false, "Output init script for shell usage")

	pflag.CommandLine.SortFlags = false
	pflag.Usage = help
	pflag.Parse()

	if options.Version {
		//nolint:forbidigo // Version output to console
		fmt.Println(c.version)

		return nil
	}

	if options.Integration {
		rendered, err := integration.Render()
		if err != nil {
			return fmt.Errorf("rendering integration script: %w", err)
		}

		//nolint:forbidigo // Integration script output to console
		fmt.Println(rendered)

		return nil
	}

	if !slices.Contains(allowedOutputs, options.Output) {
		return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
	}

	if options.Level < 0 {
		return errors.New("level cannot be negative")
	}

	if options.Precision < 0 || options.Precision > units.MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d", units.MaxPrecision)
	}

	// Fail fast on a missing or unknown sort key
	if _, err := folder.ParseSortBy(options.Sort); err != nil {
		return err
	}

	// Validate the trim target before any scanning happens
	if options.Trim != "" {
		if _, err := units.Parse(options.Trim); err != nil {
			return fmt.Errorf("invalid trim target: %w", err)
		}
	}

	if pflag.NArg() == 0 {
		options.Path = "."
	} else {
		options.Path = pflag.Args()[0]
	}

	return logic(options)
}
