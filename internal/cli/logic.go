package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/dirt/internal/folder"
	"github.com/idelchi/dirt/internal/units"
)

func logic(options folder.Options) error {
	enableProgress := strings.ToLower(options.Output) != "json" &&
		!options.Debug &&
		isatty.IsTerminal(os.Stderr.Fd())

	ctx := context.Background()

	// Simple progress callback that prints directly to stderr
	var progressHook func(items, bytes int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(items, bytes int64) {
			msg := fmt.Sprintf("Scanning… %d entries, %s",
				items, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	result, err := folder.Scan(ctx, options, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	if options.Trim != "" {
		target, err := units.Parse(options.Trim)
		if err != nil {
			return fmt.Errorf("invalid trim target: %w", err)
		}

		deleted, errs := result.Trim(target)

		for _, err := range errs {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}

		return PrintTrim(result, deleted, options, os.Stdout)
	}

	switch strings.ToLower(options.Output) {
	case "json":
		return PrintJSON(result, options, os.Stdout)
	case "csv":
		return PrintCSV(result, options, os.Stdout)
	case "table":
		return PrintTable(result, options, os.Stdout)
	default:
		return fmt.Errorf("unknown output format: %s", options.Output)
	}
}
