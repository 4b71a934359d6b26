package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/dirt/internal/folder"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// report is the JSON envelope around a scan result.
type report struct {
	Root       string        `json:"root"`
	SortBy     folder.SortBy `json:"sort_by"`
	TotalSize  int64         `json:"total_size"`
	TotalItems int           `json:"total_items"`
	Errors     int64         `json:"errors"`
	Elapsed    time.Duration `json:"elapsed"`
	Entries    any           `json:"entries"`
}

// entries returns the result's entries, humanized unless raw output was
// requested.
func entries(result *folder.Result, options folder.Options) any {
	if options.NoHuman {
		return result.Items()
	}

	return result.HumanItems(options.Precision, options.TimeFormat)
}

// rows renders the result's entries as string cells in column order
// name, size, depth, num_of_files, atime, mtime, ctime.
func rows(result *folder.Result, options folder.Options) [][]string {
	if options.NoHuman {
		items := result.Items()
		out := make([][]string, 0, len(items))

		for _, item := range items {
			out = append(out, []string{
				item.Name,
				strconv.FormatInt(item.Size, 10),
				strconv.Itoa(item.Depth),
				strconv.FormatInt(item.NumFiles, 10),
				strconv.FormatInt(item.Atime, 10),
				strconv.FormatInt(item.Mtime, 10),
				strconv.FormatInt(item.Ctime, 10),
			})
		}

		return out
	}

	items := result.HumanItems(options.Precision, options.TimeFormat)
	out := make([][]string, 0, len(items))

	for _, item := range items {
		out = append(out, []string{
			item.Name,
			item.Size,
			strconv.Itoa(item.Depth),
			strconv.FormatInt(item.NumFiles, 10),
			item.Atime,
			item.Mtime,
			item.Ctime,
		})
	}

	return out
}

// PrintJSON outputs the scan result in JSON format.
func PrintJSON(result *folder.Result, options folder.Options, writer io.Writer) error {
	data, err := json.MarshalIndent(report{
		Root:       result.Root(),
		SortBy:     result.SortedBy(),
		TotalSize:  result.TotalSize(),
		TotalItems: result.Len(),
		Errors:     result.Errors(),
		Elapsed:    result.Elapsed(),
		Entries:    entries(result, options),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintCSV outputs the scan result in CSV format, one line per entry.
func PrintCSV(result *folder.Result, options folder.Options, writer io.Writer) error {
	out := csv.NewWriter(writer)

	header := []string{"name", "size", "depth", "num_of_files", "atime", "mtime", "ctime"}
	if err := out.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	if err := out.WriteAll(rows(result, options)); err != nil {
		return fmt.Errorf("writing CSV rows: %w", err)
	}

	out.Flush()

	return out.Error()
}

// PrintTable outputs the scan result in human-readable table format.
func PrintTable(result *folder.Result, options folder.Options, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "NAME\tSIZE\tDEPTH\tFILES\tATIME\tMTIME\tCTIME")

	for _, row := range rows(result, options) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row[0], row[1], row[2], row[3], row[4], row[5], row[6])
	}

	printSummary(w, result)

	return w.Flush()
}

// PrintTrim outputs the deleted entries followed by a summary of the freed
// space and what remains.
func PrintTrim(result *folder.Result, deleted []folder.Entry, options folder.Options, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "DELETED\tSIZE\tFILES")

	var freed int64

	for _, entry := range deleted {
		freed += entry.Size

		size := strconv.FormatInt(entry.Size, 10)
		if !options.NoHuman {
			size = entry.Humanize(options.Precision, options.TimeFormat).Size
		}

		fmt.Fprintf(w, "%s\t%s\t%d\n", entry.Name, size, entry.NumFiles)
	}

	fmt.Fprintln(w, "\nTrimmed:\t\t")
	fmt.Fprintf(w, "Deleted entries:\t%d\n", len(deleted))
	fmt.Fprintf(w, "Freed:\t%s (%d bytes)\n",
		humanize.IBytes(uint64(freed)), freed) //nolint:gosec // Sizes are non-negative

	printSummary(w, result)

	return w.Flush()
}

// printSummary writes the totals footer shared by table and trim output.
func printSummary(w io.Writer, result *folder.Result) {
	fmt.Fprintln(w, "\nStats:\t\t")
	fmt.Fprintf(w, "Entries:\t%d\n", result.Len())
	fmt.Fprintf(w, "Total size:\t%s (%d bytes)\n",
		humanize.IBytes(uint64(result.TotalSize())), result.TotalSize()) //nolint:gosec // Sizes are non-negative

	if result.Errors() > 0 {
		fmt.Fprintf(w, "Skipped:\t%d unreadable entries\n", result.Errors())
	}

	fmt.Fprintf(w, "\nElapsed:\t%v\n", result.Elapsed())
}
