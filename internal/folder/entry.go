package folder

import (
	"time"

	"github.com/idelchi/dirt/internal/units"
)

// DefaultTimeFormat is the layout used to humanize entry timestamps.
const DefaultTimeFormat = "2006 Jan 02 15:04"

// Entry holds the aggregated statistics of a single scanned item.
type Entry struct {
	// Name is the path of the item relative to the scan root, in slash format.
	Name string `json:"name"`
	// Size is the recursive size of the item in bytes.
	Size int64 `json:"size"`
	// NumFiles is the number of regular files the item contains.
	NumFiles int64 `json:"num_of_files"`
	// Depth is the maximum sub-folder nesting level beneath the item.
	Depth int `json:"depth"`
	// Atime is the access time of the item itself, in unix seconds.
	Atime int64 `json:"atime"`
	// Mtime is the modification time of the item itself, in unix seconds.
	Mtime int64 `json:"mtime"`
	// Ctime is the change time of the item itself, in unix seconds.
	Ctime int64 `json:"ctime"`
	// Error is set when the item could not be fully scanned. Its statistics
	// then cover only the readable part of the subtree.
	Error string `json:"error,omitempty"`
}

// HumanEntry is an Entry with its size and timestamps rendered as strings.
type HumanEntry struct {
	Name     string `json:"name"`
	Size     string `json:"size"`
	NumFiles int64  `json:"num_of_files"`
	Depth    int    `json:"depth"`
	Atime    string `json:"atime"`
	Mtime    string `json:"mtime"`
	Ctime    string `json:"ctime"`
	Error    string `json:"error,omitempty"`
}

// Humanize renders the entry's size with the given decimal precision and its
// timestamps with the given time layout (UTC).
func (e Entry) Humanize(precision int, timeFormat string) HumanEntry {
	if timeFormat == "" {
		timeFormat = DefaultTimeFormat
	}

	format := func(ts int64) string {
		return time.Unix(ts, 0).UTC().Format(timeFormat)
	}

	return HumanEntry{
		Name:     e.Name,
		Size:     units.Format(e.Size, precision),
		NumFiles: e.NumFiles,
		Depth:    e.Depth,
		Atime:    format(e.Atime),
		Mtime:    format(e.Mtime),
		Ctime:    format(e.Ctime),
		Error:    e.Error,
	}
}
