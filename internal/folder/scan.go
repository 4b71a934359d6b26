package folder

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charlievieth/fastwalk"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// logger provides conditional debug output.
type logger struct {
	enabled bool
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		//nolint:forbidigo // Debug output to console
		fmt.Printf(format, args...)
	}
}

// Options configures a scan and CLI behavior.
type Options struct {
	// Path is the directory to scan.
	Path string
	// Sort is the mandatory sort key (see Keys).
	Sort string
	// Level is the sub-folder depth at which entries are grouped
	// (0 = immediate children of the root).
	Level int
	// Trim is a human-readable target size; when set, entries are deleted
	// in sort order until the total fits.
	Trim string
	// Output represents output format (table, csv or json).
	Output string
	// Precision is the number of decimals for human-readable sizes.
	Precision int
	// NoHuman disables size and timestamp formatting.
	NoHuman bool
	// TimeFormat is the layout for humanized timestamps.
	TimeFormat string
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Version indicates whether to show version and exit.
	Version bool
	// Integration indicates whether to output integration script.
	Integration bool
}

// collector aggregates per-item statistics from concurrent fastwalk
// callbacks using a mutex.
type collector struct {
	mu         sync.Mutex // Protect concurrent access
	root       string
	level      int
	items      map[string]*Entry
	itemCount  int64
	totalBytes int64
	errorCount int64
}

// newCollector creates a collector for the given scan root and level.
func newCollector(root string, level int) *collector {
	return &collector{
		root:  root,
		level: level,
		items: make(map[string]*Entry),
	}
}

// addItem registers a new entry for an item discovered at the grouping
// level. Timestamps come from the item's own lstat; a plain file also
// contributes its size, a directory starts empty and is filled in by
// addFile and deepen as its subtree is walked.
func (c *collector) addItem(rel string, d fs.DirEntry) {
	entry := &Entry{Name: filepath.ToSlash(rel)}

	info, err := d.Info()
	if err != nil {
		// Vanished between discovery and stat: keep it listed with zero data
		entry.Error = err.Error()
	} else {
		entry.Atime, entry.Mtime, entry.Ctime = fileTimes(info)
		if !d.IsDir() {
			entry.Size = info.Size()
			entry.NumFiles = 1
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[entry.Name] = entry
	c.itemCount++
	c.totalBytes += entry.Size

	if err != nil {
		c.errorCount++
	}
}

// addFile accumulates a regular file into its owning item.
func (c *collector) addFile(key string, size int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[key]
	if !ok {
		return
	}

	entry.Size += size
	entry.NumFiles++
	c.totalBytes += size
}

// deepen raises the owning item's depth to the nesting level of a
// sub-folder found beneath it.
func (c *collector) deepen(key string, depth int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[key]
	if !ok {
		return
	}

	if depth > entry.Depth {
		entry.Depth = depth
	}
}

// fail records a path that could not be read. If it belongs to an item,
// the item is flagged as partially scanned; the scan itself continues.
func (c *collector) fail(path string, failure error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.errorCount++

	rel, err := filepath.Rel(c.root, path)
	if err != nil || rel == "." {
		return
	}

	if strings.Count(rel, string(filepath.Separator)) < c.level {
		return
	}

	if entry, ok := c.items[itemKey(rel, c.level)]; ok && entry.Error == "" {
		entry.Error = failure.Error()
	}
}

// finalize produces the Result from the collected items, sorted by the
// given key.
func (c *collector) finalize(sortBy SortBy) *Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := make([]Entry, 0, len(c.items))

	var totalSize int64

	for _, entry := range c.items {
		entries = append(entries, *entry)
		totalSize += entry.Size
	}

	sortEntries(entries, sortBy)

	return &Result{
		root:       c.root,
		entries:    entries,
		totalSize:  totalSize,
		sortBy:     sortBy,
		errorCount: c.errorCount,
	}
}

// itemKey returns the slash-format name of the item owning a path at the
// given relative location.
func itemKey(rel string, level int) string {
	parts := strings.Split(rel, string(filepath.Separator))
	if len(parts) > level+1 {
		parts = parts[:level+1]
	}

	return strings.Join(parts, "/")
}

// startProgressReporter invokes hook(items, bytes) on each tick until ctx is done.
//
//nolint:varnamelen // c is idiomatic for collector
func startProgressReporter(ctx context.Context, c *collector, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				c.mu.Lock()

				items := c.itemCount
				bytes := c.totalBytes
				c.mu.Unlock()
				hook(items, bytes)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Scan walks the directory tree at opt.Path and aggregates one entry per
// item at opt.Level, sorted by opt.Sort. It blocks until the whole tree
// has been visited.
//
// A missing root or invalid sort key aborts the scan. Unreadable or
// vanished entries do not: they are kept in the result with whatever
// statistics could be gathered, flagged through the Error field, and
// counted by Result.Errors.
//
// Symbolic links are never followed; like any other non-directory they are
// counted as a single leaf with their own lstat size, so link cycles
// cannot occur.
//
// The walk can be cancelled via ctx, in which case no result is returned.
// Progress updates are sent to progressHook if provided.
func Scan(ctx context.Context, opt Options, progressHook func(int64, int64)) (*Result, error) {
	log := logger{enabled: opt.Debug}

	sortBy, err := ParseSortBy(opt.Sort)
	if err != nil {
		return nil, err
	}

	if opt.Level < 0 {
		return nil, errors.New("level cannot be negative")
	}

	if opt.Path == "" {
		opt.Path = "."
	}

	// Normalize to native format to handle both C:/Path and C:\Path inputs
	root, err := filepath.Abs(filepath.Clean(opt.Path))
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}

	// validate path exists and is accessible
	if statInfo, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", opt.Path, err)
	} else if !statInfo.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", opt.Path)
	}

	collector := newCollector(root, opt.Level)

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Start progress reporter goroutine
	startProgressReporter(ctx, collector, progressHook, opt.ProgressInterval)

	start := time.Now()

	// Configure fastwalk
	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	// Walk directory with fastwalk (parallel traversal)
	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.printf("[debug]: error accessing path %s: %v\n", path, err)
			collector.fail(path, err)

			return nil
		}

		// Check cancellation periodically
		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			collector.fail(path, err)

			return nil
		}

		depth := strings.Count(rel, string(filepath.Separator))

		switch {
		case depth < opt.Level:
			// Above the grouping level: directories are only containers,
			// files this shallow are not items and are ignored.
			return nil

		case depth == opt.Level:
			log.printf("[debug]: item found: %s\n", rel)
			collector.addItem(rel, d)

			return nil
		}

		// Below the grouping level: accumulate into the owning item.
		key := itemKey(rel, opt.Level)

		if d.IsDir() {
			collector.deepen(key, depth-opt.Level)

			return nil
		}

		info, err := d.Info()
		if err != nil {
			collector.fail(path, err)

			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		collector.addFile(key, info.Size())

		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	result := collector.finalize(sortBy)
	result.elapsed = time.Since(start)

	log.printf("[debug]: scanned %d entries (%d bytes) in %v\n",
		result.Len(), result.TotalSize(), result.Elapsed())

	return result, nil
}
