package folder

import (
	"fmt"
	"sync"
	"time"
)

// Result owns the entries produced by one scan. Membership only changes
// through Trim; ordering only through Resort. Both take exclusive access,
// so a Result is safe to share once published by Scan.
type Result struct {
	mu         sync.Mutex
	root       string
	entries    []Entry
	totalSize  int64
	sortBy     SortBy
	errorCount int64
	elapsed    time.Duration
}

// Root returns the absolute path the scan was rooted at.
func (r *Result) Root() string {
	return r.root
}

// Len returns the number of entries.
func (r *Result) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

// TotalSize returns the summed size of all entries in bytes.
func (r *Result) TotalSize() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.totalSize
}

// SortedBy returns the currently active sort order.
func (r *Result) SortedBy() SortBy {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.sortBy
}

// Errors returns the number of paths skipped due to read errors. It
// distinguishes a genuinely empty tree from one that could not be read.
func (r *Result) Errors() int64 {
	return r.errorCount
}

// Elapsed returns the wall-clock duration of the scan.
func (r *Result) Elapsed() time.Duration {
	return r.elapsed
}

// Items returns a copy of the entries in the active sort order, so the
// internal collection cannot be modified from outside.
func (r *Result) Items() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)

	return entries
}

// HumanItems returns the entries in the active sort order with sizes and
// timestamps rendered as strings.
func (r *Result) HumanItems(precision int, timeFormat string) []HumanEntry {
	items := r.Items()

	humanized := make([]HumanEntry, len(items))
	for i, entry := range items {
		humanized[i] = entry.Humanize(precision, timeFormat)
	}

	return humanized
}

// Resort re-orders the entries in place by the given key without touching
// the filesystem.
func (r *Result) Resort(key SortBy) error {
	if _, ok := comparators[key]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidSortKey, key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	sortEntries(r.entries, key)
	r.sortBy = key

	return nil
}
