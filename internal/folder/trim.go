package folder

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// Trim deletes entries from disk in the active sort order, head first,
// until the total size of the remaining entries is no larger than target
// bytes or the entries run out. There is no undo.
//
// It returns the deleted entries in deletion order. An entry whose removal
// fails is reported in the error slice and skipped: it stays in the result,
// its size still counts toward the total, and trimming moves on to the next
// candidate. A result already at or below the target is left untouched, so
// repeating a trim with the same target deletes nothing.
func (r *Result) Trim(target int64) ([]Entry, []error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if target < 0 {
		target = 0
	}

	var (
		deleted []Entry
		errs    []error
	)

	index := 0

	for r.totalSize > target && index < len(r.entries) {
		entry := r.entries[index]
		path := filepath.Join(r.root, filepath.FromSlash(entry.Name))

		// Removes files and whole directory subtrees alike; a path that
		// already vanished counts as removed.
		if err := os.RemoveAll(path); err != nil {
			errs = append(errs, fmt.Errorf("removing %q: %w", path, err))
			index++

			continue
		}

		r.entries = slices.Delete(r.entries, index, index+1)
		r.totalSize -= entry.Size
		deleted = append(deleted, entry)
	}

	return deleted, errs
}
