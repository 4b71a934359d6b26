package folder

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// SortBy identifies one of the supported orderings of a scan result.
type SortBy string

// Supported sort orders. Timestamp orders sort on the entry's own metadata,
// the remaining ones on the aggregated statistics.
const (
	AtimeAsc   SortBy = "atime_asc"
	AtimeDesc  SortBy = "atime_desc"
	MtimeAsc   SortBy = "mtime_asc"
	MtimeDesc  SortBy = "mtime_desc"
	CtimeAsc   SortBy = "ctime_asc"
	CtimeDesc  SortBy = "ctime_desc"
	Smallest   SortBy = "smallest"
	Largest    SortBy = "largest"
	LeastFiles SortBy = "least_files"
	MostFiles  SortBy = "most_files"
	LeastDepth SortBy = "least_depth"
	MostDepth  SortBy = "most_depth"
)

// ErrInvalidSortKey is returned when an unrecognized sort key is supplied.
var ErrInvalidSortKey = errors.New("invalid sort key")

// comparators maps each sort key to its primary comparison function.
//
//nolint:gochecknoglobals // Comparator lookup table
var comparators = map[SortBy]func(a, b Entry) int{
	AtimeAsc:   func(a, b Entry) int { return cmp.Compare(a.Atime, b.Atime) },
	AtimeDesc:  func(a, b Entry) int { return cmp.Compare(b.Atime, a.Atime) },
	MtimeAsc:   func(a, b Entry) int { return cmp.Compare(a.Mtime, b.Mtime) },
	MtimeDesc:  func(a, b Entry) int { return cmp.Compare(b.Mtime, a.Mtime) },
	CtimeAsc:   func(a, b Entry) int { return cmp.Compare(a.Ctime, b.Ctime) },
	CtimeDesc:  func(a, b Entry) int { return cmp.Compare(b.Ctime, a.Ctime) },
	Smallest:   func(a, b Entry) int { return cmp.Compare(a.Size, b.Size) },
	Largest:    func(a, b Entry) int { return cmp.Compare(b.Size, a.Size) },
	LeastFiles: func(a, b Entry) int { return cmp.Compare(a.NumFiles, b.NumFiles) },
	MostFiles:  func(a, b Entry) int { return cmp.Compare(b.NumFiles, a.NumFiles) },
	LeastDepth: func(a, b Entry) int { return cmp.Compare(a.Depth, b.Depth) },
	MostDepth:  func(a, b Entry) int { return cmp.Compare(b.Depth, a.Depth) },
}

// ParseSortBy validates a sort key string. There is no default order:
// an empty or unrecognized key is an error.
func ParseSortBy(key string) (SortBy, error) {
	sortBy := SortBy(strings.ToLower(strings.TrimSpace(key)))
	if _, ok := comparators[sortBy]; !ok {
		return "", fmt.Errorf("%w: %q (valid keys: %s)", ErrInvalidSortKey, key, strings.Join(Keys(), ", "))
	}

	return sortBy, nil
}

// Keys returns all valid sort keys in lexical order.
func Keys() []string {
	keys := make([]string, 0, len(comparators))
	for key := range comparators {
		keys = append(keys, string(key))
	}

	slices.Sort(keys)

	return keys
}

// sortEntries orders entries by the given key, breaking ties on name
// ascending so equal primary keys still produce deterministic output.
func sortEntries(entries []Entry, key SortBy) {
	compare := comparators[key]

	slices.SortFunc(entries, func(a, b Entry) int {
		if c := compare(a, b); c != 0 {
			return c
		}

		return strings.Compare(a.Name, b.Name)
	})
}
