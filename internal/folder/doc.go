// Package folder scans a directory tree and aggregates per-entry statistics.
//
// A scan produces one entry per item at the configured grouping level
// (immediate children of the root by default), with its recursive size,
// file count and maximum sub-folder depth. The resulting set can be
// re-sorted in memory without rescanning, and trimmed down to a target
// size by deleting entries in the active sort order.
package folder
