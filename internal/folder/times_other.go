//go:build !linux && !darwin && !windows

package folder

import "io/fs"

// fileTimes falls back to the modification time for all three timestamps
// on platforms without a known stat layout.
func fileTimes(info fs.FileInfo) (atime, mtime, ctime int64) {
	modified := info.ModTime().Unix()

	return modified, modified, modified
}
