//go:build darwin

package folder

import (
	"io/fs"
	"syscall"
)

// fileTimes extracts access, modification and change times in unix seconds
// from an lstat result. Sub-second precision is discarded.
func fileTimes(info fs.FileInfo) (atime, mtime, ctime int64) {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		return stat.Atimespec.Sec, stat.Mtimespec.Sec, stat.Ctimespec.Sec
	}

	modified := info.ModTime().Unix()

	return modified, modified, modified
}
