//go:build linux

package folder

import (
	"io/fs"
	"syscall"
)

// fileTimes extracts access, modification and change times in unix seconds
// from an lstat result. Sub-second precision is discarded.
func fileTimes(info fs.FileInfo) (atime, mtime, ctime int64) {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		return stat.Atim.Sec, stat.Mtim.Sec, stat.Ctim.Sec
	}

	modified := info.ModTime().Unix()

	return modified, modified, modified
}
