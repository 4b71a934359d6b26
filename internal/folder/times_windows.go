//go:build windows

package folder

import (
	"io/fs"
	"syscall"
)

// fileTimes extracts access, modification and creation times in unix
// seconds from a stat result. Windows has no change time, so the creation
// time stands in for ctime. Sub-second precision is discarded.
func fileTimes(info fs.FileInfo) (atime, mtime, ctime int64) {
	if attrs, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		return attrs.LastAccessTime.Nanoseconds() / 1e9,
			attrs.LastWriteTime.Nanoseconds() / 1e9,
			attrs.CreationTime.Nanoseconds() / 1e9
	}

	modified := info.ModTime().Unix()

	return modified, modified, modified
}
