//go:build windows

package fsutil

import (
	"os"
	"syscall"
	"time"
)

func accessTime(fi os.FileInfo) time.Time {
	if st, ok := fi.Sys().(*syscall.Win32FileAttributeData); ok {
		return time.Unix(0, st.LastAccessTime.Nanoseconds())
	}
	return fi.ModTime()
}

func attributeMask(fi os.FileInfo) uint32 {
	if st, ok := fi.Sys().(*syscall.Win32FileAttributeData); ok && st.FileAttributes&syscall.FILE_ATTRIBUTE_READONLY != 0 {
		return attrReadOnly
	}
	return 0
}

// SetTimes sets the access and modification times of path on Windows,
// where clearing FILE_ATTRIBUTE_READONLY first (see ClearReadOnly) is
// required before an existing file's times can be changed.
func SetTimes(path string, atime, mtime time.Time) error {
	if err := os.Chtimes(path, atime, mtime); err != nil {
		return ioError("set times", path, err)
	}
	return nil
}
