//go:build !windows

package fsutil

import (
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/unix"

	"github.com/hapax/vaultbak/internal/errors"
)

// accessTime extracts the last-access time from a platform-specific stat
// result, falling back to the modification time when the underlying stat_t
// is unavailable (e.g. under certain FUSE filesystems).
func accessTime(fi os.FileInfo) time.Time {
	if st, ok := fi.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Atim.Sec, st.Atim.Nsec)
	}
	return fi.ModTime()
}

// attributeMask reports the non-Windows attribute bits this repository
// tracks: just the read-only bit, synthesized from the owner-write
// permission bit so that restore can round-trip it without needing uid/gid.
func attributeMask(fi os.FileInfo) uint32 {
	if fi.Mode()&0o200 == 0 {
		return attrReadOnly
	}
	return 0
}

// SetTimes sets the access and modification times of path without
// following symlinks, grounded on restic's internal/fs/node_linux.go use of
// golang.org/x/sys/unix.UtimesNanoAt with AT_SYMLINK_NOFOLLOW.
func SetTimes(path string, atime, mtime time.Time) error {
	times := []unix.Timespec{
		unix.NsecToTimespec(atime.UnixNano()),
		unix.NsecToTimespec(mtime.UnixNano()),
	}
	if err := unix.UtimesNanoAt(unix.AT_FDCWD, path, times, unix.AT_SYMLINK_NOFOLLOW); err != nil {
		return ioError("set times", path, errors.Wrap(err, "UtimesNanoAt"))
	}
	return nil
}
