// Package fsutil is the filesystem adapter §4.3 specifies: a one-level
// directory listing (callers recurse), whole-file hashing, copying without attribute preservation,
// and the time/attribute setters restore needs. It is grounded on restic's
// internal/fs package, simplified to the subset this spec's data folder
// and store both need -- regular files and directories only, since §1
// explicitly places symlink reproduction out of scope.
package fsutil

import (
	"os"
	"time"

	"github.com/hapax/vaultbak/internal/errors"
)

// Entry describes one direct child of a directory, as produced by
// WalkShallow.
type Entry struct {
	Name          string
	IsFile        bool
	IsDir         bool
	IsSymlink     bool
	Size          uint64
	AccessTime    time.Time
	ModTime       time.Time
	AttributeMask uint32
}

// IOError is the single error category §4.3 mandates for every filesystem
// adapter failure; the caller decides whether it is abort-or-continue.
type IOError struct {
	Reason string
	Path   string
	Err    error
}

func (e *IOError) Error() string {
	return e.Reason + ": " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func ioError(reason, path string, err error) error {
	return errors.Categorize(errors.IO, &IOError{Reason: reason, Path: path, Err: err})
}

// WalkShallow lists the direct children of dir. Symbolic links are reported
// with IsSymlink set and both IsFile and IsDir false; they are never
// followed.
func WalkShallow(dir string) ([]Entry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, ioError("open directory", dir, err)
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, ioError("read directory", dir, err)
	}

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		path := join(dir, name)
		fi, err := os.Lstat(path)
		if err != nil {
			return nil, ioError("stat", path, err)
		}

		e := Entry{
			Name:       name,
			ModTime:    fi.ModTime(),
			AccessTime: accessTime(fi),
		}

		switch {
		case fi.Mode()&os.ModeSymlink != 0:
			e.IsSymlink = true
		case fi.IsDir():
			e.IsDir = true
		case fi.Mode().IsRegular():
			e.IsFile = true
			e.Size = uint64(fi.Size())
		default:
			// devices, sockets, fifos: not represented by this spec's model.
			continue
		}

		e.AttributeMask = attributeMask(fi)
		entries = append(entries, e)
	}

	return entries, nil
}

func join(dir, name string) string {
	if dir == "" {
		return name
	}
	if dir[len(dir)-1] == '/' {
		return dir + name
	}
	return dir + "/" + name
}
