package store

import (
	"github.com/hapax/vaultbak/internal/errors"
	"github.com/hapax/vaultbak/internal/fsutil"
	"github.com/hapax/vaultbak/internal/snapshot"
	"github.com/hapax/vaultbak/internal/ui"
)

// BackupOptions controls a backup's error policy and progress reporting.
type BackupOptions struct {
	Abort   bool
	Printer *ui.Printer
}

func (o *BackupOptions) printer() *ui.Printer {
	if o.Printer != nil {
		return o.Printer
	}
	return ui.NewPrinter(false)
}

// BackupFile implements §4.5's single-file backup: hash the live file,
// fill in the scanned File record's content fields, derive its blob path,
// and copy it into the store if not already present.
func (s *Store) BackupFile(idx *Index, absDataPath string, f *snapshot.File) error {
	hash, byteCount, err := fsutil.HashFile(absDataPath)
	if err != nil {
		return err
	}
	f.Hash = hash
	f.ByteCount = byteCount
	return s.Put(idx, absDataPath, hash, byteCount)
}

// BackupSnapshot implements §4.5's "backup a snapshot against a previous
// snapshot": each file in data is either adopted from prev by the
// fast-path identity test, or hashed and copied fresh. Per-file failures
// are reported through opts.Printer and skipped unless opts.Abort is set,
// matching §7's error policy for per-file operations.
func (s *Store) BackupSnapshot(idx *Index, dataFolderPath string, data *snapshot.Snapshot, prev *snapshot.Snapshot, opts BackupOptions) error {
	for _, f := range data.Files {
		folder := data.Folders[f.FolderIndex]
		absPath := fsutil.Join(dataFolderPath, folder.Path, f.Name)

		if prevFile, ok := adoptable(prev, folder.Path, f); ok {
			f.Hash = prevFile.Hash
			continue
		}

		if err := s.BackupFile(idx, absPath, f); err != nil {
			wrapped := errors.Wrapf(err, "backup %s", data.RelativePath(f))
			if opts.Abort {
				return wrapped
			}
			opts.printer().Warn("%v", wrapped)
			continue
		}
	}
	return nil
}

// adoptable implements the fast-path test of §4.4: same relative path,
// same byte_count, same modification_time. Hash equality is not checked;
// the caller adopts prev's hash unconditionally on a match.
func adoptable(prev *snapshot.Snapshot, folderPath string, f *snapshot.File) (*snapshot.File, bool) {
	if prev == nil {
		return nil, false
	}
	prevFile, ok := prev.FileByPath(folderPath, f.Name)
	if !ok {
		return nil, false
	}
	if snapshot.SameContentIdentity(prevFile, f) {
		return prevFile, true
	}
	return nil, false
}
