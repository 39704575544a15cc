package store

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/hapax/vaultbak/internal/errors"
	"github.com/hapax/vaultbak/internal/fsutil"
	"github.com/hapax/vaultbak/internal/snapshot"
	"github.com/hapax/vaultbak/internal/ui"
)

// RestoreOptions controls a restore's error policy, progress reporting, and
// dry-run mode.
type RestoreOptions struct {
	Abort   bool
	DryRun  bool
	Printer *ui.Printer
}

func (o *RestoreOptions) printer() *ui.Printer {
	if o.Printer != nil {
		return o.Printer
	}
	return ui.NewPrinter(false)
}

// Restore implements §4.5's "restore a snapshot a against the live data
// snapshot d": copy-and-stamp every file in a that differs from d, then
// prune files and now-empty folders present in d but absent from a.
// dataFolderPath is the absolute root both a and d are relative to; live
// is a fresh Scan of that same root.
func (s *Store) Restore(a *snapshot.Snapshot, live *snapshot.Snapshot, dataFolderPath string, opts RestoreOptions) error {
	for _, f := range a.Files {
		folder := a.Folders[f.FolderIndex]
		if liveFile, ok := live.FileByPath(folder.Path, f.Name); ok && snapshot.SameContentIdentity(liveFile, f) {
			continue
		}

		absPath := fsutil.Join(dataFolderPath, folder.Path, f.Name)
		if opts.DryRun {
			opts.printer().Info("would restore %s", a.RelativePath(f))
			continue
		}
		if err := s.restoreFile(absPath, f); err != nil {
			wrapped := errors.Wrapf(err, "restore %s", a.RelativePath(f))
			if opts.Abort {
				return wrapped
			}
			opts.printer().Warn("%v", wrapped)
		}
	}

	if opts.DryRun {
		return nil
	}
	return prune(a, live, dataFolderPath, opts)
}

// restoreFile copies a blob to a staging file alongside the destination,
// then renames it into place, so a crash mid-copy never leaves a
// half-written file at absPath. Grounded on the spec's own staging
// convention (<dst>.<uuid>.partial).
func (s *Store) restoreFile(absPath string, f *snapshot.File) error {
	if err := clearReadOnlyIfPresent(absPath); err != nil {
		return err
	}

	staging := absPath + "." + uuid.NewString() + ".partial"
	if err := fsutil.MkdirRecursive(parentDir(staging)); err != nil {
		return err
	}

	data, err := s.Get(f.Hash, f.ByteCount)
	if err != nil {
		return err
	}
	if err := fsutil.WriteAll(staging, data); err != nil {
		return err
	}
	if err := fsutil.Rename(staging, absPath); err != nil {
		return err
	}

	if err := fsutil.SetTimes(absPath, f.AccessTime, f.ModificationTime); err != nil {
		return err
	}
	return fsutil.SetAttributes(absPath, f.AttributeMask)
}

func clearReadOnlyIfPresent(absPath string) error {
	if !fsutil.Exists(absPath) {
		return nil
	}
	return fsutil.ClearReadOnly(absPath)
}

// prune implements §4.5's "remove extraneous live files" pass: files in
// live but not in a are deleted first, then folders in live but not in a
// are removed provided they are now empty, matching the "files before
// folders" ordering invariant.
func prune(a *snapshot.Snapshot, live *snapshot.Snapshot, dataFolderPath string, opts RestoreOptions) error {
	for _, f := range live.Files {
		folder := live.Folders[f.FolderIndex]
		if _, ok := a.FileByPath(folder.Path, f.Name); ok {
			continue
		}
		absPath := fsutil.Join(dataFolderPath, folder.Path, f.Name)
		if err := fsutil.RemoveFile(absPath); err != nil {
			wrapped := errors.Wrapf(err, "prune %s", live.RelativePath(f))
			if opts.Abort {
				return wrapped
			}
			opts.printer().Warn("%v", wrapped)
		}
	}

	// Deepest folders first so a parent only attempts removal after its
	// children have already been pruned away.
	extraneous := make([]*snapshot.Folder, 0, len(live.Folders))
	for _, folder := range live.Folders {
		if folder.IsRoot() {
			continue
		}
		if _, ok := a.FolderByPath(folder.Path); !ok {
			extraneous = append(extraneous, folder)
		}
	}
	sort.Slice(extraneous, func(i, j int) bool {
		return strings.Count(extraneous[i].Path, "/") > strings.Count(extraneous[j].Path, "/")
	})

	for _, folder := range extraneous {
		absPath := fsutil.Join(dataFolderPath, folder.Path)
		empty, err := fsutil.IsEmptyDir(absPath)
		if err != nil {
			wrapped := errors.Wrapf(err, "check %s", folder.Path)
			if opts.Abort {
				return wrapped
			}
			opts.printer().Warn("%v", wrapped)
			continue
		}
		if !empty {
			continue
		}
		if err := fsutil.Rmdir(absPath); err != nil {
			wrapped := errors.Wrapf(err, "prune %s", folder.Path)
			if opts.Abort {
				return wrapped
			}
			opts.printer().Warn("%v", wrapped)
		}
	}

	return nil
}
