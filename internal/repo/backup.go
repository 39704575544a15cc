package repo

import (
	"time"

	"github.com/hapax/vaultbak/internal/archive"
	"github.com/hapax/vaultbak/internal/filter"
	"github.com/hapax/vaultbak/internal/snapshot"
	"github.com/hapax/vaultbak/internal/store"
	"github.com/hapax/vaultbak/internal/ui"
)

// BackupOptions bundles the options a backup invocation needs: which
// archive to append to, the filter configuration, and the error/clock
// overrides BackupSnapshot and Scan accept.
type BackupOptions struct {
	ArchiveName string
	Filters     filter.Config
	Abort       bool
	Printer     *ui.Printer
	Now         func() time.Time
}

// Backup implements §2's control flow for a backup: scan the live data
// folder, consult the target archive's previous snapshot to skip
// unchanged files, back up the rest into the store, and serialise the
// resulting snapshot into the archive.
func (r *Repository) Backup(dataFolderPath string, opts BackupOptions) (string, *snapshot.Snapshot, error) {
	archiveName := opts.ArchiveName
	if archiveName == "" {
		archiveName = archive.DefaultName
	}
	a, err := r.History.Archive(archiveName, true)
	if err != nil {
		return "", nil, err
	}

	var prev *snapshot.Snapshot
	if lastName, err := a.GetLastSnapshotName(); err == nil {
		prev, err = loadSnapshot(a, lastName)
		if err != nil {
			return "", nil, err
		}
	}

	data, err := snapshot.Scan(dataFolderPath, &snapshot.ScanConfig{
		Filters: opts.Filters,
		Now:     opts.Now,
		Printer: opts.Printer,
		Abort:   opts.Abort,
	})
	if err != nil {
		return "", nil, err
	}

	idx := store.NewIndex()
	if err := r.Store.BackupSnapshot(idx, dataFolderPath, data, prev, store.BackupOptions{
		Abort:   opts.Abort,
		Printer: opts.Printer,
	}); err != nil {
		return "", nil, err
	}

	name, err := saveSnapshot(a, data)
	if err != nil {
		return "", nil, err
	}
	return name, data, nil
}
