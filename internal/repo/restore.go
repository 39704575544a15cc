package repo

import (
	"github.com/hapax/vaultbak/internal/filter"
	"github.com/hapax/vaultbak/internal/snapshot"
	"github.com/hapax/vaultbak/internal/store"
)

// Restore implements §4.5's restore: resolve the target archive/snapshot,
// scan the live data folder for comparison, then copy/stamp/prune per
// store.Restore.
func (r *Repository) Restore(archiveName, snapshotName, dataFolderPath string, opts store.RestoreOptions) error {
	a, name, err := r.ResolveArchiveAndSnapshot(archiveName, snapshotName)
	if err != nil {
		return err
	}
	target, err := loadSnapshot(a, name)
	if err != nil {
		return err
	}

	live, err := snapshot.Scan(dataFolderPath, &snapshot.ScanConfig{
		Filters: filter.Config{
			FolderFilters:           target.FolderFilters,
			FolderFilterIsInclusive: target.FolderFilterIsInclusive,
			FileFilters:             target.FileFilters,
			FileFilterIsInclusive:   target.FileFilterIsInclusive,
			SelectedFileFilters:     target.SelectedFileFilters,
		},
	})
	if err != nil {
		return err
	}

	return r.Store.Restore(target, live, dataFolderPath, opts)
}
