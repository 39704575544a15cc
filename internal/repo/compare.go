package repo

import (
	"github.com/hapax/vaultbak/internal/filter"
	"github.com/hapax/vaultbak/internal/snapshot"
	"github.com/hapax/vaultbak/internal/store"
)

// Compare implements §4.5's read-only compare between a resolved archived
// snapshot and a fresh scan of the live data folder. The filters passed
// are the archived snapshot's own, so the live scan observes the same
// scope the snapshot was taken under.
func (r *Repository) Compare(archiveName, snapshotName, dataFolderPath string) ([]store.Diff, error) {
	a, name, err := r.ResolveArchiveAndSnapshot(archiveName, snapshotName)
	if err != nil {
		return nil, err
	}
	archived, err := loadSnapshot(a, name)
	if err != nil {
		return nil, err
	}

	live, err := snapshot.Scan(dataFolderPath, &snapshot.ScanConfig{
		Filters: filter.Config{
			FolderFilters:           archived.FolderFilters,
			FolderFilterIsInclusive: archived.FolderFilterIsInclusive,
			FileFilters:             archived.FileFilters,
			FileFilterIsInclusive:   archived.FileFilterIsInclusive,
			SelectedFileFilters:     archived.SelectedFileFilters,
		},
	})
	if err != nil {
		return nil, err
	}

	return store.Compare(archived, live), nil
}
