package repo

import "github.com/hapax/vaultbak/internal/store"

// Check implements §4.5's adopted --check behaviour over a resolved
// archive/snapshot.
func (r *Repository) Check(archiveName, snapshotName string) ([]store.CheckIssue, error) {
	a, name, err := r.ResolveArchiveAndSnapshot(archiveName, snapshotName)
	if err != nil {
		return nil, err
	}
	snap, err := loadSnapshot(a, name)
	if err != nil {
		return nil, err
	}
	return r.Store.Check(snap), nil
}
