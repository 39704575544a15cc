// Package repo implements §4.7's Repository orchestration: it composes a
// History and a Store over one on-disk repository root and dispatches the
// six top-level operations (backup, check, compare, restore, find, list),
// each resolving an Archive and Snapshot from caller-supplied options.
// Grounded on restic's repository.go/server.go composition of backend +
// index + key, simplified to this spec's unencrypted, single-backend
// repository.
package repo

import (
	"github.com/hapax/vaultbak/internal/archive"
	"github.com/hapax/vaultbak/internal/errors"
	"github.com/hapax/vaultbak/internal/store"
)

// Repository composes the archive History and the blob Store rooted at
// the same on-disk directory.
type Repository struct {
	Root    string
	History *archive.History
	Store   *store.Store
}

// Open opens (or, if forBackup, creates) a repository at root. Per §3, a
// read-only operation treats a missing FILE/ or SNAPSHOT/ subtree as an
// error; backup creates both along with the default archive.
func Open(root string, forBackup bool, defaultArchive string) (*Repository, error) {
	h, err := archive.OpenHistory(root, forBackup, defaultArchive)
	if err != nil {
		return nil, err
	}

	s := store.Open(root)
	if err := s.EnsureExists(forBackup); err != nil {
		return nil, err
	}

	return &Repository{Root: root, History: h, Store: s}, nil
}

// ResolveArchiveAndSnapshot resolves the named (or default) archive and
// the named (or latest) snapshot within it, for the read-only commands
// (check/compare/restore) that §6 describes as taking an optional
// snapshot name defaulting to latest.
func (r *Repository) ResolveArchiveAndSnapshot(archiveName, snapshotName string) (*archive.Archive, string, error) {
	if archiveName == "" {
		archiveName = archive.DefaultName
	}
	a, err := r.History.Archive(archiveName, false)
	if err != nil {
		return nil, "", err
	}
	name, err := a.ResolveSnapshotName(snapshotName)
	if err != nil {
		return nil, "", err
	}
	return a, name, nil
}

var errEmptyRepository = errors.Categorize(errors.Policy, errors.New("repository has no archives"))
