package repo

import (
	"path"
	"sort"
	"time"

	"github.com/hapax/vaultbak/internal/errors"
)

// SnapshotSummary is one archive's snapshot as reported by List: enough to
// render SPEC_FULL.md's `list` table (time, folder/file counts, total
// stored bytes) without the caller re-loading the .dbs file itself.
type SnapshotSummary struct {
	Name        string
	Time        time.Time
	FolderCount int
	FileCount   int
	TotalBytes  uint64
}

// ArchiveSummary is one row of the `list` command's output: an archive
// and the snapshots it holds, per §4.7's "find and list additionally
// support glob filters over archive names and snapshot names".
type ArchiveSummary struct {
	ArchiveName string
	Snapshots   []SnapshotSummary
}

// List enumerates archives matching archiveGlob (all if empty) and, for
// each, the snapshots matching snapshotGlob (all if empty).
func (r *Repository) List(archiveGlob, snapshotGlob string) ([]ArchiveSummary, error) {
	names := r.History.ArchiveNames()
	if len(names) == 0 {
		return nil, errEmptyRepository
	}
	sort.Strings(names)

	var out []ArchiveSummary
	for _, name := range names {
		if archiveGlob != "" {
			matched, err := path.Match(archiveGlob, name)
			if err != nil {
				return nil, errors.Categorize(errors.Usage, errors.Wrap(err, "archive glob"))
			}
			if !matched {
				continue
			}
		}

		a, err := r.History.Archive(name, false)
		if err != nil {
			return nil, err
		}

		var snaps []SnapshotSummary
		for _, sn := range a.SnapshotNames() {
			if snapshotGlob != "" {
				matched, err := path.Match(snapshotGlob, sn)
				if err != nil {
					return nil, errors.Categorize(errors.Usage, errors.Wrap(err, "snapshot glob"))
				}
				if !matched {
					continue
				}
			}

			snap, err := loadSnapshot(a, sn)
			if err != nil {
				return nil, err
			}
			var total uint64
			for _, f := range snap.Files {
				total += f.ByteCount
			}
			snaps = append(snaps, SnapshotSummary{
				Name:        sn,
				Time:        snap.Time,
				FolderCount: len(snap.Folders),
				FileCount:   len(snap.Files),
				TotalBytes:  total,
			})
		}

		out = append(out, ArchiveSummary{ArchiveName: name, Snapshots: snaps})
	}

	return out, nil
}
