package repo

import "path"

// FindMatch is one file found in a snapshot by Find.
type FindMatch struct {
	ArchiveName  string
	SnapshotName string
	Path         string
}

// Find greps file names across every snapshot of every archive matching
// archiveGlob and snapshotGlob, reporting those whose bare name matches
// namePattern (a glob), per §4.7.
func (r *Repository) Find(archiveGlob, snapshotGlob, namePattern string) ([]FindMatch, error) {
	summaries, err := r.List(archiveGlob, snapshotGlob)
	if err != nil {
		return nil, err
	}

	var matches []FindMatch
	for _, sum := range summaries {
		a, err := r.History.Archive(sum.ArchiveName, false)
		if err != nil {
			return nil, err
		}
		for _, sn := range sum.Snapshots {
			snap, err := loadSnapshot(a, sn.Name)
			if err != nil {
				return nil, err
			}
			for _, f := range snap.Files {
				if namePattern != "" {
					matched, err := path.Match(namePattern, f.Name)
					if err != nil {
						return nil, err
					}
					if !matched {
						continue
					}
				}
				matches = append(matches, FindMatch{
					ArchiveName:  sum.ArchiveName,
					SnapshotName: sn.Name,
					Path:         snap.RelativePath(f),
				})
			}
		}
	}
	return matches, nil
}
