package store

import "github.com/hapax/vaultbak/internal/snapshot"

// DiffKind enumerates the report categories §4.5's compare operation names.
type DiffKind int

const (
	MissingArchiveFile DiffKind = iota
	ChangedArchiveFile
	MissingArchiveFolder
	MissingDataFile
	MissingDataFolder
)

func (k DiffKind) String() string {
	switch k {
	case MissingArchiveFile:
		return "Missing archive file"
	case ChangedArchiveFile:
		return "Changed archive file"
	case MissingArchiveFolder:
		return "Missing archive folder"
	case MissingDataFile:
		return "Missing data file"
	case MissingDataFolder:
		return "Missing data folder"
	default:
		return "unknown"
	}
}

// Diff is one reported difference between a snapshot and the live data
// folder.
type Diff struct {
	Kind DiffKind
	Path string
}

// Compare implements §4.5's read-only compare: a is the archived snapshot,
// d is a fresh scan of the live data folder.
func Compare(a, d *snapshot.Snapshot) []Diff {
	var diffs []Diff

	for _, f := range a.Files {
		folder := a.Folders[f.FolderIndex]
		liveFile, ok := d.FileByPath(folder.Path, f.Name)
		if !ok {
			diffs = append(diffs, Diff{Kind: MissingArchiveFile, Path: a.RelativePath(f)})
			continue
		}
		if !snapshot.SameContentIdentity(f, liveFile) {
			diffs = append(diffs, Diff{Kind: ChangedArchiveFile, Path: a.RelativePath(f)})
		}
	}

	for _, folder := range a.Folders {
		if folder.IsRoot() {
			continue
		}
		if _, ok := d.FolderByPath(folder.Path); !ok {
			diffs = append(diffs, Diff{Kind: MissingArchiveFolder, Path: folder.Path})
		}
	}

	for _, f := range d.Files {
		folder := d.Folders[f.FolderIndex]
		if _, ok := a.FileByPath(folder.Path, f.Name); !ok {
			diffs = append(diffs, Diff{Kind: MissingDataFile, Path: d.RelativePath(f)})
		}
	}

	for _, folder := range d.Folders {
		if folder.IsRoot() {
			continue
		}
		if _, ok := a.FolderByPath(folder.Path); !ok {
			diffs = append(diffs, Diff{Kind: MissingDataFolder, Path: folder.Path})
		}
	}

	return diffs
}
