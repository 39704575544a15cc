package snapshot

import (
	"time"

	"github.com/hapax/vaultbak/internal/filter"
	"github.com/hapax/vaultbak/internal/fsutil"
	"github.com/hapax/vaultbak/internal/ui"
)

// ScanConfig bundles the filter configuration and clock a scan needs. The
// spec's own design note flags the original's package-level filter globals
// as an anti-pattern; threading this value through Scan is the fix.
type ScanConfig struct {
	Filters filter.Config
	Now     func() time.Time
	Printer *ui.Printer
	Abort   bool
}

func (c *ScanConfig) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *ScanConfig) printer() *ui.Printer {
	if c.Printer != nil {
		return c.Printer
	}
	return ui.NewPrinter(false)
}

// Scan walks dataFolderPath and builds a new Snapshot, per §4.4's Build
// (scan) algorithm: within each directory, File records for in-scope
// regular children are emitted first, then the scan recurses into
// in-scope subdirectories. Folder index is assigned at emission time, so
// parents always precede their children.
func Scan(dataFolderPath string, cfg *ScanConfig) (*Snapshot, error) {
	s := &Snapshot{
		Version:                 CurrentVersion,
		Time:                    cfg.now().UTC(),
		DataFolderPath:          dataFolderPath,
		FolderFilters:           cfg.Filters.FolderFilters,
		FolderFilterIsInclusive: cfg.Filters.FolderFilterIsInclusive,
		FileFilters:             cfg.Filters.FileFilters,
		FileFilterIsInclusive:   cfg.Filters.FileFilterIsInclusive,
		SelectedFileFilters:     cfg.Filters.SelectedFileFilters,
	}

	root := &Folder{SuperFolderIndex: RootParent, Path: ""}
	s.Folders = append(s.Folders, root)

	if err := scanDir(s, cfg, 0, dataFolderPath); err != nil {
		return nil, err
	}

	s.BuildLookups()
	return s, nil
}

// scanDir processes the directory backing the folder at folderIndex,
// emitting files first and recursing into subfolders second, per §4.4.
func scanDir(s *Snapshot, cfg *ScanConfig, folderIndex int, absPath string) error {
	folder := s.Folders[folderIndex]

	entries, err := fsutil.WalkShallow(absPath)
	if err != nil {
		if cfg.Abort {
			return err
		}
		cfg.printer().Warn("skipping unreadable directory %s: %v", absPath, err)
		return nil
	}

	var subdirs []fsutil.Entry

	for _, e := range entries {
		if e.IsSymlink {
			continue
		}
		if e.IsDir {
			subdirs = append(subdirs, e)
			continue
		}
		if !e.IsFile {
			continue
		}
		if !cfg.Filters.InScope("/"+folder.Path, e.Name) {
			continue
		}

		s.Files = append(s.Files, &File{
			FolderIndex:       folderIndex,
			Name:              e.Name,
			ByteCount:         e.Size,
			AccessTime:        e.AccessTime,
			ModificationTime:  e.ModTime,
			AttributeMask:     e.AttributeMask,
		})
	}

	for _, e := range subdirs {
		childPath := folder.Path + e.Name + "/"
		if !cfg.Filters.FolderIncluded("/" + childPath) {
			continue
		}

		child := &Folder{
			SuperFolderIndex:  folderIndex,
			Name:              e.Name,
			AccessTime:        e.AccessTime,
			ModificationTime:  e.ModTime,
			AttributeMask:     e.AttributeMask,
			Path:              childPath,
		}
		childIndex := len(s.Folders)
		s.Folders = append(s.Folders, child)

		if err := scanDir(s, cfg, childIndex, fsutil.Join(absPath, e.Name)); err != nil {
			return err
		}
	}

	return nil
}
