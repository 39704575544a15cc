package archive

import (
	"os"

	"github.com/hapax/vaultbak/internal/errors"
	"github.com/hapax/vaultbak/internal/fsutil"
)

// History is the in-memory map from archive name to archive, rebuilt on
// each invocation per §4.6.
type History struct {
	snapshotRoot string // absolute path to SNAPSHOT/
	archives     map[string]*Archive
}

// OpenHistory constructs a History over repoRoot's SNAPSHOT/ subtree. If
// forBackup, SNAPSHOT/ and SNAPSHOT/<defaultArchive>/ are created when
// missing; otherwise a missing SNAPSHOT/ is a Policy error.
func OpenHistory(repoRoot string, forBackup bool, defaultArchive string) (*History, error) {
	root := fsutil.Join(repoRoot, "SNAPSHOT")
	if defaultArchive == "" {
		defaultArchive = DefaultName
	}

	if forBackup {
		if err := fsutil.MkdirRecursive(root); err != nil {
			return nil, err
		}
		if _, err := Open(root, defaultArchive, true); err != nil {
			return nil, err
		}
	} else if fi, err := os.Stat(root); err != nil || !fi.IsDir() {
		return nil, errors.Categorize(errors.Policy, errors.Errorf("repository has no snapshot history: %s", root))
	}

	h := &History{snapshotRoot: root, archives: make(map[string]*Archive)}
	if err := h.scan(); err != nil {
		return nil, err
	}
	return h, nil
}

// scan populates archives by enumerating subfolders of SNAPSHOT/.
func (h *History) scan() error {
	f, err := os.Open(h.snapshotRoot)
	if err != nil {
		return errors.Categorize(errors.IO, errors.Wrap(err, "open snapshot history"))
	}
	defer f.Close()

	entries, err := f.ReadDir(-1)
	if err != nil {
		return errors.Categorize(errors.IO, errors.Wrap(err, "read snapshot history"))
	}

	h.archives = make(map[string]*Archive, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		a, err := Open(h.snapshotRoot, e.Name(), false)
		if err != nil {
			return err
		}
		h.archives[e.Name()] = a
	}
	return nil
}

// Archive returns the archive with the given name, creating it if
// forBackup is set and it does not yet exist.
func (h *History) Archive(name string, forBackup bool) (*Archive, error) {
	if a, ok := h.archives[name]; ok {
		return a, nil
	}
	a, err := Open(h.snapshotRoot, name, forBackup)
	if err != nil {
		return nil, err
	}
	h.archives[name] = a
	return a, nil
}

// ArchiveNames returns the names of every archive the history has
// indexed.
func (h *History) ArchiveNames() []string {
	names := make([]string, 0, len(h.archives))
	for n := range h.archives {
		names = append(names, n)
	}
	return names
}
