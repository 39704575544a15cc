// Package archive implements §4.6's Archive and History: the named,
// ordered snapshot lists a repository's SNAPSHOT/ subtree holds, and the
// in-memory index of archive names rebuilt on each invocation. Grounded on
// restic/backend/local's directory-listing idiom (see internal/store's
// package doc), adapted from a flat blob namespace to per-archive *.dbs
// enumeration.
package archive

import (
	"os"
	"sort"
	"strings"

	"github.com/hapax/vaultbak/internal/errors"
	"github.com/hapax/vaultbak/internal/fsutil"
)

// DefaultName is the distinguished default archive, per §3.
const DefaultName = "DEFAULT"

// Archive is one named snapshot list: SNAPSHOT/<name>/ within a repository.
type Archive struct {
	Name string
	root string // absolute path to SNAPSHOT/<name>/

	snapshotNames []string // ascending, lexicographic == chronological
}

// Open constructs an Archive for name under snapshotRoot (the repository's
// SNAPSHOT/ directory). If forBackup, the archive folder is created when
// missing; otherwise a missing folder is a Policy error, per §4.6.
func Open(snapshotRoot, name string, forBackup bool) (*Archive, error) {
	root := fsutil.Join(snapshotRoot, name)

	if forBackup {
		if err := fsutil.MkdirRecursive(root); err != nil {
			return nil, err
		}
	} else if fi, err := os.Stat(root); err != nil || !fi.IsDir() {
		return nil, errors.Categorize(errors.Policy, errors.Errorf("archive does not exist: %s", name))
	}

	a := &Archive{Name: name, root: root}
	if err := a.scanSnapshotNames(); err != nil {
		return nil, err
	}
	return a, nil
}

// scanSnapshotNames populates snapshotNames by listing *.dbs entries in
// the archive folder, stripping the extension, and sorting ascending.
func (a *Archive) scanSnapshotNames() error {
	f, err := os.Open(a.root)
	if err != nil {
		return errors.Categorize(errors.IO, errors.Wrapf(err, "open archive %s", a.Name))
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return errors.Categorize(errors.IO, errors.Wrapf(err, "read archive %s", a.Name))
	}

	a.snapshotNames = a.snapshotNames[:0]
	for _, n := range names {
		if strings.HasSuffix(n, ".dbs") {
			a.snapshotNames = append(a.snapshotNames, strings.TrimSuffix(n, ".dbs"))
		}
	}
	sort.Strings(a.snapshotNames)
	return nil
}

// SnapshotNames returns the archive's snapshot names in ascending
// (chronological) order.
func (a *Archive) SnapshotNames() []string {
	return a.snapshotNames
}

// GetLastSnapshotName returns the most recent snapshot name, or a Policy
// error if the archive is empty.
func (a *Archive) GetLastSnapshotName() (string, error) {
	if len(a.snapshotNames) == 0 {
		return "", errors.Categorize(errors.Policy, errors.Errorf("archive %s has no snapshots", a.Name))
	}
	return a.snapshotNames[len(a.snapshotNames)-1], nil
}

// ResolveSnapshotName returns name if non-empty and present in the
// archive, or the last snapshot name if name is empty. It returns a
// Policy error if a non-empty name is requested but absent.
func (a *Archive) ResolveSnapshotName(name string) (string, error) {
	if name == "" {
		return a.GetLastSnapshotName()
	}
	for _, n := range a.snapshotNames {
		if n == name {
			return n, nil
		}
	}
	return "", errors.Categorize(errors.Policy, errors.Errorf("snapshot %s not found in archive %s", name, a.Name))
}

// SnapshotPath returns the absolute path of the .dbs file for the given
// snapshot name within this archive.
func (a *Archive) SnapshotPath(snapshotName string) string {
	return fsutil.Join(a.root, snapshotName+".dbs")
}

// Record appends name to the archive's in-memory snapshot name list,
// keeping it sorted. Callers invoke this immediately after writing a new
// .dbs file so later reads of the same Archive value see it without a
// fresh directory scan.
func (a *Archive) Record(name string) {
	a.snapshotNames = append(a.snapshotNames, name)
	sort.Strings(a.snapshotNames)
}
