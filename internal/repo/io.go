package repo

import (
	"github.com/hapax/vaultbak/internal/archive"
	"github.com/hapax/vaultbak/internal/errors"
	"github.com/hapax/vaultbak/internal/fsutil"
	"github.com/hapax/vaultbak/internal/snapshot"
)

// loadSnapshot reads and deserialises the named snapshot from a.
func loadSnapshot(a *archive.Archive, name string) (*snapshot.Snapshot, error) {
	data, err := fsutil.ReadAll(a.SnapshotPath(name))
	if err != nil {
		return nil, err
	}
	s, err := snapshot.Deserialize(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load snapshot %s", name)
	}
	return s, nil
}

// saveSnapshot serialises s and writes it to a under the name §6 derives
// from its Time, then records the name in a's in-memory index.
func saveSnapshot(a *archive.Archive, s *snapshot.Snapshot) (string, error) {
	name := snapshot.SnapshotName(s.Time)
	if err := fsutil.WriteAll(a.SnapshotPath(name), s.Serialize()); err != nil {
		return "", err
	}
	a.Record(name)
	return name, nil
}
