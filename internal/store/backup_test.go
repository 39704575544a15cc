package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hapax/vaultbak/internal/snapshot"
)

func scanFixed(t *testing.T, dir string, when time.Time) *snapshot.Snapshot {
	t.Helper()
	s, err := snapshot.Scan(dir, &snapshot.ScanConfig{Now: func() time.Time { return when }})
	require.NoError(t, err)
	return s
}

func TestBackupSnapshotDeduplicatesIdenticalContent(t *testing.T) {
	data := t.TempDir()
	repo := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(data, "a.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(data, "b.txt"), []byte("hello"), 0o644))

	snap := scanFixed(t, data, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	s := Open(repo)
	require.NoError(t, s.EnsureExists(true))
	idx := NewIndex()
	require.NoError(t, s.BackupSnapshot(idx, data, snap, nil, BackupOptions{Abort: true}))

	require.Equal(t, snap.Files[0].Hash, snap.Files[1].Hash)

	var blobCount int
	_ = filepath.Walk(filepath.Join(repo, "FILE"), func(path string, fi os.FileInfo, err error) error {
		if err == nil && !fi.IsDir() {
			blobCount++
		}
		return nil
	})
	require.Equal(t, 1, blobCount)
}

func TestBackupSnapshotFastPathAdoptsHashWithoutRehashing(t *testing.T) {
	data := t.TempDir()
	repo := t.TempDir()
	path := filepath.Join(data, "x.txt")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0o644))

	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	first := scanFixed(t, data, t0)
	// Pin the recorded modification time so the fast path can match it
	// exactly regardless of filesystem timestamp resolution.
	first.Files[0].ModificationTime = t0

	s := Open(repo)
	require.NoError(t, s.EnsureExists(true))
	idx := NewIndex()
	require.NoError(t, s.BackupSnapshot(idx, data, first, nil, BackupOptions{Abort: true}))

	second := scanFixed(t, data, t0.Add(time.Hour))
	second.Files[0].ModificationTime = t0

	require.NoError(t, s.BackupSnapshot(idx, data, second, first, BackupOptions{Abort: true}))
	require.Equal(t, first.Files[0].Hash, second.Files[0].Hash)
}

func TestBackupSnapshotRehashesOnModification(t *testing.T) {
	data := t.TempDir()
	repo := t.TempDir()
	path := filepath.Join(data, "x.txt")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0o644))

	first := scanFixed(t, data, time.Now())
	s := Open(repo)
	require.NoError(t, s.EnsureExists(true))
	idx := NewIndex()
	require.NoError(t, s.BackupSnapshot(idx, data, first, nil, BackupOptions{Abort: true}))

	require.NoError(t, os.WriteFile(path, []byte("two"), 0o644))
	time.Sleep(10 * time.Millisecond)
	second := scanFixed(t, data, time.Now())

	require.NoError(t, s.BackupSnapshot(idx, data, second, first, BackupOptions{Abort: true}))
	require.NotEqual(t, first.Files[0].Hash, second.Files[0].Hash)
}
