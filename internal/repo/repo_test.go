package repo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hapax/vaultbak/internal/archive"
	"github.com/hapax/vaultbak/internal/store"
)

func TestBackupCreatesSnapshotAndStoresBlobs(t *testing.T) {
	data := t.TempDir()
	repoRoot := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(data, "a.txt"), []byte("hello"), 0o644))

	r, err := Open(repoRoot, true, archive.DefaultName)
	require.NoError(t, err)

	name, snap, err := r.Backup(data, BackupOptions{Abort: true})
	require.NoError(t, err)
	require.NotEmpty(t, name)
	require.Len(t, snap.Files, 1)

	r2, err := Open(repoRoot, false, archive.DefaultName)
	require.NoError(t, err)
	a, err := r2.History.Archive(archive.DefaultName, false)
	require.NoError(t, err)
	require.Contains(t, a.SnapshotNames(), name)
}

func TestBackupTwiceSkipsUnchangedFile(t *testing.T) {
	data := t.TempDir()
	repoRoot := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(data, "x.txt"), []byte("one"), 0o644))

	r, err := Open(repoRoot, true, archive.DefaultName)
	require.NoError(t, err)

	_, first, err := r.Backup(data, BackupOptions{Abort: true})
	require.NoError(t, err)

	_, second, err := r.Backup(data, BackupOptions{Abort: true})
	require.NoError(t, err)

	require.Equal(t, first.Files[0].Hash, second.Files[0].Hash)
}

func TestCheckDetectsCorruptedBlob(t *testing.T) {
	data := t.TempDir()
	repoRoot := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(data, "x.txt"), []byte("hello"), 0o644))

	r, err := Open(repoRoot, true, archive.DefaultName)
	require.NoError(t, err)
	_, snap, err := r.Backup(data, BackupOptions{Abort: true})
	require.NoError(t, err)

	issues, err := r.Check(archive.DefaultName, "")
	require.NoError(t, err)
	require.Empty(t, issues)

	blobPath := r.Store.AbsolutePath(snap.Files[0].Hash, snap.Files[0].ByteCount)
	require.NoError(t, os.WriteFile(blobPath, []byte("x"), 0o644))

	issues, err = r.Check(archive.DefaultName, "")
	require.NoError(t, err)
	require.Len(t, issues, 1)
}

func TestCompareReportsDrift(t *testing.T) {
	data := t.TempDir()
	repoRoot := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(data, "x.txt"), []byte("one"), 0o644))

	r, err := Open(repoRoot, true, archive.DefaultName)
	require.NoError(t, err)
	_, _, err = r.Backup(data, BackupOptions{Abort: true})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(data, "x.txt"), []byte("two!"), 0o644))

	diffs, err := r.Compare(archive.DefaultName, "", data)
	require.NoError(t, err)
	require.Len(t, diffs, 1)
	require.Equal(t, store.ChangedArchiveFile, diffs[0].Kind)
}

func TestRestoreOlderSnapshotRevertsContent(t *testing.T) {
	data := t.TempDir()
	repoRoot := t.TempDir()
	path := filepath.Join(data, "x.txt")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0o644))

	r, err := Open(repoRoot, true, archive.DefaultName)
	require.NoError(t, err)
	first, _, err := r.Backup(data, BackupOptions{Abort: true, Now: func() time.Time { return time.Now() }})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("two"), 0o644))
	_, _, err = r.Backup(data, BackupOptions{Abort: true, Now: func() time.Time { return time.Now().Add(time.Second) }})
	require.NoError(t, err)

	require.NoError(t, r.Restore(archive.DefaultName, first, data, store.RestoreOptions{Abort: true}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "one", string(got))
}

func TestListAndFind(t *testing.T) {
	data := t.TempDir()
	repoRoot := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(data, "notes.txt"), []byte("hi"), 0o644))

	r, err := Open(repoRoot, true, archive.DefaultName)
	require.NoError(t, err)
	_, _, err = r.Backup(data, BackupOptions{Abort: true})
	require.NoError(t, err)

	summaries, err := r.List("", "")
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.Equal(t, archive.DefaultName, summaries[0].ArchiveName)

	matches, err := r.Find("", "", "*.txt")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "notes.txt", matches[0].Path)
}
