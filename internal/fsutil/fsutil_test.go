package fsutil_test

import (
	"crypto/sha256"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hapax/vaultbak/internal/fsutil"
)

func TestWalkShallowSkipsSymlinksAndReportsKind(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.Symlink(filepath.Join(dir, "a.txt"), filepath.Join(dir, "link")))

	entries, err := fsutil.WalkShallow(dir)
	require.NoError(t, err)

	byName := map[string]fsutil.Entry{}
	for _, e := range entries {
		byName[e.Name] = e
	}

	require.True(t, byName["a.txt"].IsFile)
	require.Equal(t, uint64(5), byName["a.txt"].Size)
	require.True(t, byName["sub"].IsDir)
	require.True(t, byName["link"].IsSymlink)
	require.False(t, byName["link"].IsFile)
	require.False(t, byName["link"].IsDir)
}

func TestHashFileChunked(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.bin")
	content := []byte("hello world")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	sum, n, err := fsutil.HashFile(path)
	require.NoError(t, err)
	require.Equal(t, uint64(len(content)), n)
	require.Equal(t, sha256.Sum256(content), sum)
}

func TestCopyWritesSourceContent(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0o600))

	require.NoError(t, fsutil.Copy(src, dst))

	got, err := fsutil.ReadAll(dst)
	require.NoError(t, err)
	require.Equal(t, "payload", string(got))
}
