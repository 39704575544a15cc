package snapshot

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hapax/vaultbak/internal/filter"
)

func TestScanBuildsParentFirstTree(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("root file"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "b.txt"), []byte("nested"), 0o644))

	fixed := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	s, err := Scan(dir, &ScanConfig{Now: func() time.Time { return fixed }})
	require.NoError(t, err)

	require.True(t, s.Time.Equal(fixed))
	require.Len(t, s.Folders, 2)
	require.True(t, s.Folders[0].IsRoot())
	require.Equal(t, "sub/", s.Folders[1].Path)
	require.Equal(t, 0, s.Folders[1].SuperFolderIndex)

	require.Len(t, s.Files, 2)
	require.Equal(t, "a.txt", s.Files[0].Name)
	require.Equal(t, 0, s.Files[0].FolderIndex)
	require.Equal(t, "b.txt", s.Files[1].Name)
	require.Equal(t, 1, s.Files[1].FolderIndex)
}

func TestScanHonorsFolderAndFileFilters(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "A.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "A.log"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "TMP"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "TMP", "B.txt"), []byte("x"), 0o644))

	cfg := &ScanConfig{
		Filters: filter.Config{
			FolderFilters:           []string{"/TMP/"},
			FolderFilterIsInclusive: []bool{false},
			FileFilters:             []string{"*.log"},
			FileFilterIsInclusive:   []bool{false},
		},
	}

	s, err := Scan(dir, cfg)
	require.NoError(t, err)

	require.Len(t, s.Folders, 1) // TMP/ excluded entirely
	names := map[string]bool{}
	for _, f := range s.Files {
		names[f.Name] = true
	}
	require.True(t, names["A.txt"])
	require.False(t, names["A.log"])
}

func TestScanSkipsSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.txt")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))
	require.NoError(t, os.Symlink(target, filepath.Join(dir, "link.txt")))

	s, err := Scan(dir, &ScanConfig{})
	require.NoError(t, err)
	require.Len(t, s.Files, 1)
	require.Equal(t, "real.txt", s.Files[0].Name)
}
