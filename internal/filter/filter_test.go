package filter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hapax/vaultbak/internal/filter"
)

func TestScenarioSixFromSpec(t *testing.T) {
	cfg := &filter.Config{
		FolderFilters:           []string{"/TMP/"},
		FolderFilterIsInclusive: []bool{false},
		FileFilters:             []string{"*.txt", "*.log"},
		FileFilterIsInclusive:   []bool{true, false},
	}

	require.True(t, cfg.InScope("/", "A.txt"))
	require.False(t, cfg.InScope("/", "A.log"))
	require.False(t, cfg.InScope("/TMP/", "B.txt"))
}

func TestInclusiveFolderFilterTraversesAncestors(t *testing.T) {
	cfg := &filter.Config{
		FolderFilters:           []string{"/A/B/C/"},
		FolderFilterIsInclusive: []bool{true},
	}

	require.True(t, cfg.FolderIncluded("/"))
	require.True(t, cfg.FolderIncluded("/A/"))
	require.True(t, cfg.FolderIncluded("/A/B/"))
	require.True(t, cfg.FolderIncluded("/A/B/C/"))
	require.True(t, cfg.FolderIncluded("/A/B/C/D/"))
}

func TestExclusiveFolderFilterBlocksSubtree(t *testing.T) {
	cfg := &filter.Config{
		FolderFilters:           []string{"TMP/"},
		FolderFilterIsInclusive: []bool{false},
	}
	require.False(t, cfg.FolderIncluded("/TMP/"))
	require.True(t, cfg.FolderIncluded("/KEEP/"))
}

func TestFileFilterFolderSplit(t *testing.T) {
	cfg := &filter.Config{
		FileFilters:           []string{"/A/B/*.bak"},
		FileFilterIsInclusive: []bool{false},
	}
	require.False(t, cfg.FileIncluded("/A/B/", "x.bak"))
	require.True(t, cfg.FileIncluded("/A/C/", "x.bak"))
	require.True(t, cfg.FileIncluded("/A/B/", "x.txt"))
}

func TestSelectedFileFilters(t *testing.T) {
	cfg := &filter.Config{SelectedFileFilters: []string{"*.jpg", "*.png"}}
	require.True(t, cfg.FileSelected("/", "a.jpg"))
	require.True(t, cfg.FileSelected("/", "a.png"))
	require.False(t, cfg.FileSelected("/", "a.txt"))

	empty := &filter.Config{}
	require.True(t, empty.FileSelected("/", "anything"))
}

func TestLastFilterWins(t *testing.T) {
	cfg := &filter.Config{
		FileFilters:           []string{"*.txt", "keep.txt"},
		FileFilterIsInclusive: []bool{false, true},
	}
	require.True(t, cfg.FileIncluded("/", "keep.txt"))
	require.False(t, cfg.FileIncluded("/", "other.txt"))
}
