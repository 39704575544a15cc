package filter

import "strings"

// Config is the filter configuration threaded through a scan: the three
// parallel filter lists §3/§4.2 define. Building this as an explicit value
// rather than reading package-level globals is the fix the spec's "Global
// option state" design note calls for.
type Config struct {
	FolderFilters           []string
	FolderFilterIsInclusive []bool

	FileFilters           []string
	FileFilterIsInclusive []bool

	SelectedFileFilters []string
}

// FolderIncluded applies §4.2 rule 1 to a candidate folder path, which must
// already be an absolute-style logical path ("/" for the root, "/A/B/" for
// a nested folder).
func (c *Config) FolderIncluded(candidate string) bool {
	included := true
	for i, f := range c.FolderFilters {
		if c.FolderFilterIsInclusive[i] {
			if strings.HasPrefix(f, candidate) || strings.HasPrefix(candidate, f) {
				included = true
			}
			continue
		}
		anchored := anchorFolderGlob(f)
		if globMatch(anchored+"*", candidate) {
			included = false
		}
	}
	return included
}

// FileIncluded applies §4.2 rule 2 to a file identified by the logical
// folder path of its parent (e.g. "/A/B/") and its bare name.
func (c *Config) FileIncluded(folderPath, name string) bool {
	included := true
	for i, f := range c.FileFilters {
		if !matchFileFilter(f, folderPath, name) {
			continue
		}
		included = c.FileFilterIsInclusive[i]
	}
	return included
}

// FileSelected applies §4.2 rule 3: an empty select list selects everything,
// otherwise a file must match at least one select filter.
func (c *Config) FileSelected(folderPath, name string) bool {
	if len(c.SelectedFileFilters) == 0 {
		return true
	}
	for _, f := range c.SelectedFileFilters {
		if matchFileFilter(f, folderPath, name) {
			return true
		}
	}
	return false
}

// InScope combines all three rules: a file is in scope iff its folder is
// included, the file itself is included, and it is selected.
func (c *Config) InScope(folderPath, name string) bool {
	return c.FolderIncluded(folderPath) && c.FileIncluded(folderPath, name) && c.FileSelected(folderPath, name)
}

// matchFileFilter implements the three-way dispatch shared by file filters
// and selected-file filters: a filter ending in "/" matches the folder path
// alone; a filter containing "/" splits into a folder-glob and a name-glob,
// both of which must match; any other filter matches the bare file name.
func matchFileFilter(filter, folderPath, name string) bool {
	switch {
	case strings.HasSuffix(filter, "/"):
		return globMatch(anchorFolderGlob(filter)+"*", folderPath)
	case containsSlash(filter):
		i := lastSlash(filter)
		folderPart, namePart := filter[:i+1], filter[i+1:]
		return globMatch(anchorFolderGlob(folderPart)+"*", folderPath) && globMatch(namePart, name)
	default:
		return globMatch(filter, name)
	}
}
