// Package filter implements the include/exclude/select glob tests §4.2
// specifies: folder filters, file filters and selected-file filters, each
// a list of patterns paired with an inclusive/exclusive flag evaluated in
// declaration order. It is grounded on restic's internal/filter package,
// which resolves the same kind of glob pattern against a slash-separated
// path; this package keeps that reliance on Go's separator-aware matcher
// but threads an explicit Config value through instead of restic's package
// level pattern lists, per the spec's "Global option state" design note.
package filter

import "path"

// globMatch reports whether str matches pattern using conventional shell
// globbing: '*' matches any run of non-'/' characters, '?' matches exactly
// one character. Both str and pattern are assumed to already be logical
// paths (forward slashes only), so path.Match -- which always treats '/'
// as the separator regardless of GOOS -- is the right primitive here;
// path/filepath.Match would silently use '\\' on Windows and break the
// cross-platform logical-path contract §4.2 requires.
func globMatch(pattern, str string) bool {
	ok, err := path.Match(pattern, str)
	if err != nil {
		// A malformed pattern never matches. Filter lists are not
		// validated when they are built, so such a pattern has no effect.
		return false
	}
	return ok
}

// hasGlobOrRootPrefix reports whether filter already starts with '/' or a
// glob metacharacter, in which case §4.2 says it is used as-is rather than
// having "*/" prepended.
func hasGlobOrRootPrefix(filter string) bool {
	if filter == "" {
		return false
	}
	switch filter[0] {
	case '/', '*':
		return true
	default:
		return false
	}
}

// anchorFolderGlob prepends "*/" to filter when it is a bare pattern with
// neither a leading "/" nor a leading "*". The folder paths tested against
// the result (exclusive folder filters, and the folder part of file
// filters) always begin with "/", and globMatch's '*' never crosses a '/',
// so the prepended '*' only matches the empty string: "TMP/" matches the
// top-level "/TMP/" but not a nested "/A/TMP/".
func anchorFolderGlob(filter string) string {
	if hasGlobOrRootPrefix(filter) {
		return filter
	}
	return "*/" + filter
}

func containsSlash(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			return true
		}
	}
	return false
}

func lastSlash(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '/' {
			return i
		}
	}
	return -1
}
