// Package snapshot implements the in-memory folder/file tree §4.4
// describes, its (de)serialisation to the .dbs wire format, and the scan
// that builds one from a live directory tree. It is grounded on restic's
// node.go/tree.go for the record shapes and on internal/archiver for the
// parent-first, breadth-within-a-directory traversal order, simplified to
// this spec's two record kinds (no symlinks, devices or extended
// attributes, per §1's non-goals).
package snapshot

import "time"

// RootParent is the explicit "no parent" variant for Folder.SuperFolderIndex.
// §9's design note calls out the wire format's 0xFFFFFFFF sentinel as a
// tagged-variant in disguise; RootParent/IsRoot let the in-memory model
// use that variant directly and confine the sentinel encoding to the
// (de)serialisation boundary in format.go.
const RootParent = -1

// Folder is one directory record. Path is never stored on the wire; it is
// reconstructed on load by concatenating ancestors (§4.4), and is also
// maintained incrementally during a scan.
type Folder struct {
	SuperFolderIndex int // RootParent, or the index of the parent Folder
	Name             string
	AccessTime       time.Time
	ModificationTime time.Time
	AttributeMask    uint32

	// Path is the folder's relative path from the data folder root,
	// ending in "/"; the root folder's Path is "".
	Path string
}

// IsRoot reports whether f has no parent.
func (f *Folder) IsRoot() bool {
	return f.SuperFolderIndex == RootParent
}

// File is one regular-file record.
type File struct {
	FolderIndex      int
	Name             string
	Hash             [32]byte
	ByteCount        uint64
	AccessTime       time.Time
	ModificationTime time.Time
	AttributeMask    uint32
}

// Snapshot is one immutable scan of a data folder, per §3.
type Snapshot struct {
	Version        uint32
	Time           time.Time
	DataFolderPath string

	FolderFilters           []string
	FolderFilterIsInclusive []bool
	FileFilters             []string
	FileFilterIsInclusive   []bool
	SelectedFileFilters     []string

	Folders []*Folder
	Files   []*File

	folderByPath map[string]*Folder
	fileByName   map[string]map[string]*File // folder path -> file name -> File
}

// CurrentVersion is the version this package writes.
const CurrentVersion = 1

// RelativePath returns folder-path + name for a File, e.g. "/A/B/x.txt"
// rendered as logical path "A/B/x.txt" relative to the data folder (no
// leading slash, matching DataFolderPath + RelativePath forming the
// absolute path).
func (s *Snapshot) RelativePath(f *File) string {
	folder := s.Folders[f.FolderIndex]
	return folder.Path + f.Name
}

// BuildLookups (re)builds folderByPath and the per-folder file name index
// used for diffing; §4.4 requires these after every load or scan.
func (s *Snapshot) BuildLookups() {
	s.folderByPath = make(map[string]*Folder, len(s.Folders))
	s.fileByName = make(map[string]map[string]*File, len(s.Folders))

	for _, f := range s.Folders {
		s.folderByPath[f.Path] = f
		s.fileByName[f.Path] = make(map[string]*File)
	}
	for _, file := range s.Files {
		folder := s.Folders[file.FolderIndex]
		s.fileByName[folder.Path][file.Name] = file
	}
}

// FolderByPath looks up a folder by its relative path (trailing "/", ""
// for the root).
func (s *Snapshot) FolderByPath(path string) (*Folder, bool) {
	f, ok := s.folderByPath[path]
	return f, ok
}

// FileByPath looks up a file by the relative path of its parent folder and
// its bare name.
func (s *Snapshot) FileByPath(folderPath, name string) (*File, bool) {
	byName, ok := s.fileByName[folderPath]
	if !ok {
		return nil, false
	}
	f, ok := byName[name]
	return f, ok
}

// SameContentIdentity reports the equality §4.4 specifies for fast-path
// skipping and for restore/compare's notion of "unchanged": same
// byte-count and same modification time. Hash equality is deliberately not
// required.
func SameContentIdentity(a, b *File) bool {
	return a.ByteCount == b.ByteCount && a.ModificationTime.Equal(b.ModificationTime)
}
