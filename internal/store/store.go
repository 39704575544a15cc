// Package store implements the content-addressed blob directory §4.5/§6
// describe: deriving a blob's path from its content address, indexing which
// blobs already exist so a repeat backup of identical content is a no-op,
// and the backup/restore/compare/check operations that move file bytes
// between a live data folder and the repository. It is grounded on
// restic/backend/local's directory layout and presence-checking idiom,
// simplified to this spec's two-level directory tree (see BlobPath for how
// the two segments are derived from the hash) and unencrypted whole-file
// blobs.
package store

import (
	"os"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/hapax/vaultbak/internal/debug"
	"github.com/hapax/vaultbak/internal/errors"
	"github.com/hapax/vaultbak/internal/fsutil"
)

// Store is the FILE/ subtree of a repository. Its presence map answers "is
// this content address already stored" without a stat call on the common
// path; the map is keyed by an xxhash of the blob's relative path rather
// than the path string itself, the same trick restic's internal/index uses
// to avoid string comparisons in hot in-memory lookups (content addressing
// itself still uses SHA-256; xxhash here is purely an internal map key).
type Store struct {
	root string // absolute path to FILE/
}

// Open returns a Store bound to the FILE/ subtree of repoRoot. It does not
// check that the subtree exists; callers that require it for read-only
// operations should call EnsureExists themselves and treat a failure as a
// Policy error per §7.
func Open(repoRoot string) *Store {
	return &Store{root: fsutil.Join(repoRoot, "FILE")}
}

// EnsureExists creates FILE/ if backup is true; otherwise it verifies the
// directory exists, returning a Policy error if not, per §3's invariant
// that both repository subtrees exist whenever the repository is used.
func (s *Store) EnsureExists(forBackup bool) error {
	if forBackup {
		return fsutil.MkdirRecursive(s.root)
	}
	if fi, err := os.Stat(s.root); err != nil || !fi.IsDir() {
		return errors.Categorize(errors.Policy, errors.Errorf("store does not exist: %s", s.root))
	}
	return nil
}

// presenceKey hashes a blob's store-relative path for the in-memory
// existence map.
func presenceKey(relPath string) uint64 {
	return xxhash.Sum64String(relPath)
}

// Index is the in-memory presence map: xxhash(relative blob path) -> the
// relative paths sharing that hash bucket. Built lazily and incrementally;
// a fresh Index starts empty and discovers existing blobs on demand via
// Exists, which falls back to a stat when the map hasn't seen a path yet.
type Index struct {
	seen map[uint64][]string
}

// NewIndex returns an empty presence index for use across a single backup
// run; the Repository owns its lifetime.
func NewIndex() *Index {
	return &Index{seen: make(map[uint64][]string)}
}

func (idx *Index) has(relPath string) bool {
	key := presenceKey(relPath)
	for _, p := range idx.seen[key] {
		if p == relPath {
			return true
		}
	}
	return false
}

func (idx *Index) add(relPath string) {
	key := presenceKey(relPath)
	idx.seen[key] = append(idx.seen[key], relPath)
}

// Exists reports whether the blob for the given content address is already
// present, per §4.5 step 3's "already indexed" check. It consults the
// in-memory index first and falls back to a stat for paths the index
// hasn't recorded yet (e.g. blobs from a store opened this run without a
// full scan), recording a blob found that way; a miss is not recorded.
func (s *Store) Exists(idx *Index, hash [32]byte, byteCount uint64) bool {
	rel := RelativePath(hash, byteCount)
	if idx.has(rel) {
		return true
	}
	abs := fsutil.Join(s.root, rel)
	if _, err := os.Stat(abs); err == nil {
		idx.add(rel)
		return true
	}
	return false
}

// AbsolutePath returns the absolute path of the blob for the given content
// address.
func (s *Store) AbsolutePath(hash [32]byte, byteCount uint64) string {
	return fsutil.Join(s.root, RelativePath(hash, byteCount))
}

// Put copies srcPath into the store at the blob path for (hash, byteCount),
// creating the two intermediate directories if missing, and records the
// blob in idx. It is a no-op if the blob is already present. Per §4.5 step
// 3, per-file copy failures are returned for the caller to log and
// continue past rather than abort on.
func (s *Store) Put(idx *Index, srcPath string, hash [32]byte, byteCount uint64) error {
	if s.Exists(idx, hash, byteCount) {
		return nil
	}

	rel := RelativePath(hash, byteCount)
	abs := fsutil.Join(s.root, rel)

	if err := fsutil.MkdirRecursive(parentDir(abs)); err != nil {
		return err
	}
	if err := fsutil.Copy(srcPath, abs); err != nil {
		return err
	}

	debug.Log("store: wrote blob %s (%d bytes)", rel, byteCount)
	idx.add(rel)
	return nil
}

// Get opens the blob for (hash, byteCount) for reading its bytes, used by
// restore to copy store content back into the data folder.
func (s *Store) Get(hash [32]byte, byteCount uint64) ([]byte, error) {
	return fsutil.ReadAll(s.AbsolutePath(hash, byteCount))
}

// Verify checks that the blob for (hash, byteCount) exists and that its
// on-disk size matches byteCount, per §3's invariant and the --check
// behaviour this spec adopts from its Open Question. Ignoring (not
// deleting) a size-mismatched blob is §3's stated policy for corrupt
// entries discovered incidentally; Verify instead reports the mismatch so
// check can surface it.
func (s *Store) Verify(hash [32]byte, byteCount uint64) error {
	abs := s.AbsolutePath(hash, byteCount)
	fi, err := os.Stat(abs)
	if err != nil {
		return errors.Categorize(errors.Integrity, errors.Wrapf(err, "blob missing: %s", abs))
	}
	if uint64(fi.Size()) != byteCount {
		return errors.Categorize(errors.Integrity,
			errors.Errorf("blob %s: on-disk size %d does not match recorded byte_count %d", abs, fi.Size(), byteCount))
	}
	return nil
}

func parentDir(path string) string {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return "."
	}
	return path[:i]
}

// ParseBlobName extracts the hash and byte-count encoded in a blob file
// name of the form §6 specifies; it inverts the name segment BlobPath
// produces. No command calls it: check goes through Verify.
func ParseBlobName(name string) (hash [32]byte, byteCount uint64, ok bool) {
	name = strings.TrimSuffix(name, ".dbf")
	parts := strings.SplitN(name, "_", 2)
	if len(parts) != 2 {
		return hash, 0, false
	}
	if len(parts[0]) != 64 {
		return hash, 0, false
	}
	for i := 0; i < 32; i++ {
		b, err := strconv.ParseUint(parts[0][i*2:i*2+2], 16, 8)
		if err != nil {
			return hash, 0, false
		}
		hash[i] = byte(b)
	}
	bc, err := strconv.ParseUint(parts[1], 16, 64)
	if err != nil {
		return hash, 0, false
	}
	return hash, bc, true
}
