package store

import (
	"crypto/sha256"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlobPathDerivationIsNotANaiveByteSplit(t *testing.T) {
	// h0 = 0xAB = 10101011, h1 = 0xCD = 11001101
	// d1 = h0 >> 2           = 00101010 = 0x2A
	// d2 = (h0<<4 & 0xFF)|(h1>>4) = (10110000)|(1100) = 10111100 = 0xBC
	var hash [32]byte
	hash[0], hash[1] = 0xAB, 0xCD

	d1, d2, name := BlobPath(hash, 5)
	require.Equal(t, "2A", d1)
	require.Equal(t, "BC", d2)
	require.Contains(t, name, "_5.dbf")
}

func TestParseBlobNameRoundTrip(t *testing.T) {
	hash := sha256.Sum256([]byte("hello"))
	_, _, name := BlobPath(hash, 5)

	got, byteCount, ok := ParseBlobName(name)
	require.True(t, ok)
	require.Equal(t, hash, got)
	require.Equal(t, uint64(5), byteCount)
}

func TestPutIsIdempotentAndDeduplicates(t *testing.T) {
	repo := t.TempDir()
	s := Open(repo)
	require.NoError(t, s.EnsureExists(true))

	src := filepath.Join(repo, "hello.txt")
	require.NoError(t, os.WriteFile(src, []byte("hello"), 0o644))
	hash := sha256.Sum256([]byte("hello"))

	idx := NewIndex()
	require.NoError(t, s.Put(idx, src, hash, 5))
	require.True(t, s.Exists(idx, hash, 5))

	// A second file with identical content backs up to the same blob path.
	src2 := filepath.Join(repo, "hello2.txt")
	require.NoError(t, os.WriteFile(src2, []byte("hello"), 0o644))
	require.NoError(t, s.Put(idx, src2, hash, 5))

	abs := s.AbsolutePath(hash, 5)
	entries, err := os.ReadDir(filepath.Dir(abs))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestVerifyDetectsMissingBlob(t *testing.T) {
	repo := t.TempDir()
	s := Open(repo)
	require.NoError(t, s.EnsureExists(true))

	src := filepath.Join(repo, "x.bin")
	require.NoError(t, os.WriteFile(src, []byte("hello"), 0o644))
	hash := sha256.Sum256([]byte("hello"))

	idx := NewIndex()
	require.NoError(t, s.Put(idx, src, hash, 5))
	require.NoError(t, s.Verify(hash, 5))

	// Claiming a byte_count that doesn't match the stored blob's name
	// looks up a path that was never written.
	require.Error(t, s.Verify(hash, 999))
}
