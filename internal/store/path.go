package store

import "fmt"

// BlobPath derives the three path segments §6 specifies for a blob with the
// given content address: two two-hex-digit directory segments computed from
// the first two hash bytes h0, h1 as h0>>2 and ((h0<<4)&0xFF)|(h1>>4) (not
// a naive byte split), and the blob file name itself.
func BlobPath(hash [32]byte, byteCount uint64) (dir1, dir2, name string) {
	h0, h1 := hash[0], hash[1]
	d1 := h0 >> 2
	d2 := ((h0 << 4) & 0xFF) | (h1 >> 4)
	dir1 = fmt.Sprintf("%02X", d1)
	dir2 = fmt.Sprintf("%02X", d2)
	name = fmt.Sprintf("%x_%X.dbf", hash, byteCount)
	return dir1, dir2, name
}

// RelativePath joins the three BlobPath segments into the path of a blob
// relative to the store root (the repository's FILE/ directory).
func RelativePath(hash [32]byte, byteCount uint64) string {
	d1, d2, name := BlobPath(hash, byteCount)
	return d1 + "/" + d2 + "/" + name
}
