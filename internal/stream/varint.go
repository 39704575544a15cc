// Package stream implements the length-tagged binary encoding used by
// snapshot files: varuint/varint primitives, raw text and hash fields, a
// string-interning tag table, and the section framing that ties them
// together. The wire format is specified in full by the snapshot file
// grammar; this package is a direct, side-effect-free codec over a
// bytes.Buffer, in the spirit of restic's low-level pack/crypto framing
// helpers but built for this repository's own tagged-section format.
package stream

// PutVaruint appends v to dst using little-endian base-128 varuint encoding:
// the continuation bit is 0x80, the low 7 bits carry the value.
func PutVaruint(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// VaruintSize returns the number of bytes PutVaruint would emit for v.
func VaruintSize(v uint64) int {
	n := 1
	for v >= 0x80 {
		n++
		v >>= 7
	}
	return n
}

// GetVaruint decodes a varuint from src, returning the value, the number of
// bytes consumed, and false if src ends before a terminating byte is found.
func GetVaruint(src []byte) (v uint64, n int, ok bool) {
	var shift uint
	for n < len(src) {
		b := src[n]
		n++
		v |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return v, n, true
		}
		shift += 7
		if shift >= 64 {
			return 0, n, false
		}
	}
	return 0, n, false
}

// PutVarint appends the zig-zag encoding of the signed value v.
func PutVarint(dst []byte, v int64) []byte {
	return PutVaruint(dst, zigzagEncode(v))
}

// GetVarint decodes a zig-zag-encoded signed varint from src.
func GetVarint(src []byte) (v int64, n int, ok bool) {
	u, n, ok := GetVaruint(src)
	if !ok {
		return 0, n, false
	}
	return zigzagDecode(u), n, true
}

func zigzagEncode(v int64) uint64 {
	return (uint64(v) << 1) ^ uint64(v>>63)
}

func zigzagDecode(v uint64) int64 {
	return int64(v>>1) ^ -int64(v&1)
}
