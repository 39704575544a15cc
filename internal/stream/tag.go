package stream

import "github.com/hapax/vaultbak/internal/errors"

// TagTable implements the string-interning scheme §4.1 specifies for
// section tags: a tag's first occurrence is spelled out in full, every
// later occurrence references it by index. Encoder and decoder each keep
// their own TagTable; §8's "tag intern" property requires the two end up
// with identical tables after a full stream round-trips.
type TagTable struct {
	index map[string]uint64
	order []string
}

// NewTagTable returns an empty interning table.
func NewTagTable() *TagTable {
	return &TagTable{index: make(map[string]uint64)}
}

// Encode returns the wire bytes for tag, interning it if this is its first
// occurrence in the table.
func (t *TagTable) Encode(tag string) []byte {
	if idx, ok := t.index[tag]; ok {
		return PutVaruint(nil, (idx<<1)|1)
	}

	idx := uint64(len(t.order))
	t.index[tag] = idx
	t.order = append(t.order, tag)

	out := PutVaruint(nil, uint64(len(tag))<<1)
	return append(out, []byte(tag)...)
}

// Decode reads one tag from src at offset 0, interning it into the table on
// first occurrence. It returns the tag, the number of bytes consumed, and
// an error if src is truncated or references an index that was never
// interned.
func (t *TagTable) Decode(src []byte) (tag string, n int, err error) {
	header, hn, ok := GetVaruint(src)
	if !ok {
		return "", hn, errors.Categorize(errors.Integrity, errors.New("truncated tag header"))
	}

	if header&1 == 1 {
		idx := header >> 1
		if idx >= uint64(len(t.order)) {
			return "", hn, errors.Categorize(errors.Integrity, errors.Errorf("tag index %d out of range", idx))
		}
		return t.order[idx], hn, nil
	}

	length := header >> 1
	if uint64(len(src)-hn) < length {
		return "", hn, errors.Categorize(errors.Integrity, errors.New("truncated tag text"))
	}

	tag = string(src[hn : hn+int(length)])
	t.order = append(t.order, tag)
	return tag, hn + int(length), nil
}

// Len returns the number of distinct tags interned so far.
func (t *TagTable) Len() int {
	return len(t.order)
}
