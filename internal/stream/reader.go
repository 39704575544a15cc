package stream

import (
	"github.com/hapax/vaultbak/internal/errors"
)

// ErrSectionMissing is returned by Reader.ReadSection when the tag recorded
// on the wire for the next section does not match what the caller expected.
// Per §4.1 the reader recovers by leaving its cursor exactly where it is:
// the mismatched tag has already been consumed, and the caller decides
// whether a missing section is fatal.
var ErrSectionMissing = errors.New("expected section not found")

// Reader walks the sequence of tagged sections written by a Writer. Each
// call to ReadSection decodes one section's payload with the supplied
// decode function, verifies the payload's recorded byte-count matches what
// was actually consumed, and reads the tag naming the section that follows.
type Reader struct {
	data []byte
	pos  int
	tags *TagTable
}

// NewReader returns a Reader over a complete snapshot byte stream.
func NewReader(data []byte) *Reader {
	return &Reader{data: data, tags: NewTagTable()}
}

// Done reports whether every byte of the stream has been consumed.
func (r *Reader) Done() bool {
	return r.pos >= len(r.data)
}

// ReadSection decodes one section: it runs decode over a Cursor positioned
// at the current offset, checks the recorded byte-count against what decode
// actually consumed, and reads the tag naming the next section. If that tag
// does not equal expectedNextTag, ReadSection returns ErrSectionMissing
// together with the tag that was actually found; the cursor has already
// advanced past it.
func (r *Reader) ReadSection(expectedNextTag string, decode func(*Cursor) error) (actualNextTag string, err error) {
	cur := NewCursor(r.data[r.pos:])
	if err := decode(cur); err != nil {
		return "", err
	}
	consumed := cur.Pos()
	r.pos += consumed

	recordedLen, n, ok := GetVaruint(r.data[r.pos:])
	if !ok {
		return "", errors.Categorize(errors.Integrity, errors.New("truncated section byte-count"))
	}
	r.pos += n

	if recordedLen != uint64(consumed) {
		return "", errors.Categorize(errors.Integrity,
			errors.Errorf("section byte-count mismatch: recorded %d, consumed %d", recordedLen, consumed))
	}

	tag, tn, err := r.tags.Decode(r.data[r.pos:])
	if err != nil {
		return "", err
	}
	r.pos += tn

	if tag != expectedNextTag {
		return tag, ErrSectionMissing
	}
	return tag, nil
}
