package stream

import (
	"bytes"
)

// Writer accumulates the sequence of tagged sections that make up a
// snapshot file. Each call to WriteSection appends one section: the
// previously buffered payload, its varuint byte-count, and the tag that
// names the *next* section (per §4.1 the tag follows the payload it
// terminates, not precedes it). A last WriteSection call with an empty
// nextTag ends the stream.
type Writer struct {
	buf  bytes.Buffer
	tags *TagTable
}

// NewWriter returns a Writer with a fresh tag-interning table.
func NewWriter() *Writer {
	return &Writer{tags: NewTagTable()}
}

// WriteSection appends a section: payload bytes, then varuint(len(payload)),
// then the tag that names the section after this one.
func (w *Writer) WriteSection(payload []byte, nextTag string) {
	w.buf.Write(payload)
	w.buf.Write(PutVaruint(nil, uint64(len(payload))))
	w.buf.Write(w.tags.Encode(nextTag))
}

// Bytes returns the accumulated stream. Callers must have written a final
// section with an empty nextTag to produce a well-formed stream.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}
