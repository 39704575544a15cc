package stream

import (
	"github.com/hapax/vaultbak/internal/errors"
)

// Builder accumulates the typed fields of one section's payload before it
// is handed to Writer.WriteSection.
type Builder struct {
	buf []byte
}

// NewBuilder returns an empty payload builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Bytes returns the accumulated payload.
func (b *Builder) Bytes() []byte {
	return b.buf
}

// PutByte appends a raw byte.
func (b *Builder) PutByte(v byte) {
	b.buf = append(b.buf, v)
}

// PutBool appends a one-byte boolean (0 or 1).
func (b *Builder) PutBool(v bool) {
	if v {
		b.PutByte(1)
	} else {
		b.PutByte(0)
	}
}

// PutVaruint appends v as a little-endian base-128 varuint.
func (b *Builder) PutVaruint(v uint64) {
	b.buf = PutVaruint(b.buf, v)
}

// PutVarint appends v as a zig-zag encoded varint.
func (b *Builder) PutVarint(v int64) {
	b.buf = PutVarint(b.buf, v)
}

// PutHash appends exactly 32 raw hash bytes; the [32]byte parameter type
// fixes the length.
func (b *Builder) PutHash(h [32]byte) {
	b.buf = append(b.buf, h[:]...)
}

// PutText appends a varuint length followed by the raw UTF-8 bytes of s.
func (b *Builder) PutText(s string) {
	b.PutVaruint(uint64(len(s)))
	b.buf = append(b.buf, s...)
}

// Cursor decodes the typed fields of one section's payload from a fixed
// byte slice, advancing an internal offset as each field is consumed.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor returns a Cursor reading from data starting at offset 0.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pos returns the number of bytes consumed so far.
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the number of bytes not yet consumed.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

func (c *Cursor) truncated() error {
	return errors.Categorize(errors.Integrity, errors.New("unexpected end of section payload"))
}

// GetByte consumes and returns one raw byte.
func (c *Cursor) GetByte() (byte, error) {
	if c.pos >= len(c.data) {
		return 0, c.truncated()
	}
	v := c.data[c.pos]
	c.pos++
	return v, nil
}

// GetBool consumes a one-byte boolean: zero is false, any other value is true.
func (c *Cursor) GetBool() (bool, error) {
	v, err := c.GetByte()
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// GetVaruint consumes a little-endian base-128 varuint.
func (c *Cursor) GetVaruint() (uint64, error) {
	v, n, ok := GetVaruint(c.data[c.pos:])
	if !ok {
		return 0, c.truncated()
	}
	c.pos += n
	return v, nil
}

// GetVarint consumes a zig-zag encoded signed varint.
func (c *Cursor) GetVarint() (int64, error) {
	v, n, ok := GetVarint(c.data[c.pos:])
	if !ok {
		return 0, c.truncated()
	}
	c.pos += n
	return v, nil
}

// GetU32 consumes a varuint and range-checks it fits in 32 bits.
func (c *Cursor) GetU32() (uint32, error) {
	v, err := c.GetVaruint()
	if err != nil {
		return 0, err
	}
	if v > 0xFFFFFFFF {
		return 0, errors.Categorize(errors.Integrity, errors.Errorf("value %d overflows u32", v))
	}
	return uint32(v), nil
}

// GetU16 consumes a varuint and range-checks it fits in 16 bits.
func (c *Cursor) GetU16() (uint16, error) {
	v, err := c.GetVaruint()
	if err != nil {
		return 0, err
	}
	if v > 0xFFFF {
		return 0, errors.Categorize(errors.Integrity, errors.Errorf("value %d overflows u16", v))
	}
	return uint16(v), nil
}

// GetHash consumes exactly 32 raw hash bytes.
func (c *Cursor) GetHash() ([32]byte, error) {
	var h [32]byte
	if c.Remaining() < 32 {
		return h, c.truncated()
	}
	copy(h[:], c.data[c.pos:c.pos+32])
	c.pos += 32
	return h, nil
}

// GetText consumes a varuint length followed by that many raw UTF-8 bytes.
func (c *Cursor) GetText() (string, error) {
	n, err := c.GetVaruint()
	if err != nil {
		return "", err
	}
	if uint64(c.Remaining()) < n {
		return "", c.truncated()
	}
	s := string(c.data[c.pos : c.pos+int(n)])
	c.pos += int(n)
	return s, nil
}
