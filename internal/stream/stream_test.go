package stream_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hapax/vaultbak/internal/stream"
)

func TestVaruintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 255, 300, 1 << 20, math.MaxUint32, math.MaxUint64}
	for _, v := range values {
		enc := stream.PutVaruint(nil, v)
		require.Equal(t, stream.VaruintSize(v), len(enc))
		got, n, ok := stream.GetVaruint(enc)
		require.True(t, ok)
		require.Equal(t, len(enc), n)
		require.Equal(t, v, got)
	}
}

func TestVarintRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 42, -42, math.MaxInt64, math.MinInt64}
	for _, v := range values {
		enc := stream.PutVarint(nil, v)
		got, n, ok := stream.GetVarint(enc)
		require.True(t, ok)
		require.Equal(t, len(enc), n)
		require.Equal(t, v, got)
	}
}

func TestVaruintEncodedSize(t *testing.T) {
	// encoded size is max(1, ceil(bitlen(v)/7))
	cases := map[uint64]int{
		0:           1,
		1:           1,
		127:         1,
		128:         2,
		16383:       2,
		16384:       3,
		math.MaxUint64: 10,
	}
	for v, want := range cases {
		require.Equal(t, want, stream.VaruintSize(v), "v=%d", v)
	}
}

func TestTagTableInterning(t *testing.T) {
	w := stream.NewTagTable()
	first := w.Encode("Version")
	second := w.Encode("Time")
	third := w.Encode("Version") // re-occurrence

	require.NotEqual(t, first, third)
	require.Equal(t, 2, w.Len())

	r := stream.NewTagTable()
	tag1, n1, err := r.Decode(first)
	require.NoError(t, err)
	require.Equal(t, "Version", tag1)
	require.Equal(t, len(first), n1)

	tag2, n2, err := r.Decode(second)
	require.NoError(t, err)
	require.Equal(t, "Time", tag2)
	require.Equal(t, len(second), n2)

	tag3, n3, err := r.Decode(third)
	require.NoError(t, err)
	require.Equal(t, "Version", tag3)
	require.Equal(t, len(third), n3)

	require.Equal(t, w.Len(), r.Len())
}

func TestWriterReaderRoundTrip(t *testing.T) {
	w := stream.NewWriter()

	b1 := stream.NewBuilder()
	b1.PutVaruint(7)
	w.WriteSection(b1.Bytes(), "Time")

	b2 := stream.NewBuilder()
	b2.PutText("hello")
	w.WriteSection(b2.Bytes(), "")

	r := stream.NewReader(w.Bytes())

	var version uint64
	tag, err := r.ReadSection("Time", func(c *stream.Cursor) error {
		v, err := c.GetVaruint()
		version = v
		return err
	})
	require.NoError(t, err)
	require.Equal(t, "Time", tag)
	require.Equal(t, uint64(7), version)

	var text string
	tag, err = r.ReadSection("", func(c *stream.Cursor) error {
		s, err := c.GetText()
		text = s
		return err
	})
	require.NoError(t, err)
	require.Equal(t, "", tag)
	require.Equal(t, "hello", text)
	require.True(t, r.Done())
}

func TestReaderDetectsMissingSection(t *testing.T) {
	w := stream.NewWriter()
	b := stream.NewBuilder()
	b.PutVaruint(1)
	w.WriteSection(b.Bytes(), "")

	r := stream.NewReader(w.Bytes())
	tag, err := r.ReadSection("DataFolderPath", func(c *stream.Cursor) error {
		_, err := c.GetVaruint()
		return err
	})
	require.ErrorIs(t, err, stream.ErrSectionMissing)
	require.Equal(t, "", tag)
}

func TestCursorHashRoundTrip(t *testing.T) {
	b := stream.NewBuilder()
	var h [32]byte
	for i := range h {
		h[i] = byte(i)
	}
	b.PutHash(h)

	c := stream.NewCursor(b.Bytes())
	got, err := c.GetHash()
	require.NoError(t, err)
	require.Equal(t, h, got)
}
