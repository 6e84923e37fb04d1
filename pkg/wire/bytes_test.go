package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(i * 7)
	}
	return p
}

func TestBytesPacked(t *testing.T) {
	assert.Equal(t, []byte{0xD0}, encode(t, func(w *Writer) { w.WriteBytes(nil) }))
	assert.Equal(t, []byte{0xD1, 0xAA}, encode(t, func(w *Writer) { w.WriteBytes([]byte{0xAA}) }))
	p := encode(t, func(w *Writer) { w.WriteBytes(seq(7)) })
	assert.Equal(t, byte(0xD7), p[0])
	assert.Len(t, p, 8)
	p = encode(t, func(w *Writer) { w.WriteBytes(seq(8)) })
	assert.Equal(t, []byte{0xD9, 0x08}, p[:2])
	assert.Len(t, p, 10)
}

func TestBytesChunking(t *testing.T) {
	p := encode(t, func(w *Writer) { w.WriteBytes(seq(65535)) })
	assert.Equal(t, []byte{0xD9, 0x68, 0xFF, 0xFF}, p[:4])
	assert.Len(t, p, 4+65535)

	p = encode(t, func(w *Writer) { w.WriteBytes(seq(65536)) })
	assert.Equal(t, []byte{0xD8, 0x68, 0xFF, 0xFF}, p[:4])
	assert.Equal(t, []byte{0xD9, 0x01}, p[4+65535:4+65535+2])
	assert.Len(t, p, 4+65535+3)

	p = encode(t, func(w *Writer) { w.WriteBytes(seq(131072)) })
	assert.Equal(t, byte(0xD8), p[0])
	assert.Equal(t, byte(0xD8), p[4+65535])
	assert.Equal(t, []byte{0xD9, 0x02}, p[2*(4+65535):2*(4+65535)+2])
	assert.Len(t, p, 2*(4+65535)+4)
}

func TestBytesRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 7, 8, 65535, 65536, 131072, 200000} {
		want := seq(n)
		p := encode(t, func(w *Writer) { w.WriteBytes(want) })
		got, err := NewReader(p).ReadBytes()
		require.NoError(t, err)
		require.True(t, bytes.Equal(want, got), "length %d", n)
		require.Len(t, got, n)
	}
}

func TestBytesErrors(t *testing.T) {
	_, err := NewReader([]byte{0xDA}).ReadBytes()
	assert.ErrorIs(t, err, ErrExpectedBytes)

	_, err = NewReader([]byte{0xD8, 0x01, 0xAA, 0xF7}).ReadBytes()
	assert.ErrorIs(t, err, ErrUnmatchedCode)

	_, err = NewReader([]byte{0xD9, 0x00}).ReadBytes()
	assert.ErrorIs(t, err, ErrSyntax)

	_, err = NewReader([]byte{0xD3, 0x01}).ReadBytes()
	assert.ErrorIs(t, err, ErrEOF)
}

func TestBytesZeroCopy(t *testing.T) {
	in := []byte{0xD2, 0x01, 0x02}

	got, err := NewReaderOptions(in, ReaderOptions{ZeroCopy: true}).ReadBytes()
	require.NoError(t, err)
	in[1] = 0x09
	assert.Equal(t, []byte{0x09, 0x02}, got)

	got, err = NewReader(in).ReadBytes()
	require.NoError(t, err)
	in[1] = 0x01
	assert.Equal(t, []byte{0x09, 0x02}, got)
}
