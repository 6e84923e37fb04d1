package rawio

import (
	"encoding/binary"

	"github.com/rawbytedev/fressian/internal/common"
)

// Writer appends to a growable buffer. n is the logical length; the
// backing slice may be longer after a Reset, in which case writes overwrite
// the stale bytes in place instead of growing the buffer again.
type Writer struct {
	buf     []byte
	n       int
	scratch [8]byte
}

// NewWriter returns a Writer that reuses buf's storage. buf's contents are
// treated as stale and will be overwritten.
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf[:0]}
}

// Len reports the logical length written so far.
func (w *Writer) Len() int { return w.n }

// Cap reports the capacity of the backing buffer.
func (w *Writer) Cap() int { return cap(w.buf) }

// Reset sets the logical length to zero without releasing the buffer.
func (w *Writer) Reset() { w.n = 0 }

// Truncate rolls the logical length back to n, which must not exceed Len.
func (w *Writer) Truncate(n int) {
	if n < 0 || n > w.n {
		panic("rawio: truncate out of range")
	}
	w.n = n
}

// Bytes returns the bytes written so far. The slice aliases the buffer and
// is only valid until the next write or Reset.
func (w *Writer) Bytes() []byte { return w.buf[:w.n:w.n] }

// Snapshot returns a copy of exactly the bytes written so far.
func (w *Writer) Snapshot() []byte {
	out := make([]byte, w.n)
	copy(out, w.buf[:w.n])
	return out
}

// WriteUint8 writes a single byte.
func (w *Writer) WriteUint8(v byte) {
	if w.n < len(w.buf) {
		w.buf[w.n] = v
	} else {
		w.buf = append(w.buf, v)
	}
	w.n++
}

// WriteRaw writes p verbatim.
func (w *Writer) WriteRaw(p []byte) {
	end := w.n + len(p)
	if end <= len(w.buf) {
		copy(w.buf[w.n:], p)
	} else {
		w.buf = append(w.buf[:w.n], p...)
	}
	w.n = end
}

// WriteUint16 writes the low 16 bits of v big-endian.
func (w *Writer) WriteUint16(v uint64) {
	binary.BigEndian.PutUint16(w.scratch[:2], uint16(v))
	w.WriteRaw(w.scratch[:2])
}

// WriteUint24 writes the low 24 bits of v big-endian.
func (w *Writer) WriteUint24(v uint64) {
	common.PutUint24(w.scratch[:3], v)
	w.WriteRaw(w.scratch[:3])
}

// WriteUint32 writes the low 32 bits of v big-endian.
func (w *Writer) WriteUint32(v uint64) {
	binary.BigEndian.PutUint32(w.scratch[:4], uint32(v))
	w.WriteRaw(w.scratch[:4])
}

// WriteUint40 writes the low 40 bits of v big-endian.
func (w *Writer) WriteUint40(v uint64) {
	common.PutUint40(w.scratch[:5], v)
	w.WriteRaw(w.scratch[:5])
}

// WriteUint48 writes the low 48 bits of v big-endian.
func (w *Writer) WriteUint48(v uint64) {
	common.PutUint48(w.scratch[:6], v)
	w.WriteRaw(w.scratch[:6])
}

// WriteUint64 writes v big-endian.
func (w *Writer) WriteUint64(v uint64) {
	binary.BigEndian.PutUint64(w.scratch[:], v)
	w.WriteRaw(w.scratch[:])
}
