package wire

import (
	"github.com/rawbytedev/fressian/pkg/codes"
	"github.com/rawbytedev/fressian/pkg/rawio"
)

// Marshaler is implemented by values that write themselves, typically as
// an extension code followed by primitive values.
type Marshaler interface {
	MarshalFressian(w *Writer) error
}

// Writer encodes values onto a reusable buffer. Every method writes one
// code byte followed by its payload.
type Writer struct {
	raw     *rawio.Writer
	units   []uint16
	scratch []byte
}

// NewWriter returns a Writer that reuses buf's storage.
func NewWriter(buf []byte) *Writer {
	return &Writer{raw: rawio.NewWriter(buf)}
}

// Len reports the number of bytes written since the last Reset.
func (w *Writer) Len() int { return w.raw.Len() }

// Reset discards the output but keeps the buffer for reuse.
func (w *Writer) Reset() { w.raw.Reset() }

// Truncate rolls the output back to n bytes.
func (w *Writer) Truncate(n int) { w.raw.Truncate(n) }

// Bytes returns the output. It aliases the buffer and is valid until the
// next write or Reset.
func (w *Writer) Bytes() []byte { return w.raw.Bytes() }

// Snapshot returns an owned copy of the output.
func (w *Writer) Snapshot() []byte { return w.raw.Snapshot() }

// WriteCode writes a bare code byte.
func (w *Writer) WriteCode(code byte) { w.raw.WriteUint8(code) }

// WriteRaw writes p with no code or length. Callers use it to splice
// already-encoded values.
func (w *Writer) WriteRaw(p []byte) { w.raw.WriteRaw(p) }

func (w *Writer) WriteNull() { w.raw.WriteUint8(codes.Null) }

func (w *Writer) WriteBoolean(b bool) {
	if b {
		w.raw.WriteUint8(codes.True)
	} else {
		w.raw.WriteUint8(codes.False)
	}
}

// WriteCount writes a non-negative length using the integer encoding.
func (w *Writer) WriteCount(n int) { w.WriteInt(int64(n)) }
