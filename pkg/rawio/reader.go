package rawio

import (
	"encoding/binary"
	"fmt"

	"github.com/rawbytedev/fressian/internal/common"
)

// Reader is a sequential cursor over an immutable byte region.
type Reader struct {
	p   []byte
	off int
}

// NewReader returns a Reader positioned at the start of p.
func NewReader(p []byte) *Reader {
	return &Reader{p: p}
}

// Offset reports how many bytes have been consumed.
func (r *Reader) Offset() int { return r.off }

// Len reports how many bytes remain.
func (r *Reader) Len() int { return len(r.p) - r.off }

// Reset moves the cursor back to the start of the region.
func (r *Reader) Reset() { r.off = 0 }

// ResetBytes rebinds the reader to p and moves the cursor to its start.
func (r *Reader) ResetBytes(p []byte) {
	r.p = p
	r.off = 0
}

// Rewind moves the cursor back to an offset previously returned by Offset.
func (r *Reader) Rewind(off int) error {
	if off < 0 || off > r.off {
		return fmt.Errorf("%w: rewind to %d from %d", ErrSyntax, off, r.off)
	}
	r.off = off
	return nil
}

// ReadByte consumes and returns the next byte.
func (r *Reader) ReadByte() (byte, error) {
	if r.off >= len(r.p) {
		return 0, ErrEOF
	}
	b := r.p[r.off]
	r.off++
	return b, nil
}

// PeekByte returns the next byte without consuming it.
func (r *Reader) PeekByte() (byte, error) {
	if r.off >= len(r.p) {
		return 0, ErrEOF
	}
	return r.p[r.off], nil
}

// ReadN consumes exactly n bytes and returns them. The result aliases the
// underlying region. On failure nothing is consumed.
func (r *Reader) ReadN(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: read of %d bytes", ErrSyntax, n)
	}
	if n > len(r.p)-r.off {
		return nil, fmt.Errorf("%w: need %d bytes, %d remain", ErrEOF, n, len(r.p)-r.off)
	}
	b := r.p[r.off : r.off+n : r.off+n]
	r.off += n
	return b, nil
}

// ReadUint16 consumes a 2-byte big-endian unsigned integer.
func (r *Reader) ReadUint16() (uint64, error) {
	b, err := r.ReadN(2)
	if err != nil {
		return 0, err
	}
	return uint64(binary.BigEndian.Uint16(b)), nil
}

// ReadUint24 consumes a 3-byte big-endian unsigned integer.
func (r *Reader) ReadUint24() (uint64, error) {
	b, err := r.ReadN(3)
	if err != nil {
		return 0, err
	}
	return common.Uint24(b), nil
}

// ReadUint32 consumes a 4-byte big-endian unsigned integer.
func (r *Reader) ReadUint32() (uint64, error) {
	b, err := r.ReadN(4)
	if err != nil {
		return 0, err
	}
	return uint64(binary.BigEndian.Uint32(b)), nil
}

// ReadUint40 consumes a 5-byte big-endian unsigned integer.
func (r *Reader) ReadUint40() (uint64, error) {
	b, err := r.ReadN(5)
	if err != nil {
		return 0, err
	}
	return common.Uint40(b), nil
}

// ReadUint48 consumes a 6-byte big-endian unsigned integer.
func (r *Reader) ReadUint48() (uint64, error) {
	b, err := r.ReadN(6)
	if err != nil {
		return 0, err
	}
	return common.Uint48(b), nil
}

// ReadUint64 consumes an 8-byte big-endian unsigned integer.
func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.ReadN(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}
