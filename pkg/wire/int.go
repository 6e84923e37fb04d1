package wire

import (
	"math"
	"math/bits"

	"github.com/rawbytedev/fressian/pkg/codes"
)

func bitSwitch(n int64) int {
	if n < 0 {
		n = ^n
	}
	return bits.LeadingZeros64(uint64(n))
}

// IntSize reports how many bytes WriteInt emits for n.
func IntSize(n int64) int {
	switch s := bitSwitch(n); {
	case s <= 14:
		return 9
	case s <= 22:
		return 7
	case s <= 30:
		return 6
	case s <= 38:
		return 5
	case s <= 44:
		return 4
	case s <= 51:
		return 3
	case s <= 57:
		return 2
	case n < -1:
		return 2
	default:
		return 1
	}
}

// WriteInt writes n in the narrowest packed tier that holds its
// two's-complement pattern.
func (w *Writer) WriteInt(n int64) {
	switch s := bitSwitch(n); {
	case s <= 14:
		w.raw.WriteUint8(codes.Int)
		w.raw.WriteUint64(uint64(n))
	case s <= 22:
		w.raw.WriteUint8(byte(codes.IntPacked7Zero + n>>48))
		w.raw.WriteUint48(uint64(n))
	case s <= 30:
		w.raw.WriteUint8(byte(codes.IntPacked6Zero + n>>40))
		w.raw.WriteUint40(uint64(n))
	case s <= 38:
		w.raw.WriteUint8(byte(codes.IntPacked5Zero + n>>32))
		w.raw.WriteUint32(uint64(n))
	case s <= 44:
		w.raw.WriteUint8(byte(codes.IntPacked4Zero + n>>24))
		w.raw.WriteUint24(uint64(n))
	case s <= 51:
		w.raw.WriteUint8(byte(codes.IntPacked3Zero + n>>16))
		w.raw.WriteUint16(uint64(n))
	case s <= 57, n < -1:
		w.raw.WriteUint8(byte(codes.IntPacked2Zero + n>>8))
		w.raw.WriteUint8(byte(n))
	default:
		// 0..63 are their own code; -1 is 0xFF.
		w.raw.WriteUint8(byte(n))
	}
}

// ReadInt decodes an integer in any tier.
func (r *Reader) ReadInt() (int64, error) {
	off := r.raw.Offset()
	code, err := r.raw.ReadByte()
	if err != nil {
		return 0, err
	}
	return r.readInt(code, off)
}

// ReadCount decodes a length. Negative values and values that overflow int
// are syntax errors.
func (r *Reader) ReadCount() (int, error) {
	off := r.raw.Offset()
	code, err := r.raw.ReadByte()
	if err != nil {
		return 0, err
	}
	return r.readCount(code, off)
}

func (r *Reader) readCount(code byte, off int) (int, error) {
	n, err := r.readInt(code, off)
	if err != nil {
		return 0, err
	}
	if n < 0 || uint64(n) > math.MaxInt {
		return 0, codeErr(code, off, ErrSyntax)
	}
	return int(n), nil
}

func (r *Reader) readInt(code byte, off int) (int64, error) {
	var (
		u   uint64
		err error
		hi  int64
		k   uint
	)
	switch codes.Classify(code) {
	case codes.TagInt1:
		if code == codes.IntNegOne {
			return -1, nil
		}
		return int64(code), nil
	case codes.TagInt2:
		var b byte
		b, err = r.raw.ReadByte()
		u, hi, k = uint64(b), int64(code)-codes.IntPacked2Zero, 8
	case codes.TagInt3:
		u, err = r.raw.ReadUint16()
		hi, k = int64(code)-codes.IntPacked3Zero, 16
	case codes.TagInt4:
		u, err = r.raw.ReadUint24()
		hi, k = int64(code)-codes.IntPacked4Zero, 24
	case codes.TagInt5:
		u, err = r.raw.ReadUint32()
		hi, k = int64(code)-codes.IntPacked5Zero, 32
	case codes.TagInt6:
		u, err = r.raw.ReadUint40()
		hi, k = int64(code)-codes.IntPacked6Zero, 40
	case codes.TagInt7:
		u, err = r.raw.ReadUint48()
		hi, k = int64(code)-codes.IntPacked7Zero, 48
	case codes.TagInt:
		u, err = r.raw.ReadUint64()
		if err != nil {
			return 0, codeErr(code, off, err)
		}
		return int64(u), nil
	default:
		return 0, codeErr(code, off, ErrExpectedInteger)
	}
	if err != nil {
		return 0, codeErr(code, off, err)
	}
	return hi<<k | int64(u), nil
}
