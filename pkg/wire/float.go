package wire

import (
	"math"

	"github.com/rawbytedev/fressian/pkg/codes"
)

func (w *Writer) WriteFloat(f float32) {
	w.raw.WriteUint8(codes.Float)
	w.raw.WriteUint32(uint64(math.Float32bits(f)))
}

// WriteDouble writes d, using the bare DOUBLE_0 and DOUBLE_1 codes for
// exactly +0.0 and 1.0. Negative zero keeps its full form.
func (w *Writer) WriteDouble(d float64) {
	switch {
	case math.Float64bits(d) == 0:
		w.raw.WriteUint8(codes.Double0)
	case d == 1:
		w.raw.WriteUint8(codes.Double1)
	default:
		w.raw.WriteUint8(codes.Double)
		w.raw.WriteUint64(math.Float64bits(d))
	}
}

func (r *Reader) ReadFloat() (float32, error) {
	off := r.raw.Offset()
	code, err := r.raw.ReadByte()
	if err != nil {
		return 0, err
	}
	if code != codes.Float {
		return 0, codeErr(code, off, ErrExpectedFloat)
	}
	return r.readFloat(code, off)
}

func (r *Reader) readFloat(code byte, off int) (float32, error) {
	u, err := r.raw.ReadUint32()
	if err != nil {
		return 0, codeErr(code, off, err)
	}
	return math.Float32frombits(uint32(u)), nil
}

func (r *Reader) ReadDouble() (float64, error) {
	off := r.raw.Offset()
	code, err := r.raw.ReadByte()
	if err != nil {
		return 0, err
	}
	return r.readDouble(code, off)
}

func (r *Reader) readDouble(code byte, off int) (float64, error) {
	switch code {
	case codes.Double0:
		return 0, nil
	case codes.Double1:
		return 1, nil
	case codes.Double:
		u, err := r.raw.ReadUint64()
		if err != nil {
			return 0, codeErr(code, off, err)
		}
		return math.Float64frombits(u), nil
	}
	return 0, codeErr(code, off, ErrExpectedDouble)
}
