package wire

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/rawbytedev/fressian/pkg/codes"
)

// WriteString writes s as modified UTF-8: every UTF-16 unit becomes one to
// three bytes, so characters outside the BMP take six. Output is flushed
// in segments of at most StringChunkSize bytes; every segment but the last
// is a STRING_CHUNK.
func (w *Writer) WriteString(s string) {
	if s == "" {
		w.raw.WriteUint8(codes.StringPackedLengthStart)
		return
	}
	w.units = appendUnits(w.units[:0], s)
	limit := min(3*len(w.units), codes.StringChunkSize)
	if cap(w.scratch) < limit {
		w.scratch = make([]byte, 0, limit)
	}
	units := w.units
	for len(units) > 0 {
		buf := w.scratch[:0]
		i := 0
		for ; i < len(units); i++ {
			if len(buf)+unitSize(units[i]) > limit {
				break
			}
			buf = appendUnit(buf, units[i])
		}
		units = units[i:]
		switch {
		case len(buf) < codes.PackedLengthLimit:
			w.raw.WriteUint8(codes.StringPackedLengthStart + byte(len(buf)))
		case len(units) == 0:
			w.raw.WriteUint8(codes.String)
			w.WriteCount(len(buf))
		default:
			w.raw.WriteUint8(codes.StringChunk)
			w.WriteCount(len(buf))
		}
		w.raw.WriteRaw(buf)
		w.scratch = buf
	}
}

func appendUnits(dst []uint16, s string) []uint16 {
	for _, c := range s {
		if c >= 0x10000 {
			hi, lo := utf16.EncodeRune(c)
			dst = append(dst, uint16(hi), uint16(lo))
			continue
		}
		dst = append(dst, uint16(c))
	}
	return dst
}

func unitSize(u uint16) int {
	switch {
	case u <= 0x7F:
		return 1
	case u <= 0x7FF:
		return 2
	default:
		return 3
	}
}

func appendUnit(dst []byte, u uint16) []byte {
	switch {
	case u <= 0x7F:
		return append(dst, byte(u))
	case u <= 0x7FF:
		return append(dst, 0xC0|byte(u>>6), 0x80|byte(u&0x3F))
	default:
		return append(dst, 0xE0|byte(u>>12), 0x80|byte(u>>6&0x3F), 0x80|byte(u&0x3F))
	}
}

func (r *Reader) ReadString() (string, error) {
	off := r.raw.Offset()
	code, err := r.raw.ReadByte()
	if err != nil {
		return "", err
	}
	return r.readString(code, off)
}

func (r *Reader) readString(code byte, off int) (string, error) {
	var p []byte
	switch codes.Classify(code) {
	case codes.TagStringPacked:
		n := int(code - codes.StringPackedLengthStart)
		if n == 0 {
			return "", nil
		}
		var err error
		if p, err = r.raw.ReadN(n); err != nil {
			return "", codeErr(code, off, err)
		}
	case codes.TagString:
		var err error
		if p, err = r.readCounted(); err != nil {
			return "", codeErr(code, off, err)
		}
	case codes.TagStringChunk:
		var err error
		if p, err = r.readChunkedString(code, off); err != nil {
			return "", err
		}
	default:
		return "", codeErr(code, off, ErrExpectedString)
	}
	s, err := decodeModifiedUTF8(p)
	if err != nil {
		return "", codeErr(code, off, err)
	}
	return s, nil
}

// readChunkedString gathers the bytes of every segment into r.chunk. The
// final segment may be STRING or packed.
func (r *Reader) readChunkedString(code byte, off int) ([]byte, error) {
	r.chunk = r.chunk[:0]
	for {
		var (
			p   []byte
			err error
		)
		switch codes.Classify(code) {
		case codes.TagStringChunk, codes.TagString:
			p, err = r.readCounted()
		case codes.TagStringPacked:
			if n := int(code - codes.StringPackedLengthStart); n > 0 {
				p, err = r.raw.ReadN(n)
			}
		default:
			return nil, codeErr(code, off, ErrUnmatchedCode)
		}
		if err != nil {
			return nil, codeErr(code, off, err)
		}
		r.chunk = append(r.chunk, p...)
		if code != codes.StringChunk {
			return r.chunk, nil
		}
		off = r.raw.Offset()
		if code, err = r.raw.ReadByte(); err != nil {
			return nil, err
		}
	}
}

// decodeModifiedUTF8 converts modified UTF-8 to a Go string, joining
// surrogate pairs.
func decodeModifiedUTF8(p []byte) (string, error) {
	ascii := true
	for _, c := range p {
		if c >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return string(p), nil
	}
	out := make([]byte, 0, len(p))
	for i := 0; i < len(p); {
		u, n := decodeUnit(p[i:])
		if n == 0 {
			return "", fmt.Errorf("%w at byte %d", ErrInvalidUTF8, i)
		}
		if !utf16.IsSurrogate(rune(u)) {
			out = utf8.AppendRune(out, rune(u))
			i += n
			continue
		}
		if u >= 0xDC00 {
			return "", fmt.Errorf("%w: unpaired low surrogate at byte %d", ErrInvalidUTF8, i)
		}
		lo, m := decodeUnit(p[i+n:])
		if m == 0 || lo < 0xDC00 || lo > 0xDFFF {
			return "", fmt.Errorf("%w: unpaired high surrogate at byte %d", ErrInvalidUTF8, i)
		}
		out = utf8.AppendRune(out, utf16.DecodeRune(rune(u), rune(lo)))
		i += n + m
	}
	return string(out), nil
}

// decodeUnit decodes one UTF-16 unit. n is 0 when p does not start with a
// complete one-, two- or three-byte sequence.
func decodeUnit(p []byte) (u uint16, n int) {
	if len(p) == 0 {
		return 0, 0
	}
	c := p[0]
	switch {
	case c < 0x80:
		return uint16(c), 1
	case c&0xE0 == 0xC0:
		if len(p) < 2 || p[1]&0xC0 != 0x80 {
			return 0, 0
		}
		return uint16(c&0x1F)<<6 | uint16(p[1]&0x3F), 2
	case c&0xF0 == 0xE0:
		if len(p) < 3 || p[1]&0xC0 != 0x80 || p[2]&0xC0 != 0x80 {
			return 0, 0
		}
		return uint16(c&0x0F)<<12 | uint16(p[1]&0x3F)<<6 | uint16(p[2]&0x3F), 3
	}
	return 0, 0
}
