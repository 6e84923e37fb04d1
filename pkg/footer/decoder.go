package footer

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/adler32"
)

var (
	ErrNoFooter         = errors.New("footer: missing footer magic")
	ErrLengthMismatch   = errors.New("footer: length mismatch")
	ErrChecksumMismatch = errors.New("footer: checksum mismatch")
)

// Has reports whether p ends with footer magic.
func Has(p []byte) bool {
	return len(p) >= Size && binary.BigEndian.Uint32(p[len(p)-Size:]) == Magic
}

// Split verifies the footer at the end of p and returns the sealed bytes.
func Split(p []byte) ([]byte, error) {
	if !Has(p) {
		return nil, ErrNoFooter
	}
	body, trailer := p[:len(p)-Size], p[len(p)-Size:]
	if n := binary.BigEndian.Uint32(trailer[4:]); int64(n) != int64(len(body)) {
		return nil, fmt.Errorf("%w: footer says %d, stream has %d", ErrLengthMismatch, n, len(body))
	}
	want := binary.BigEndian.Uint32(trailer[8:])
	if got := adler32.Checksum(body); got != want {
		return nil, fmt.Errorf("%w: want %08x, got %08x", ErrChecksumMismatch, want, got)
	}
	return body, nil
}
